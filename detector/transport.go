package detector

import "net/http"

// Transport is an http.RoundTripper that runs deprecation detection after
// every exchange and hands the Decision to the caller through OnDecision.
//
// The Decision is delivered as a plain value rather than being attached to
// the request context; the calling layer decides how to surface it. By
// default a failed analysis is logged and the response is passed through
// unchanged — set OnError to propagate or inspect failures instead.
//
// The Detector's locator probes must not themselves travel through this
// Transport: leave the Locator's probe client unwrapped, or the probes
// would recurse.
type Transport struct {
	// Base performs the actual exchange. If nil, http.DefaultTransport.
	Base http.RoundTripper
	// Detector analyzes each exchange. If nil, a zero-configured Detector
	// with the default header set is used.
	Detector *Detector
	// OnDecision receives the Decision for each successfully analyzed
	// exchange. If nil, decisions are discarded.
	OnDecision func(*http.Request, Decision)
	// OnError receives fatal analysis errors. If nil, errors are logged via
	// the Detector's logger and the exchange proceeds as not-deprecated.
	OnError func(*http.Request, error)
}

var defaultDetector = &Detector{}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) detector() *Detector {
	if t.Detector != nil {
		return t.Detector
	}
	return defaultDetector
}

// RoundTrip implements http.RoundTripper. Detection runs only after a
// successful exchange; transport errors from the base round tripper are
// returned untouched.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return resp, err
	}

	d := t.detector()
	decision, derr := d.Decide(req.Context(), DescribeRequest(req), resp.Header)
	if derr != nil {
		if t.OnError != nil {
			t.OnError(req, derr)
		} else {
			d.log().Warn("deprecation analysis failed", "url", req.URL.String(), "error", derr)
		}
		return resp, nil
	}

	if t.OnDecision != nil {
		t.OnDecision(req, decision)
	}
	return resp, nil
}
