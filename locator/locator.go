// Package locator discovers an API description document near a request URL.
//
// Description documents are conventionally hosted at a well-known subpath
// near the API root, but the exact depth is unknown to the caller. The
// locator walks upward through the request URL's path segments, probing
// {searchURL}/openapi.json and then {searchURL}/openapi.yaml at each level,
// until a syntactically valid document is found or the host root is reached.
package locator

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/itsmarvinmueller/depprobe"
	"github.com/itsmarvinmueller/depprobe/deperrors"
	"github.com/itsmarvinmueller/depprobe/oasdoc"
)

// Probe suffixes, tried in order at every path level.
const (
	jsonProbeSuffix = "/openapi.json"
	yamlProbeSuffix = "/openapi.yaml"
)

// defaultClient is the process-wide probe client used when no client is
// injected. Created once and reused across locators.
var defaultClient = &http.Client{Timeout: 30 * time.Second}

// Result is the outcome of a location search.
type Result struct {
	// Document is the discovered description document, nil when no document
	// was found anywhere up to the host root.
	Document *oasdoc.Document
	// ResidualPath is the portion of the original path not consumed by the
	// document's base location. Empty when the document sits at the level of
	// the request path itself; begins with "/" whenever non-empty.
	ResidualPath string
}

// Found reports whether the search produced a document.
func (r Result) Found() bool {
	return r.Document != nil
}

// Locator performs the upward search for a description document.
//
// The zero value is usable; configure fields before the first Locate call.
// A Locator does not create a transport per request: probes go through the
// injected HTTPClient, which is treated as an externally owned, long-lived
// resource, or through a shared process-wide default.
type Locator struct {
	// HTTPClient is the client used for probe requests. If nil, a shared
	// default client with a 30-second timeout is used. Deadlines and
	// redirect/TLS policy belong to this client, not to the Locator.
	HTTPClient *http.Client
	// UserAgent is sent with every probe. Defaults to depprobe.UserAgent().
	UserAgent string
	// Logger receives diagnostics for missed probes and rejected candidates.
	// If nil, logging is disabled.
	Logger Logger
}

// New creates a Locator with default settings.
func New() *Locator {
	return &Locator{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (l *Locator) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

// client returns the configured HTTP client, or the shared default.
func (l *Locator) client() *http.Client {
	if l.HTTPClient != nil {
		return l.HTTPClient
	}
	return defaultClient
}

// Locate searches upward from baseURL for a description document.
//
// baseURL should carry scheme, authority, and path; any query or fragment is
// stripped before the search starts. "Not found" is a valid outcome and
// yields a zero Result with a nil error; the residual path accumulated
// during an unsuccessful search is discarded. Network failures and
// unconstructible probe URLs are fatal and abort the search.
func (l *Locator) Locate(ctx context.Context, baseURL string) (Result, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return Result{}, &deperrors.URLError{URL: baseURL, Cause: err}
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""
	u.ForceQuery = false

	// The search ends at the host root: scheme and authority, empty path.
	end := &url.URL{Scheme: u.Scheme, User: u.User, Host: u.Host}

	search := *u
	residual := ""

	// Iterative walk over an owned cursor. Each round strips one trailing
	// segment, so the loop is bounded by the path's segment count.
	for {
		doc, err := l.probe(ctx, search.String()+jsonProbeSuffix, oasdoc.ParseJSON)
		if err != nil {
			return Result{}, err
		}
		if doc != nil {
			return Result{Document: doc, ResidualPath: residual}, nil
		}

		doc, err = l.probe(ctx, search.String()+yamlProbeSuffix, oasdoc.ParseYAML)
		if err != nil {
			return Result{}, err
		}
		if doc != nil {
			return Result{Document: doc, ResidualPath: residual}, nil
		}

		if search.String() == end.String() {
			break
		}
		idx := strings.LastIndex(search.Path, "/")
		if idx <= 0 {
			// No slash before the trailing segment: already at the root.
			break
		}
		residual = search.Path[idx:] + residual
		search.Path = search.Path[:idx]
	}

	l.log().Debug("no description document found", "url", baseURL)
	return Result{}, nil
}

// probe issues one GET against probeURL and attempts to parse the body with
// the supplied parser. A non-200 status or a rejected body is a miss, not an
// error: the search continues at the next candidate. Network failures are
// returned as fatal *deperrors.TransportError.
func (l *Locator) probe(ctx context.Context, probeURL string, parse func([]byte, string) (*oasdoc.Document, error)) (*oasdoc.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return nil, &deperrors.URLError{URL: probeURL, Cause: err}
	}

	userAgent := l.UserAgent
	if userAgent == "" {
		userAgent = depprobe.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.client().Do(req)
	if err != nil {
		return nil, &deperrors.TransportError{URL: probeURL, Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		l.log().Debug("probe missed", "url", probeURL, "status", resp.StatusCode)
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &deperrors.TransportError{URL: probeURL, Cause: err}
	}

	doc, err := parse(body, probeURL)
	if err != nil {
		// Malformed or non-description bodies are expected along the walk.
		l.log().Warn("skipping candidate document", "url", probeURL, "error", err)
		return nil, nil
	}
	return doc, nil
}
