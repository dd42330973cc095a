// Package depprobe detects deprecated API usage from HTTP exchanges.
//
// depprobe inspects a request/response pair and decides whether the targeted
// API operation, or any query parameter used in the request, has been marked
// deprecated. Two independent signals feed the decision:
//
//   - deprecation-indicating response headers (Deprecation, Sunset, plus any
//     caller-configured names), and
//   - an OpenAPI description document discovered near the request URL and
//     interpreted against the request's path, method, and query parameters.
//
// # Packages
//
//   - locator: searches upward through the request URL's path segments for an
//     openapi.json or openapi.yaml document
//   - oasdoc: the in-memory description document model and its JSON/YAML parsers
//   - interpreter: maps a concrete path/method/parameter set onto the
//     deprecation flags inside a document
//   - detector: combines header and document signals into one Decision, and
//     provides an http.RoundTripper that runs detection per exchange
//   - deperrors: structured error types shared by the packages above
//
// # Quick Start
//
// Wrap an HTTP client's transport:
//
//	d := detector.New()
//	client := &http.Client{
//		Transport: &detector.Transport{
//			Detector: d,
//			OnDecision: func(req *http.Request, dec detector.Decision) {
//				if dec.Deprecated {
//					log.Printf("deprecated call: %s %s params=%v",
//						req.Method, req.URL, dec.DeprecatedParameters)
//				}
//			},
//		},
//	}
//	resp, err := client.Get("https://api.example.com/v1/items?legacy=1")
//
// Or decide explicitly for a single exchange:
//
//	desc := detector.DescribeRequest(req)
//	dec, err := d.Decide(req.Context(), desc, resp.Header)
package depprobe
