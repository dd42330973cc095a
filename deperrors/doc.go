// Package deperrors provides structured error types for depprobe.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between recoverable location
// failures and fatal interpretation failures.
//
// # Error Categories
//
//   - ParseError: a candidate document body failed to parse or lacked the
//     required top-level fields (recoverable during location)
//   - DocumentError: document has no paths object (fatal)
//   - PathError, MethodError, ParameterError: the request's path, method, or
//     parameter assumptions don't match the document (fatal)
//   - TransportError: network failure during a probe (fatal)
//   - URLError: malformed or unconstructible URL (fatal)
//
// # Usage with errors.Is
//
//	dec, err := d.Decide(ctx, desc, resp.Header)
//	if errors.Is(err, deperrors.ErrPathNotFound) {
//	    // The discovered document does not describe this endpoint.
//	}
package deperrors
