package deperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a description document body failed to parse or
	// lacked the required top-level fields. Recoverable during location.
	ErrParse = errors.New("parse error")

	// ErrInvalidDocument indicates a document without a paths object.
	ErrInvalidDocument = errors.New("invalid description document")

	// ErrPathNotFound indicates the request path is absent from the document.
	ErrPathNotFound = errors.New("path not found")

	// ErrMethodNotFound indicates the request method is absent under the path.
	ErrMethodNotFound = errors.New("method not found")

	// ErrParametersNotFound indicates the operation declares no parameters array.
	ErrParametersNotFound = errors.New("parameters not found")

	// ErrTransport indicates a network-level probe failure.
	ErrTransport = errors.New("transport error")

	// ErrURL indicates a malformed or unconstructible URL.
	ErrURL = errors.New("url error")
)

// ParseError represents a failure to parse a candidate description document.
// During location these are expected and non-fatal: the search logs the
// failure and continues with the next candidate.
type ParseError struct {
	// Source is the URL or identifier the body was fetched from
	Source string
	// Format is the attempted format: "json" or "yaml"
	Format string
	// Message describes the parsing or acceptance failure
	Message string
	// Cause is the underlying decode error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// DocumentError represents a structurally unusable description document,
// specifically one without a paths object. Fatal for the decision.
type DocumentError struct {
	// Message provides additional context about the structural defect
	Message string
}

// Error returns a human-readable error message.
func (e *DocumentError) Error() string {
	msg := "invalid description document"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// PathError indicates the request path does not appear in the document's
// paths object. Fatal for the decision.
type PathError struct {
	// Path is the request path that was looked up
	Path string
}

// Error returns a human-readable error message.
func (e *PathError) Error() string {
	return fmt.Sprintf("path %s not found in the description document", e.Path)
}

// Is reports whether target matches this error type.
func (e *PathError) Is(target error) bool {
	return target == ErrPathNotFound
}

// MethodError indicates the request method has no operation under the
// resolved path. Fatal for the decision.
type MethodError struct {
	// Path is the resolved request path
	Path string
	// Method is the request method that was looked up (as supplied)
	Method string
}

// Error returns a human-readable error message.
func (e *MethodError) Error() string {
	return fmt.Sprintf("method %s for path %s not found in the description document", e.Method, e.Path)
}

// Is reports whether target matches this error type.
func (e *MethodError) Is(target error) bool {
	return target == ErrMethodNotFound
}

// ParameterError indicates the resolved operation declares no parameters
// array at all. An empty array is not an error; absence is.
type ParameterError struct {
	// Path is the resolved request path
	Path string
	// Method is the resolved request method
	Method string
}

// Error returns a human-readable error message.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("no parameters found for path %s with method %s in the description document", e.Path, e.Method)
}

// Is reports whether target matches this error type.
func (e *ParameterError) Is(target error) bool {
	return target == ErrParametersNotFound
}

// TransportError represents a network-level failure during a probe.
// Fatal: it aborts the whole decision, distinguishing transport failure
// from "document absent" or "document malformed".
type TransportError struct {
	// URL is the probe URL that failed
	URL string
	// Cause is the underlying network error
	Cause error
}

// Error returns a human-readable error message.
func (e *TransportError) Error() string {
	msg := "transport error"
	if e.URL != "" {
		msg += " fetching " + e.URL
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// URLError represents a malformed input URL or a derived probe URL that
// could not be constructed. Fatal: it indicates the request URL cannot be
// mapped onto a search space.
type URLError struct {
	// URL is the offending URL string
	URL string
	// Cause is the underlying parse error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *URLError) Error() string {
	msg := "url error"
	if e.URL != "" {
		msg += ": " + e.URL
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *URLError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *URLError) Is(target error) bool {
	return target == ErrURL
}
