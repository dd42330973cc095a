// Package httputil provides HTTP method constants and helpers shared by the
// locator, interpreter, and tool surfaces.
package httputil

import "strings"

// HTTP method constants as they appear as keys in a description document's
// path items (always lower-case).
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// knownMethods is the set of methods a description document can declare.
var knownMethods = map[string]bool{
	MethodGet:     true,
	MethodPut:     true,
	MethodPost:    true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
	MethodPatch:   true,
	MethodTrace:   true,
}

// NormalizeMethod lower-cases an HTTP method for document lookup.
func NormalizeMethod(method string) string {
	return strings.ToLower(method)
}

// IsKnownMethod reports whether method (any case) is one a description
// document can declare an operation for.
func IsKnownMethod(method string) bool {
	return knownMethods[NormalizeMethod(method)]
}
