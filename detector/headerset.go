package detector

import (
	"net/http"

	"golang.org/x/text/cases"
)

// Default deprecation-indicating response header names, always present in a
// HeaderSet regardless of configuration.
const (
	HeaderDeprecation = "deprecation"
	HeaderSunset      = "sunset"
)

// HeaderSet is the set of lower-cased header names considered deprecation
// indicators. Construct with NewHeaderSet; a HeaderSet is immutable for the
// lifetime of its Detector.
type HeaderSet map[string]bool

// NewHeaderSet builds a HeaderSet from the defaults ("deprecation",
// "sunset") plus any caller-supplied custom names. Custom names are
// case-folded once at construction.
func NewHeaderSet(custom ...string) HeaderSet {
	folder := cases.Fold()
	hs := make(HeaderSet, len(custom)+2)
	hs[HeaderDeprecation] = true
	hs[HeaderSunset] = true
	for _, name := range custom {
		hs[folder.String(name)] = true
	}
	return hs
}

// Matches reports whether any header name in h is in the set.
//
// Names from h are compared exactly as stored against the lower-cased set.
// net/http canonicalizes keys set through Header.Set/Add ("Deprecation"),
// which therefore do NOT match; only literally lower-cased keys do. This
// mirrors the behavior of the original interceptor and is deliberately
// preserved; see the case-sensitivity tests.
func (s HeaderSet) Matches(h http.Header) bool {
	for name := range h {
		if s[name] {
			return true
		}
	}
	return false
}
