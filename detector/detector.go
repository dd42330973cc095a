// Package detector combines header-based and document-based deprecation
// signals for one HTTP exchange into a single Decision.
//
// The combiner checks configured deprecation response headers first; only
// when none matched does it search for a description document near the
// request URL and interpret it against the request's path, method, and
// query-parameter names. Data flows one way: request descriptor → locator →
// document → interpreter → decision.
package detector

import (
	"context"
	"net/http"
	"strings"

	"github.com/itsmarvinmueller/depprobe/interpreter"
	"github.com/itsmarvinmueller/depprobe/locator"
)

// SpecLocator finds a description document for a base URL. Satisfied by
// *locator.Locator; declared as an interface so decisions can be tested
// with a double.
type SpecLocator interface {
	Locate(ctx context.Context, baseURL string) (locator.Result, error)
}

// Decision is the outcome of deprecation analysis for one exchange.
// Produced fresh per exchange and never mutated after construction.
type Decision struct {
	// Deprecated is true when any signal fired: a deprecation header, a
	// deprecated operation, or a deprecated query parameter in use.
	Deprecated bool
	// DeprecatedParameters lists the request's query-parameter names that
	// the document marks deprecated, sorted. Always a subset of the
	// request's query-parameter names.
	DeprecatedParameters []string
	// HeaderMatch records that a deprecation header short-circuited the
	// decision; no document analysis was performed.
	HeaderMatch bool
	// OperationDeprecated records that the document marks the operation
	// itself deprecated.
	OperationDeprecated bool
}

// Detector decides whether an exchange targets deprecated API surface.
//
// A Detector is cheap and reusable; its fields are read-only after the
// first Decide call. Decisions are fully synchronous: the header check,
// locator probes, and interpreter calls run sequentially per exchange.
type Detector struct {
	// Headers is the set of deprecation-indicating header names.
	// If nil, the defaults (deprecation, sunset) are used.
	Headers HeaderSet
	// Locator performs the description document search. If nil, a shared
	// locator with the default probe client is used.
	Locator SpecLocator
	// Logger receives diagnostics. If nil, logging is disabled.
	Logger locator.Logger
}

// defaults shared by zero-configured detectors.
var (
	defaultHeaders = NewHeaderSet()
	defaultLocator = locator.New()
)

// New creates a Detector whose header set is the defaults plus the given
// custom names (case-folded once, here).
func New(customHeaders ...string) *Detector {
	return &Detector{Headers: NewHeaderSet(customHeaders...)}
}

// log returns the configured logger, or a no-op logger if none is set.
func (d *Detector) log() locator.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return locator.NopLogger{}
}

func (d *Detector) headers() HeaderSet {
	if d.Headers != nil {
		return d.Headers
	}
	return defaultHeaders
}

func (d *Detector) specLocator() SpecLocator {
	if d.Locator != nil {
		return d.Locator
	}
	return defaultLocator
}

// Decide produces the deprecation Decision for one exchange.
//
// If a configured deprecation header is present in respHeaders the decision
// short-circuits: no document lookup and no parameter analysis happen.
// Otherwise the locator searches upward from the descriptor's base URL; if
// no document is found, or the residual path does not begin with "/" (the
// document's location does not correspond to a sub-path of the request),
// document analysis is skipped and the exchange is reported not deprecated.
//
// Fatal locator or interpreter errors abort the decision: no partial result
// is returned alongside a non-nil error.
func (d *Detector) Decide(ctx context.Context, desc RequestDescriptor, respHeaders http.Header) (Decision, error) {
	if d.headers().Matches(respHeaders) {
		d.log().Debug("deprecation header present", "url", desc.BaseURL)
		return Decision{Deprecated: true, HeaderMatch: true}, nil
	}

	result, err := d.specLocator().Locate(ctx, desc.BaseURL)
	if err != nil {
		return Decision{}, err
	}
	if !result.Found() || !strings.HasPrefix(result.ResidualPath, "/") {
		return Decision{}, nil
	}

	opDeprecated, err := interpreter.OperationDeprecated(result.Document, result.ResidualPath, desc.Method)
	if err != nil {
		return Decision{}, err
	}

	var paramsDeprecated bool
	var names []string
	if desc.HasQuery() {
		paramsDeprecated, names, err = interpreter.DeprecatedParameters(result.Document, result.ResidualPath, desc.Method, desc.QueryParams)
		if err != nil {
			return Decision{}, err
		}
	}

	return Decision{
		Deprecated:           opDeprecated || paramsDeprecated,
		DeprecatedParameters: names,
		OperationDeprecated:  opDeprecated,
	}, nil
}
