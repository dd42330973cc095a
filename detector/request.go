package detector

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/itsmarvinmueller/depprobe/deperrors"
)

// RequestDescriptor captures the parts of a request that deprecation
// detection needs. Immutable per exchange.
type RequestDescriptor struct {
	// Method is the HTTP method as sent; matched case-insensitively against
	// the description document.
	Method string
	// Path is the request URL path, without query or fragment.
	Path string
	// BaseURL is scheme+authority+path (no query, no fragment); the entry
	// point for the description document search.
	BaseURL string
	// QueryParams holds the names of the request's query parameters, never
	// their values. Nil when the request carried no query.
	QueryParams map[string]bool
}

// HasQuery reports whether the request carried any query parameters.
func (rd RequestDescriptor) HasQuery() bool {
	return len(rd.QueryParams) > 0
}

// DescribeRequest builds a RequestDescriptor from an *http.Request.
func DescribeRequest(req *http.Request) RequestDescriptor {
	return Describe(req.Method, req.URL)
}

// Describe builds a RequestDescriptor from a method and a parsed URL.
func Describe(method string, u *url.URL) RequestDescriptor {
	base := &url.URL{
		Scheme: u.Scheme,
		User:   u.User,
		Host:   u.Host,
		Path:   u.Path,
	}
	return RequestDescriptor{
		Method:      method,
		Path:        u.Path,
		BaseURL:     base.String(),
		QueryParams: queryParamNames(u.RawQuery),
	}
}

// DescribeURL parses rawURL and builds a RequestDescriptor from it.
func DescribeURL(method, rawURL string) (RequestDescriptor, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return RequestDescriptor{}, &deperrors.URLError{URL: rawURL, Cause: err}
	}
	return Describe(method, u), nil
}

// queryParamNames extracts parameter names from a raw query string by
// splitting on '&' and then on '=', keeping only the key of each pair.
func queryParamNames(rawQuery string) map[string]bool {
	if rawQuery == "" {
		return nil
	}
	params := make(map[string]bool)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		name, _, _ := strings.Cut(pair, "=")
		params[name] = true
	}
	return params
}
