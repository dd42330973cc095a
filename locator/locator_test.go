package locator

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmarvinmueller/depprobe/deperrors"
	"github.com/itsmarvinmueller/depprobe/oasdoc"
)

const testJSONDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "Test API", "version": "1.0.0"},
  "paths": {"/items": {"get": {"deprecated": true}}}
}`

const testYAMLDoc = `openapi: "3.0.3"
info:
  title: Test API
  version: 1.0.0
paths:
  /items:
    get:
      deprecated: true
`

// specServer serves fixed bodies for exact request paths and 404 for
// everything else, counting every probe it receives.
func specServer(t *testing.T, bodies map[string]string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var probes atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes.Add(1)
		body, ok := bodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &probes
}

func TestLocateAtRequestPathLevel(t *testing.T) {
	srv, _ := specServer(t, map[string]string{
		"/api/v1/openapi.json": testJSONDoc,
	})

	result, err := New().Locate(context.Background(), srv.URL+"/api/v1")
	require.NoError(t, err)
	require.True(t, result.Found())
	assert.Equal(t, "", result.ResidualPath)
	assert.Equal(t, oasdoc.SourceFormatJSON, result.Document.SourceFormat)
}

func TestLocateWalksUpward(t *testing.T) {
	srv, _ := specServer(t, map[string]string{
		"/api/openapi.json": testJSONDoc,
	})

	result, err := New().Locate(context.Background(), srv.URL+"/api/v1/items")
	require.NoError(t, err)
	require.True(t, result.Found())
	assert.Equal(t, "/v1/items", result.ResidualPath)
}

func TestLocatePrefersJSONOverYAML(t *testing.T) {
	srv, _ := specServer(t, map[string]string{
		"/api/openapi.json": testJSONDoc,
		"/api/openapi.yaml": testYAMLDoc,
	})

	result, err := New().Locate(context.Background(), srv.URL+"/api")
	require.NoError(t, err)
	require.True(t, result.Found())
	assert.Equal(t, oasdoc.SourceFormatJSON, result.Document.SourceFormat)
}

func TestLocateFallsBackToYAML(t *testing.T) {
	srv, _ := specServer(t, map[string]string{
		"/api/openapi.yaml": testYAMLDoc,
	})

	result, err := New().Locate(context.Background(), srv.URL+"/api/items")
	require.NoError(t, err)
	require.True(t, result.Found())
	assert.Equal(t, oasdoc.SourceFormatYAML, result.Document.SourceFormat)
	assert.Equal(t, "/items", result.ResidualPath)
}

func TestLocateSkipsMalformedCandidates(t *testing.T) {
	// The closer candidate returns 200 with a body that is not a
	// description document; the search must continue upward.
	srv, _ := specServer(t, map[string]string{
		"/api/v1/openapi.json": `{"not": "a spec"}`,
		"/api/v1/openapi.yaml": "::: not yaml :::",
		"/api/openapi.json":    testJSONDoc,
	})

	result, err := New().Locate(context.Background(), srv.URL+"/api/v1")
	require.NoError(t, err)
	require.True(t, result.Found())
	assert.Equal(t, "/v1", result.ResidualPath)
}

func TestLocateNotFound(t *testing.T) {
	srv, probes := specServer(t, nil)

	result, err := New().Locate(context.Background(), srv.URL+"/a/b/c")
	require.NoError(t, err, "not found is a valid outcome, not an error")
	assert.False(t, result.Found())
	assert.Equal(t, "", result.ResidualPath, "accumulated residual is discarded")

	// Levels probed: /a/b/c, /a/b, /a — two probes each. The host root is
	// not probed from a non-empty path (preserved source behavior).
	assert.Equal(t, int64(6), probes.Load())
}

func TestLocateHostRootProbedOnlyFromEmptyPath(t *testing.T) {
	srv, _ := specServer(t, map[string]string{
		"/openapi.json": testJSONDoc,
	})

	t.Run("empty request path reaches the root document", func(t *testing.T) {
		result, err := New().Locate(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.True(t, result.Found())
		assert.Equal(t, "", result.ResidualPath)
	})

	t.Run("single-segment path stops before the root", func(t *testing.T) {
		result, err := New().Locate(context.Background(), srv.URL+"/a")
		require.NoError(t, err)
		assert.False(t, result.Found())
	})
}

func TestLocateStripsQueryAndFragment(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(testJSONDoc))
	}))
	defer srv.Close()

	result, err := New().Locate(context.Background(), srv.URL+"/api?legacy=1#frag")
	require.NoError(t, err)
	require.True(t, result.Found())
	assert.Empty(t, rawQuery, "probe URLs must not carry the request query")
}

func TestLocateTransportErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := New().Locate(context.Background(), base+"/api/v1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, deperrors.ErrTransport))

	var transportErr *deperrors.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Contains(t, transportErr.URL, "/openapi.json")
}

func TestLocateInvalidBaseURL(t *testing.T) {
	_, err := New().Locate(context.Background(), "http://host:bad-port/api")
	require.Error(t, err)
	assert.True(t, errors.Is(err, deperrors.ErrURL))
}

func TestLocateUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(testJSONDoc))
	}))
	defer srv.Close()

	t.Run("default user agent", func(t *testing.T) {
		_, err := New().Locate(context.Background(), srv.URL+"/api")
		require.NoError(t, err)
		assert.Contains(t, got, "depprobe/")
	})

	t.Run("custom user agent", func(t *testing.T) {
		l := &Locator{UserAgent: "custom-agent/1.0"}
		_, err := l.Locate(context.Background(), srv.URL+"/api")
		require.NoError(t, err)
		assert.Equal(t, "custom-agent/1.0", got)
	})
}

func TestLocateUsesInjectedClient(t *testing.T) {
	srv, _ := specServer(t, map[string]string{
		"/openapi.json": testJSONDoc,
	})

	var calls atomic.Int64
	client := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			calls.Add(1)
			return http.DefaultTransport.RoundTrip(req)
		}),
	}
	l := &Locator{HTTPClient: client}

	result, err := l.Locate(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, result.Found())
	assert.Equal(t, int64(1), calls.Load())
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
