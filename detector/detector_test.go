package detector

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmarvinmueller/depprobe/deperrors"
	"github.com/itsmarvinmueller/depprobe/locator"
	"github.com/itsmarvinmueller/depprobe/oasdoc"
)

// fakeLocator returns a fixed result and counts invocations.
type fakeLocator struct {
	result locator.Result
	err    error
	calls  int
}

func (f *fakeLocator) Locate(_ context.Context, _ string) (locator.Result, error) {
	f.calls++
	return f.result, f.err
}

func itemsDoc(deprecatedOp bool, params ...*oasdoc.Parameter) *oasdoc.Document {
	return &oasdoc.Document{
		OpenAPI: "3.0.0",
		Info:    &oasdoc.Info{Title: "Items API", Version: "1.0.0"},
		Paths: map[string]*oasdoc.PathItem{
			"/items": {
				Get: &oasdoc.Operation{
					Deprecated: deprecatedOp,
					Parameters: params,
				},
			},
		},
	}
}

func queryParam(name string, deprecated bool) *oasdoc.Parameter {
	return &oasdoc.Parameter{Name: name, In: oasdoc.ParamInQuery, Deprecated: deprecated}
}

func TestDecideHeaderShortCircuit(t *testing.T) {
	fake := &fakeLocator{result: locator.Result{Document: itemsDoc(true), ResidualPath: "/items"}}
	d := &Detector{Locator: fake}

	h := http.Header{"deprecation": {"true"}}
	desc, err := DescribeURL("GET", "http://api.test/items")
	require.NoError(t, err)

	decision, err := d.Decide(context.Background(), desc, h)
	require.NoError(t, err)

	assert.True(t, decision.Deprecated)
	assert.True(t, decision.HeaderMatch)
	assert.Empty(t, decision.DeprecatedParameters)
	assert.Zero(t, fake.calls, "document lookup must not run when a header matched")
}

func TestDecideDeprecatedOperation(t *testing.T) {
	fake := &fakeLocator{result: locator.Result{Document: itemsDoc(true), ResidualPath: "/items"}}
	d := &Detector{Locator: fake}

	desc, err := DescribeURL("GET", "http://api.test/items")
	require.NoError(t, err)

	decision, err := d.Decide(context.Background(), desc, http.Header{})
	require.NoError(t, err)

	assert.True(t, decision.Deprecated)
	assert.True(t, decision.OperationDeprecated)
	assert.False(t, decision.HeaderMatch)
	assert.Empty(t, decision.DeprecatedParameters)
	assert.Equal(t, 1, fake.calls)
}

func TestDecideDeprecatedQueryParameter(t *testing.T) {
	doc := itemsDoc(false, queryParam("legacy", true), queryParam("fresh", false))
	fake := &fakeLocator{result: locator.Result{Document: doc, ResidualPath: "/items"}}
	d := &Detector{Locator: fake}

	desc, err := DescribeURL("GET", "http://api.test/items?legacy=1&fresh=2")
	require.NoError(t, err)

	decision, err := d.Decide(context.Background(), desc, http.Header{})
	require.NoError(t, err)

	assert.True(t, decision.Deprecated)
	assert.False(t, decision.OperationDeprecated)
	assert.Equal(t, []string{"legacy"}, decision.DeprecatedParameters)
}

func TestDecideParameterAnalysisSkippedWithoutQuery(t *testing.T) {
	// The operation carries no parameters object, which would be a fatal
	// error if parameter analysis ran. Without query parameters on the
	// request it must not run.
	fake := &fakeLocator{result: locator.Result{Document: itemsDoc(false), ResidualPath: "/items"}}
	d := &Detector{Locator: fake}

	desc, err := DescribeURL("GET", "http://api.test/items")
	require.NoError(t, err)

	decision, err := d.Decide(context.Background(), desc, http.Header{})
	require.NoError(t, err)
	assert.False(t, decision.Deprecated)
}

func TestDecideNoDocumentFound(t *testing.T) {
	fake := &fakeLocator{} // zero result: nothing found, no error
	d := &Detector{Locator: fake}

	desc, err := DescribeURL("GET", "http://api.test/items")
	require.NoError(t, err)

	decision, err := d.Decide(context.Background(), desc, http.Header{})
	require.NoError(t, err)
	assert.Equal(t, Decision{}, decision)
	assert.Equal(t, 1, fake.calls)
}

func TestDecideEmptyResidualSkipsAnalysis(t *testing.T) {
	// A document found at the request URL itself leaves no residual path,
	// so there is no operation to look up.
	fake := &fakeLocator{result: locator.Result{Document: itemsDoc(true), ResidualPath: ""}}
	d := &Detector{Locator: fake}

	desc, err := DescribeURL("GET", "http://api.test/items")
	require.NoError(t, err)

	decision, err := d.Decide(context.Background(), desc, http.Header{})
	require.NoError(t, err)
	assert.Equal(t, Decision{}, decision)
}

func TestDecideFatalErrors(t *testing.T) {
	t.Run("locator error aborts", func(t *testing.T) {
		fake := &fakeLocator{err: &deperrors.TransportError{URL: "http://api.test/openapi.json", Cause: errors.New("refused")}}
		d := &Detector{Locator: fake}

		desc, err := DescribeURL("GET", "http://api.test/items")
		require.NoError(t, err)

		decision, err := d.Decide(context.Background(), desc, http.Header{})
		require.ErrorIs(t, err, deperrors.ErrTransport)
		assert.Equal(t, Decision{}, decision)
	})

	t.Run("path not in document aborts", func(t *testing.T) {
		fake := &fakeLocator{result: locator.Result{Document: itemsDoc(true), ResidualPath: "/other"}}
		d := &Detector{Locator: fake}

		desc, err := DescribeURL("GET", "http://api.test/other")
		require.NoError(t, err)

		decision, err := d.Decide(context.Background(), desc, http.Header{})
		require.ErrorIs(t, err, deperrors.ErrPathNotFound)
		assert.Equal(t, Decision{}, decision)
	})

	t.Run("method not in document aborts", func(t *testing.T) {
		fake := &fakeLocator{result: locator.Result{Document: itemsDoc(true), ResidualPath: "/items"}}
		d := &Detector{Locator: fake}

		desc, err := DescribeURL("POST", "http://api.test/items")
		require.NoError(t, err)

		_, err = d.Decide(context.Background(), desc, http.Header{})
		require.ErrorIs(t, err, deperrors.ErrMethodNotFound)
	})

	t.Run("missing parameters object aborts", func(t *testing.T) {
		fake := &fakeLocator{result: locator.Result{Document: itemsDoc(false), ResidualPath: "/items"}}
		d := &Detector{Locator: fake}

		desc, err := DescribeURL("GET", "http://api.test/items?legacy=1")
		require.NoError(t, err)

		_, err = d.Decide(context.Background(), desc, http.Header{})
		require.ErrorIs(t, err, deperrors.ErrParametersNotFound)
	})
}

func TestNewAddsCustomHeaders(t *testing.T) {
	d := New("X-Api-Deprecated")
	assert.True(t, d.Headers["x-api-deprecated"])
	assert.True(t, d.Headers[HeaderDeprecation])
	assert.True(t, d.Headers[HeaderSunset])
}
