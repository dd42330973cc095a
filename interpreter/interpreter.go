// Package interpreter maps a concrete request onto the deprecation metadata
// inside a description document.
//
// Both entry points resolve the path and method independently: each is
// independently callable and validates the document structure for itself,
// without assuming the other ran first. Resolution failures are fatal for
// the call — the caller's path/method assumptions don't match the document,
// and no partial or best-effort answer is produced.
package interpreter

import (
	"sort"
	"strings"

	"github.com/itsmarvinmueller/depprobe/deperrors"
	"github.com/itsmarvinmueller/depprobe/internal/httputil"
	"github.com/itsmarvinmueller/depprobe/oasdoc"
)

// OperationDeprecated reports whether the operation at path/method is marked
// deprecated. An absent deprecated field means false; absence is not an
// error at this level.
//
// Errors: *deperrors.DocumentError when the document has no paths object,
// *deperrors.PathError when path is absent from it, *deperrors.MethodError
// when the lower-cased method has no operation under that path.
func OperationDeprecated(doc *oasdoc.Document, path, method string) (bool, error) {
	op, err := resolveOperation(doc, path, method)
	if err != nil {
		return false, err
	}
	return op.Deprecated, nil
}

// DeprecatedParameters resolves the operation at path/method and reports
// which of the supplied query-parameter names are declared deprecated.
//
// A name is included iff the declared parameter is marked deprecated, its
// location is "query", and its name appears in queryParams — so the result
// is always a subset of queryParams. The returned names are sorted.
//
// Beyond the resolution errors of OperationDeprecated, this fails with
// *deperrors.ParameterError when the operation declares no parameters array
// at all. An empty array is valid and yields an empty result.
func DeprecatedParameters(doc *oasdoc.Document, path, method string, queryParams map[string]bool) (bool, []string, error) {
	op, err := resolveOperation(doc, path, method)
	if err != nil {
		return false, nil, err
	}

	if op.Parameters == nil {
		return false, nil, &deperrors.ParameterError{Path: path, Method: strings.ToUpper(method)}
	}

	seen := make(map[string]bool)
	var deprecated []string
	for _, param := range op.Parameters {
		if param == nil {
			continue
		}
		if param.Deprecated && param.In == oasdoc.ParamInQuery && queryParams[param.Name] && !seen[param.Name] {
			seen[param.Name] = true
			deprecated = append(deprecated, param.Name)
		}
	}
	sort.Strings(deprecated)

	return len(deprecated) > 0, deprecated, nil
}

// resolveOperation walks document → paths → path item → operation,
// converting each missing level into its fatal error.
func resolveOperation(doc *oasdoc.Document, path, method string) (*oasdoc.Operation, error) {
	if doc == nil || doc.Paths == nil {
		return nil, &deperrors.DocumentError{Message: "missing paths object"}
	}

	item, ok := doc.Paths[path]
	if !ok || item == nil {
		return nil, &deperrors.PathError{Path: path}
	}

	op := oasdoc.OperationsByMethod(item)[httputil.NormalizeMethod(method)]
	if op == nil {
		return nil, &deperrors.MethodError{Path: path, Method: strings.ToUpper(method)}
	}
	return op, nil
}
