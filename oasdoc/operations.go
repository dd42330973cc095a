package oasdoc

import "github.com/itsmarvinmueller/depprobe/internal/httputil"

// OperationsByMethod extracts a map of all operations from a PathItem.
// Keys are lower-case HTTP methods; values are nil when the path item does
// not define an operation for that method.
func OperationsByMethod(pathItem *PathItem) map[string]*Operation {
	return map[string]*Operation{
		httputil.MethodGet:     pathItem.Get,
		httputil.MethodPut:     pathItem.Put,
		httputil.MethodPost:    pathItem.Post,
		httputil.MethodDelete:  pathItem.Delete,
		httputil.MethodOptions: pathItem.Options,
		httputil.MethodHead:    pathItem.Head,
		httputil.MethodPatch:   pathItem.Patch,
		httputil.MethodTrace:   pathItem.Trace,
	}
}
