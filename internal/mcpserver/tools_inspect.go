package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/itsmarvinmueller/depprobe/interpreter"
)

type inspectInput struct {
	Document    documentInput `json:"document"               jsonschema:"The description document to interpret"`
	Path        string        `json:"path"                   jsonschema:"Request path to look up, e.g. /items"`
	Method      string        `json:"method"                 jsonschema:"HTTP method of the operation"`
	QueryParams []string      `json:"query_params,omitempty" jsonschema:"Query-parameter names used by the request"`
}

type inspectOutput struct {
	Deprecated           bool     `json:"deprecated"`
	OperationDeprecated  bool     `json:"operation_deprecated"`
	DeprecatedParameters []string `json:"deprecated_parameters,omitempty"`
}

func handleInspect(ctx context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	if input.Path == "" || input.Method == "" {
		return errResult(fmt.Errorf("path and method are required")), inspectOutput{}, nil
	}

	doc, err := input.Document.resolve(ctx)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	opDeprecated, err := interpreter.OperationDeprecated(doc, input.Path, input.Method)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	output := inspectOutput{OperationDeprecated: opDeprecated, Deprecated: opDeprecated}
	if len(input.QueryParams) > 0 {
		params := make(map[string]bool, len(input.QueryParams))
		for _, name := range input.QueryParams {
			params[name] = true
		}
		paramsDeprecated, names, err := interpreter.DeprecatedParameters(doc, input.Path, input.Method, params)
		if err != nil {
			return errResult(err), inspectOutput{}, nil
		}
		output.DeprecatedParameters = names
		output.Deprecated = opDeprecated || paramsDeprecated
	}
	return nil, output, nil
}
