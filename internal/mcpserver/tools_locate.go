package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type locateInput struct {
	URL string `json:"url" jsonschema:"The URL to search upward from"`
}

type locateOutput struct {
	Found        bool   `json:"found"`
	ResidualPath string `json:"residual_path,omitempty"`
	Format       string `json:"format,omitempty"`
	OpenAPI      string `json:"openapi,omitempty"`
	Title        string `json:"title,omitempty"`
	Version      string `json:"version,omitempty"`
	PathCount    int    `json:"path_count,omitempty"`
}

func handleLocate(ctx context.Context, _ *mcp.CallToolRequest, input locateInput) (*mcp.CallToolResult, locateOutput, error) {
	if input.URL == "" {
		return errResult(fmt.Errorf("url is required")), locateOutput{}, nil
	}

	result, err := newDetector().Locator.Locate(ctx, input.URL)
	if err != nil {
		return errResult(err), locateOutput{}, nil
	}
	if !result.Found() {
		return nil, locateOutput{}, nil
	}

	doc := result.Document
	output := locateOutput{
		Found:        true,
		ResidualPath: result.ResidualPath,
		Format:       string(doc.SourceFormat),
		OpenAPI:      doc.OpenAPI,
		PathCount:    len(doc.Paths),
	}
	if doc.Info != nil {
		output.Title = doc.Info.Title
		output.Version = doc.Info.Version
	}
	return nil, output, nil
}
