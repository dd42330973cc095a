package mcpserver

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/itsmarvinmueller/depprobe/detector"
)

type checkInput struct {
	URL    string `json:"url"              jsonschema:"The request URL to exchange and analyze"`
	Method string `json:"method,omitempty" jsonschema:"HTTP method for the exchange (default GET)"`
}

type checkOutput struct {
	StatusCode           int      `json:"status_code"`
	Deprecated           bool     `json:"deprecated"`
	HeaderMatch          bool     `json:"header_match"`
	OperationDeprecated  bool     `json:"operation_deprecated"`
	DeprecatedParameters []string `json:"deprecated_parameters,omitempty"`
	AnalysisError        string   `json:"analysis_error,omitempty"`
}

func handleCheck(ctx context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	if input.URL == "" {
		return errResult(fmt.Errorf("url is required")), checkOutput{}, nil
	}
	method := input.Method
	if method == "" {
		method = http.MethodGet
	}

	var decision detector.Decision
	var analysisErr error
	client := &http.Client{
		Timeout:       cfg.HTTPTimeout,
		CheckRedirect: checkRedirect,
		Transport: &detector.Transport{
			Base:     newSafeTransport(),
			Detector: newDetector(),
			OnDecision: func(_ *http.Request, d detector.Decision) {
				decision = d
			},
			OnError: func(_ *http.Request, err error) {
				analysisErr = err
			},
		},
	}

	req, err := http.NewRequestWithContext(ctx, method, input.URL, nil)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	resp, err := client.Do(req)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	output := checkOutput{
		StatusCode:           resp.StatusCode,
		Deprecated:           decision.Deprecated,
		HeaderMatch:          decision.HeaderMatch,
		OperationDeprecated:  decision.OperationDeprecated,
		DeprecatedParameters: decision.DeprecatedParameters,
	}
	if analysisErr != nil {
		output.AnalysisError = sanitizeError(analysisErr)
	}
	return nil, output, nil
}
