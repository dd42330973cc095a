// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes depprobe capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/itsmarvinmueller/depprobe"
	"github.com/itsmarvinmueller/depprobe/detector"
	"github.com/itsmarvinmueller/depprobe/locator"
)

const serverInstructions = `depprobe MCP server — detects deprecated HTTP API usage from deprecation response headers and OpenAPI description documents.

Configuration: All defaults are configurable via DEPPROBE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- DEPPROBE_HTTP_TIMEOUT (default: 30s) — timeout for exchanges and probe requests
- DEPPROBE_EXTRA_HEADERS — comma-separated deprecation header names added to the defaults (deprecation, sunset)
- DEPPROBE_USER_AGENT — User-Agent for probe requests
- DEPPROBE_ALLOW_PRIVATE_IPS (default: false) — allow requests to private/loopback addresses
- DEPPROBE_MAX_INLINE_SIZE (default: 4MiB) — maximum inline document content size

Tools: check performs a live exchange and analyzes it; locate searches upward from a URL for a description document; inspect interprets a provided document against a path, method, and query-parameter names.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "depprobe", Version: depprobe.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Perform a live HTTP exchange and report whether it targets deprecated API surface. Checks deprecation response headers first; when none matched, searches upward from the request URL for an OpenAPI description document and interprets the matched operation and query parameters. Extra header names are configurable via DEPPROBE_EXTRA_HEADERS.",
	}, handleCheck)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "locate",
		Description: "Search upward from a URL for an OpenAPI description document, probing {url}/openapi.json then {url}/openapi.yaml at each path level. Returns whether a document was found, its location, format, title, and version, and the residual request path below it.",
	}, handleLocate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Interpret an OpenAPI description document against a path, HTTP method, and optional query-parameter names. Reports whether the operation is deprecated and which of the given query parameters the document marks deprecated. Provide the document as inline content, a file path, or a URL to search from.",
	}, handleInspect)
}

// newDetector builds the configured Detector backed by the SSRF-safe probe
// client.
func newDetector() *detector.Detector {
	loc := locator.New()
	loc.HTTPClient = newSafeHTTPClient()
	loc.UserAgent = cfg.UserAgent
	return &detector.Detector{
		Headers: detector.NewHeaderSet(cfg.ExtraHeaders...),
		Locator: loc,
	}
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
