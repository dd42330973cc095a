package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/itsmarvinmueller/depprobe"
	"github.com/itsmarvinmueller/depprobe/detector"
	"github.com/itsmarvinmueller/depprobe/internal/mcpserver"
	"github.com/itsmarvinmueller/depprobe/interpreter"
	"github.com/itsmarvinmueller/depprobe/locator"
	"github.com/itsmarvinmueller/depprobe/oasdoc"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("depprobe v%s\n", depprobe.Version())
	case "help", "-h", "--help":
		printUsage()
	case "check":
		if err := handleCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "locate":
		if err := handleLocate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := handleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// checkFlags contains flags for the check command
type checkFlags struct {
	method  string
	headers string
	timeout time.Duration
	asJSON  bool
}

func setupCheckFlags() (*flag.FlagSet, *checkFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &checkFlags{}

	fs.StringVar(&flags.method, "X", "GET", "HTTP method for the exchange")
	fs.StringVar(&flags.method, "method", "GET", "HTTP method for the exchange")
	fs.StringVar(&flags.headers, "headers", "", "comma-separated deprecation header names added to the defaults")
	fs.DurationVar(&flags.timeout, "timeout", 30*time.Second, "timeout for the exchange and probe requests")
	fs.BoolVar(&flags.asJSON, "json", false, "emit the decision as JSON")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: depprobe check [flags] <url>\n\n")
		_, _ = fmt.Fprintf(output, "Perform a live exchange and report whether it targets deprecated API surface.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  depprobe check https://api.example.com/v1/items\n")
		_, _ = fmt.Fprintf(output, "  depprobe check -X DELETE https://api.example.com/v1/items?legacy=1\n")
		_, _ = fmt.Fprintf(output, "  depprobe check --headers x-api-deprecated --json https://api.example.com/v1/items\n")
	}

	return fs, flags
}

func handleCheck(args []string) error {
	fs, flags := setupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("check command requires exactly one URL")
	}

	rawURL := fs.Arg(0)

	var decision detector.Decision
	var analysisErr error
	client := &http.Client{
		Timeout: flags.timeout,
		Transport: &detector.Transport{
			Detector: detector.New(splitList(flags.headers)...),
			OnDecision: func(_ *http.Request, d detector.Decision) {
				decision = d
			},
			OnError: func(_ *http.Request, err error) {
				analysisErr = err
			},
		},
	}

	req, err := http.NewRequest(strings.ToUpper(flags.method), rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("performing exchange: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if flags.asJSON {
		out := struct {
			URL                  string   `json:"url"`
			Method               string   `json:"method"`
			StatusCode           int      `json:"status_code"`
			Deprecated           bool     `json:"deprecated"`
			HeaderMatch          bool     `json:"header_match"`
			OperationDeprecated  bool     `json:"operation_deprecated"`
			DeprecatedParameters []string `json:"deprecated_parameters,omitempty"`
			AnalysisError        string   `json:"analysis_error,omitempty"`
		}{
			URL:                  rawURL,
			Method:               req.Method,
			StatusCode:           resp.StatusCode,
			Deprecated:           decision.Deprecated,
			HeaderMatch:          decision.HeaderMatch,
			OperationDeprecated:  decision.OperationDeprecated,
			DeprecatedParameters: decision.DeprecatedParameters,
		}
		if analysisErr != nil {
			out.AnalysisError = analysisErr.Error()
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling decision: %w", err)
		}
		fmt.Println(string(data))
		if decision.Deprecated {
			os.Exit(1)
		}
		return nil
	}

	fmt.Printf("Deprecation Check\n")
	fmt.Printf("=================\n\n")
	fmt.Printf("depprobe version: %s\n", depprobe.Version())
	fmt.Printf("URL: %s\n", rawURL)
	fmt.Printf("Method: %s\n", req.Method)
	fmt.Printf("Status: %d\n\n", resp.StatusCode)

	if analysisErr != nil {
		return fmt.Errorf("analyzing exchange: %w", analysisErr)
	}

	printDecision(decision)
	if decision.Deprecated {
		os.Exit(1)
	}
	return nil
}

func printDecision(decision detector.Decision) {
	if !decision.Deprecated {
		fmt.Println("✓ No deprecated API usage detected")
		return
	}
	fmt.Println("✗ Deprecated API usage detected:")
	if decision.HeaderMatch {
		fmt.Println("  - response carried a deprecation header")
	}
	if decision.OperationDeprecated {
		fmt.Println("  - the operation is marked deprecated")
	}
	for _, name := range decision.DeprecatedParameters {
		fmt.Printf("  - query parameter %q is marked deprecated\n", name)
	}
}

// locateFlags contains flags for the locate command
type locateFlags struct {
	timeout time.Duration
}

func setupLocateFlags() (*flag.FlagSet, *locateFlags) {
	fs := flag.NewFlagSet("locate", flag.ContinueOnError)
	flags := &locateFlags{}

	fs.DurationVar(&flags.timeout, "timeout", 30*time.Second, "timeout for probe requests")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: depprobe locate [flags] <url>\n\n")
		_, _ = fmt.Fprintf(output, "Search upward from a URL for an OpenAPI description document.\n\n")
		_, _ = fmt.Fprintf(output, "At each path level, {url}/openapi.json is probed before {url}/openapi.yaml.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  depprobe locate https://api.example.com/v1/items\n")
	}

	return fs, flags
}

func handleLocate(args []string) error {
	fs, flags := setupLocateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("locate command requires exactly one URL")
	}

	rawURL := fs.Arg(0)

	loc := locator.New()
	loc.HTTPClient = &http.Client{Timeout: flags.timeout}

	result, err := loc.Locate(context.Background(), rawURL)
	if err != nil {
		return fmt.Errorf("locating description document: %w", err)
	}

	fmt.Printf("Description Document Locator\n")
	fmt.Printf("============================\n\n")
	fmt.Printf("depprobe version: %s\n", depprobe.Version())
	fmt.Printf("Search from: %s\n\n", rawURL)

	if !result.Found() {
		fmt.Println("✗ No description document found")
		os.Exit(1)
	}

	doc := result.Document
	fmt.Println("✓ Description document found")
	fmt.Printf("Format: %s\n", doc.SourceFormat)
	fmt.Printf("OpenAPI: %s\n", doc.OpenAPI)
	if doc.Info != nil {
		fmt.Printf("Title: %s\n", doc.Info.Title)
		fmt.Printf("Version: %s\n", doc.Info.Version)
	}
	fmt.Printf("Paths: %d\n", len(doc.Paths))
	fmt.Printf("Residual path: %q\n", result.ResidualPath)
	return nil
}

// inspectFlags contains flags for the inspect command
type inspectFlags struct {
	path   string
	method string
	query  string
}

func setupInspectFlags() (*flag.FlagSet, *inspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &inspectFlags{}

	fs.StringVar(&flags.path, "path", "", "request path to look up, e.g. /items (required)")
	fs.StringVar(&flags.method, "method", "GET", "HTTP method of the operation")
	fs.StringVar(&flags.query, "query", "", "comma-separated query-parameter names used by the request")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: depprobe inspect [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Interpret a description document against a path, method, and query parameters.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  depprobe inspect --path /items openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  depprobe inspect --path /items --method delete --query legacy,fresh openapi.json\n")
	}

	return fs, flags
}

func handleInspect(args []string) error {
	fs, flags := setupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one file path")
	}
	if flags.path == "" {
		fs.Usage()
		return fmt.Errorf("request path is required (use --path)")
	}

	specPath := fs.Arg(0)
	data, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	doc, err := oasdoc.Parse(data, specPath)
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	opDeprecated, err := interpreter.OperationDeprecated(doc, flags.path, flags.method)
	if err != nil {
		return fmt.Errorf("interpreting document: %w", err)
	}

	decision := detector.Decision{Deprecated: opDeprecated, OperationDeprecated: opDeprecated}
	if names := splitList(flags.query); len(names) > 0 {
		params := make(map[string]bool, len(names))
		for _, name := range names {
			params[name] = true
		}
		paramsDeprecated, deprecated, err := interpreter.DeprecatedParameters(doc, flags.path, flags.method, params)
		if err != nil {
			return fmt.Errorf("interpreting parameters: %w", err)
		}
		decision.Deprecated = opDeprecated || paramsDeprecated
		decision.DeprecatedParameters = deprecated
	}

	fmt.Printf("Description Document Inspector\n")
	fmt.Printf("==============================\n\n")
	fmt.Printf("depprobe version: %s\n", depprobe.Version())
	fmt.Printf("Specification: %s\n", specPath)
	fmt.Printf("Path: %s\n", flags.path)
	fmt.Printf("Method: %s\n\n", strings.ToUpper(flags.method))

	printDecision(decision)
	if decision.Deprecated {
		os.Exit(1)
	}
	return nil
}

// splitList splits a comma-separated flag value, trimming whitespace and
// dropping empty elements.
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func printUsage() {
	fmt.Println(`depprobe - deprecated HTTP API usage detection

Usage:
  depprobe <command> [options]

Commands:
  check       Perform a live exchange and report deprecated API usage
  locate      Search upward from a URL for an OpenAPI description document
  inspect     Interpret a description document against a path and method
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  depprobe check https://api.example.com/v1/items?legacy=1
  depprobe locate https://api.example.com/v1/items
  depprobe inspect --path /items --method get --query legacy openapi.yaml

Run 'depprobe <command> --help' for more information on a command.`)
}
