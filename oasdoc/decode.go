package oasdoc

import (
	"bytes"
	"encoding/json"

	"go.yaml.in/yaml/v4"

	"github.com/itsmarvinmueller/depprobe/deperrors"
)

// SourceFormat represents the syntax a description document was parsed from.
type SourceFormat string

const (
	// SourceFormatJSON indicates the document body was structured JSON
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML indicates the document body was YAML flow syntax
	SourceFormatYAML SourceFormat = "yaml"
)

// ParseJSON parses a candidate description document from strict JSON.
// The body must be a JSON object carrying both the "openapi" version marker
// and an "info" field; anything else is a *deperrors.ParseError. source
// identifies where the body came from and only appears in error messages.
func ParseJSON(data []byte, source string) (*Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &deperrors.ParseError{
			Source: source,
			Format: string(SourceFormatJSON),
			Cause:  err,
		}
	}
	if err := validateRoot(raw, source, SourceFormatJSON); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &deperrors.ParseError{
			Source: source,
			Format: string(SourceFormatJSON),
			Cause:  err,
		}
	}
	doc.SourceFormat = SourceFormatJSON
	return &doc, nil
}

// ParseYAML parses a candidate description document from YAML flow syntax,
// applying the same two-field acceptance check as ParseJSON.
func ParseYAML(data []byte, source string) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &deperrors.ParseError{
			Source: source,
			Format: string(SourceFormatYAML),
			Cause:  err,
		}
	}
	if err := validateRoot(raw, source, SourceFormatYAML); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &deperrors.ParseError{
			Source: source,
			Format: string(SourceFormatYAML),
			Cause:  err,
		}
	}
	doc.SourceFormat = SourceFormatYAML
	return &doc, nil
}

// Parse detects the body's format from its content and dispatches to
// ParseJSON or ParseYAML. JSON objects/arrays start with '{' or '['; anything
// else is treated as YAML.
func Parse(data []byte, source string) (*Document, error) {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return ParseJSON(data, source)
	}
	return ParseYAML(data, source)
}

// validateRoot applies the shared post-parse acceptance check: the parsed
// root must contain both the version marker field and the info field,
// regardless of which syntax the body arrived in.
func validateRoot(raw map[string]any, source string, format SourceFormat) error {
	if _, ok := raw["openapi"]; !ok {
		return &deperrors.ParseError{
			Source:  source,
			Format:  string(format),
			Message: `not a description document: missing "openapi" field`,
		}
	}
	if _, ok := raw["info"]; !ok {
		return &deperrors.ParseError{
			Source:  source,
			Format:  string(format),
			Message: `not a description document: missing "info" field`,
		}
	}
	return nil
}
