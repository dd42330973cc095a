package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/itsmarvinmueller/depprobe/oasdoc"
)

// documentInput represents the three ways a description document can be
// provided to a tool. Exactly one of File, URL, or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a description document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to search upward from for a description document"`
	Content string `json:"content,omitempty" jsonschema:"Inline description document content (JSON or YAML)"`
}

// resolve parses the document from whichever input was provided. URL inputs
// run the upward search and fail when no document was found.
func (d documentInput) resolve(ctx context.Context) (*oasdoc.Document, error) {
	count := 0
	if d.File != "" {
		count++
	}
	if d.URL != "" {
		count++
	}
	if d.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	switch {
	case d.File != "":
		data, err := os.ReadFile(d.File)
		if err != nil {
			return nil, err
		}
		return oasdoc.Parse(data, d.File)
	case d.URL != "":
		loc := newDetector().Locator
		result, err := loc.Locate(ctx, d.URL)
		if err != nil {
			return nil, err
		}
		if !result.Found() {
			return nil, fmt.Errorf("no description document found searching upward from %s", d.URL)
		}
		return result.Document, nil
	default:
		if len(d.Content) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set DEPPROBE_MAX_INLINE_SIZE to increase",
				len(d.Content), cfg.MaxInlineSize)
		}
		return oasdoc.Parse([]byte(d.Content), "inline content")
	}
}
