// Package profile loads the static knowledge document injected into the
// domain-restricted assistant prompt.
package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Document is the opaque profile JSON. No schema is enforced; the document is
// serialized verbatim into the system prompt.
type Document struct {
	raw json.RawMessage
}

// Load reads and validates the profile document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile document: %w", err)
	}
	return Parse(data)
}

// Parse validates raw JSON as a profile document.
func Parse(data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("profile document is not valid JSON")
	}
	return &Document{raw: json.RawMessage(data)}, nil
}

// Pretty returns the document indented with two spaces, the form embedded
// into the system prompt.
func (d *Document) Pretty() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, d.raw, "", "  "); err != nil {
		return string(d.raw)
	}
	return buf.String()
}

// Raw returns the document bytes as loaded.
func (d *Document) Raw() json.RawMessage {
	return d.raw
}
