package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMalformed indicates a document that is not valid YAML for its type,
// including unknown fields.
var ErrMalformed = errors.New("fixture: malformed document")

// Decode parses a snapshot document from r. Unknown fields are rejected.
// An empty input yields an empty Document.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("fixture: decode: %w: %w", ErrMalformed, err)
	}

	return &doc, nil
}

// Load reads and parses the snapshot document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Encode writes v as YAML with two-space indentation.
func Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("fixture: encode: %w", err)
	}

	return enc.Close()
}
