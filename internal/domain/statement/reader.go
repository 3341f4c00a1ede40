package statement

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Reader supplies a ParsedDocument to the extraction engine. PDF
// decryption, text extraction and OCR happen upstream of this boundary;
// a Reader failure is fatal to the run, the engine never sees a
// partially read document.
type Reader interface {
	Read(ctx context.Context) (*ParsedDocument, error)
}

// JSONReader decodes a pre-extracted document from its JSON interchange
// form: {"pages": [{"page_number": 1, "text": "...", "tables": [...]}]}.
type JSONReader struct {
	src io.Reader
}

// NewJSONReader creates a reader over an open JSON document stream.
func NewJSONReader(src io.Reader) *JSONReader {
	return &JSONReader{src: src}
}

// Read decodes the document. Malformed JSON is a hard error.
func (r *JSONReader) Read(ctx context.Context) (*ParsedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc ParsedDocument
	dec := json.NewDecoder(r.src)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}

// ReadFile loads a ParsedDocument from a JSON file on disk.
func ReadFile(ctx context.Context, path string) (*ParsedDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := NewJSONReader(f).Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}
