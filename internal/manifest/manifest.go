// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest reads and writes multi-document YAML streams.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trainjob-migrate/pkg/types"
)

// indent matches the two-space style of kubectl-generated manifests.
const indent = 2

// Decode reads every document in r. Empty documents (a bare "---" or a
// trailing separator) are dropped; all other documents are returned in
// stream order, whatever their root type.
func Decode(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	var docs []any
	for i := 0; ; i++ {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing document %d: %w", i+1, err)
		}
		if doc == nil {
			continue
		}
		docs = append(docs, doc)
	}
}

// DecodeBytes is Decode over an in-memory buffer.
func DecodeBytes(data []byte) ([]any, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes docs to w as one YAML stream separated by "---".
func Encode(w io.Writer, docs []any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	for i, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding document %d: %w", i+1, err)
		}
	}
	return enc.Close()
}

// EncodeBytes is Encode into a new buffer.
func EncodeBytes(docs []any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, docs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AsDocument returns doc as a mapping document when its root is a mapping.
func AsDocument(doc any) (types.Document, bool) {
	m, ok := doc.(map[string]any)
	return m, ok
}

// Kind returns the kind field of a mapping document, or "" when absent.
func Kind(doc any) string {
	m, ok := AsDocument(doc)
	if !ok {
		return ""
	}
	k, _ := m["kind"].(string)
	return k
}

// Name returns metadata.name of a mapping document, or "" when absent.
func Name(doc any) string {
	m, ok := AsDocument(doc)
	if !ok {
		return ""
	}
	meta, _ := m["metadata"].(map[string]any)
	n, _ := meta["name"].(string)
	return n
}
