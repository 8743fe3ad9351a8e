package openapi

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source supplies raw OpenAPI document bytes.
type Source interface {
	Location() string
	Read() ([]byte, error)
}

// fileSource identifies on-disk OpenAPI documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }

func (s fileSource) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", s.path, err)
	}
	return data, nil
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// bytesSource wraps an in-memory document, useful for embedded schemas and
// tests.
type bytesSource struct {
	name string
	data []byte
}

func (s bytesSource) Location() string      { return s.name }
func (s bytesSource) Read() ([]byte, error) { return s.data, nil }

// SourceFromBytes returns a Source over raw document bytes. The name is only
// used in diagnostics.
func SourceFromBytes(name string, data []byte) Source {
	return bytesSource{name: name, data: data}
}
