// Package loader handles memory image file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
)

// Loader handles loading memory image files from disk.
type Loader struct{}

// New creates a new memory image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete memory image from the given file.
func (l *Loader) Load(fileName string) ([]byte, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", fileName, err)
	}
	return data, nil
}

// LoadFromReader reads the complete memory image from the reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading memory image: %w", err)
	}
	return data, nil
}
