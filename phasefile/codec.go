package phasefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// Decode reads one document. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Document, error) {
	var d Document
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode toml: %v: %w", err, ErrInvalidDocument)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %v: %w", err, ErrInvalidDocument)
		}
	default:
		return nil, fmt.Errorf("decode %q: %w", format, ErrUnsupportedFormat)
	}

	return &d, nil
}

// Encode writes d in the given format.
func Encode(w io.Writer, d *Document, format Format) error {
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetArraysMultiline(false)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("encode %q: %w", format, ErrUnsupportedFormat)
	}

	return nil
}

// Load reads the document at path; the extension selects the format.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Source = path

	return d, nil
}

// Save writes d to path in the format the extension selects.
func Save(path string, d *Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, d, format); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// IsDocument reports whether the file name has a supported extension.
func IsDocument(name string) bool {
	_, err := FormatFromPath(name)
	return err == nil
}

// List returns the paths of the documents in dir (not recursive) in
// file-name order. Files with other extensions are skipped.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotFound)
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries { // os.ReadDir sorts by name
		if e.IsDir() || !IsDocument(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	return paths, nil
}

// LoadAll loads every document List finds in dir.
func LoadAll(dir string) ([]*Document, error) {
	paths, err := List(dir)
	if err != nil {
		return nil, err
	}
	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		d, err := Load(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, nil
}
