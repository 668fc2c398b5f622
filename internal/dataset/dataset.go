// Package dataset reads content records and training examples from JSON
// or YAML files. Documents are checked against an embedded JSON Schema
// before they are decoded.
package dataset

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	// ErrUnsupportedFormat is returned for files that are neither JSON
	// nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrSchemaViolation is returned when a document does not match its
	// schema.
	ErrSchemaViolation = errors.New("dataset does not match schema")
)

// Format is the encoding of a dataset file.
type Format string

const (
	// FormatJSON is a JSON array.
	FormatJSON Format = "json"
	// FormatYAML is a YAML sequence.
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func readFile(path string) ([]byte, Format, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user on purpose
	if err != nil {
		return nil, "", fmt.Errorf("failed to read dataset: %w", err)
	}
	return data, format, nil
}

// validate checks data against the named embedded schema.
func validate(schema string, data []byte, format Format) error {
	raw, err := schemaFS.ReadFile("schemas/" + schema)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schema, err)
	}

	var doc gojsonschema.JSONLoader
	switch format {
	case FormatJSON:
		doc = gojsonschema.NewBytesLoader(data)
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to parse YAML dataset: %w", err)
		}
		doc = gojsonschema.NewGoLoader(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(raw), doc)
	if err != nil {
		return fmt.Errorf("failed to validate dataset: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(msgs, "; "))
	}
	return nil
}

func decode(data []byte, format Format, v any) error {
	var err error
	if format == FormatYAML {
		err = yaml.Unmarshal(data, v)
	} else {
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("failed to decode dataset: %w", err)
	}
	return nil
}
