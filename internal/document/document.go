// Package document loads IR documents (YAML or JSON with comments) and offers
// loosely-typed field access for decoding them into strict IR values.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of an IR document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from the file extension; anything that is
// not .json or .jsonc is read as YAML, a superset of JSON
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON
	}
	return FormatYAML
}

// Load reads an IR document from disk
func Load(path string) ([]Fields, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied document path
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	docs, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// Read loads a document from disk without interpreting its shape
func Read(path string) (any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied document path
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	v, err := Unmarshal(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Unmarshal parses YAML or JSON with comments into plain maps and lists
func Unmarshal(data []byte, format Format) (any, error) {
	var raw any
	switch format {
	case FormatJSON:
		// Remove comments using jsonc
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	return raw, nil
}

// Decode parses a document holding either a single IR object or a list of them
func Decode(data []byte, format Format) ([]Fields, error) {
	raw, err := Unmarshal(data, format)
	if err != nil {
		return nil, err
	}

	switch v := raw.(type) {
	case nil:
		return []Fields{}, nil
	case []any:
		out := make([]Fields, 0, len(v))
		for i, item := range v {
			f, err := AsFields(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, f)
		}
		return out, nil
	default:
		f, err := AsFields(v)
		if err != nil {
			return nil, err
		}
		return []Fields{f}, nil
	}
}

// Encode serializes IR objects in the given format
func Encode(v any, format Format) ([]byte, error) {
	if format == FormatJSON {
		return json.MarshalIndent(v, "", "  ")
	}
	return yaml.Marshal(v)
}
