// Package render writes configuration values in human-readable formats.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding
type Format string

const (
	// FormatTOML encodes using toml struct tags
	FormatTOML Format = "toml"
	// FormatYAML encodes using yaml struct tags
	FormatYAML Format = "yaml"
	// FormatJSON encodes indented JSON using json struct tags
	FormatJSON Format = "json"
	// FormatFlat writes one sorted "path = value" line per leaf, keyed by toml tags
	FormatFlat Format = "flat"
)

// ErrUnknownFormat is returned for format names that are not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats in display order.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON, FormatFlat}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Write encodes v to w in the requested format.
func Write(w io.Writer, v any, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case FormatFlat:
		return writeFlat(w, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

// writeFlat converts v to a nested map through its toml tags and writes the
// flattened paths in sorted order.
func writeFlat(w io.Writer, v any) error {
	nested := make(map[string]any)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &nested,
		TagName: "toml",
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("failed to flatten %T: %w", v, err)
	}

	flat := flattenMap(nested, "")
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if _, err := fmt.Fprintf(w, "%s = %v\n", path, flat[path]); err != nil {
			return err
		}
	}
	return nil
}

// flattenMap converts a nested map[string]any to a flat map[string]any with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}
