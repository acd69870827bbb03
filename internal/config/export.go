package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ExportFormat is a serialization format for preset files
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportTOML ExportFormat = "toml"
	ExportJSON ExportFormat = "json"
)

// ParseExportFormat parses yaml, yml, toml or json.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return ExportYAML, nil
	case "toml":
		return ExportTOML, nil
	case "json":
		return ExportJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected yaml, toml or json)", s)
	}
}

// FormatForPath guesses the format from a file extension, defaulting to YAML.
func FormatForPath(path string) ExportFormat {
	if f, err := ParseExportFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return ExportYAML
}

// Export writes the registry to w in the given format.
func (r *Registry) Export(w io.Writer, format ExportFormat) error {
	switch format {
	case ExportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	case ExportTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil

	case ExportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// Decode parses a preset file in the given format, then checks the version
// and every preset.
func Decode(data []byte, format ExportFormat) (*Registry, error) {
	var registry Registry

	switch format {
	case ExportYAML:
		if err := yaml.Unmarshal(data, &registry); err != nil {
			return nil, err
		}
	case ExportTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&registry); err != nil {
			return nil, err
		}
	case ExportJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&registry); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err := registry.normalize(); err != nil {
		return nil, err
	}
	return &registry, nil
}
