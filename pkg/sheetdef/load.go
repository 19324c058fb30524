package sheetdef

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-props/props/pkg/errors"
)

// Format identifies a definition encoding.
type Format int

const (
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML Format = iota
	// FormatTOML decodes with github.com/pelletier/go-toml/v2.
	FormatTOML
)

// Load reads and validates a definition file, choosing the decoder from
// the file extension (.yaml/.yml or .toml).
func Load(path string) (*Definition, error) {
	const op = "sheetdef.Load"

	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return nil, errors.Pathf(op, errors.KindIO, path,
			"unsupported definition extension %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindIO, Path: path, Err: err}
	}

	d, err := Parse(data, format)
	if err != nil {
		if e, ok := err.(*errors.Error); ok && e.Path == "" {
			e.Path = path
		}
		return nil, err
	}
	return d, nil
}

// Parse decodes and validates a definition from raw bytes.
func Parse(data []byte, format Format) (*Definition, error) {
	const op = "sheetdef.Parse"

	var d Definition
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, errors.E(op, errors.KindDecode, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &d); err != nil {
			return nil, errors.E(op, errors.KindDecode, err)
		}
	default:
		return nil, errors.E(op, errors.KindDecode, fmt.Errorf("unknown format %d", format))
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
