package themes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for theme files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("themes: unsupported theme file format")

// Format is a theme file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Parse decodes a theme definition.
//
//	name: tailwind
//	widgets:
//	  button:
//	    class: [px-4, py-2, rounded]
//	    attrs: {data-theme: tailwind}
func Parse(data []byte, format Format) (Definition, error) {
	var def Definition
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &def)
	case FormatTOML:
		err = toml.Unmarshal(data, &def)
	default:
		return def, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return def, fmt.Errorf("themes: decode %s: %w", format, err)
	}
	if def.Name == "" {
		return def, errors.New("themes: theme name is required")
	}
	return def, nil
}

// LoadFile reads a YAML or TOML theme definition and builds a ClassTheme.
func LoadFile(path string) (*ClassTheme, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("themes: read %s: %w", path, err)
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(def), nil
}
