package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

// Format names a preset document encoding.
type Format string

// Supported preset encodings.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported preset extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// ParsePreset loads a preset file from disk, validates it, and returns the resulting model.
func ParsePreset(path string) (*Preset, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, glinterrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, glinterrors.NewParseError(path, 0, err)
	}

	return Parse(data, format, path)
}

// Parse decodes and validates preset data. name labels errors.
func Parse(data []byte, format Format, name string) (*Preset, error) {
	var preset Preset
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&preset); err != nil {
			return nil, glinterrors.NewParseError(name, extractLine(err), err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), &preset)
		if err != nil {
			return nil, glinterrors.NewParseError(name, tomlLine(err), err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, glinterrors.NewParseError(name, 0, fmt.Errorf("unknown field %q", undecoded[0].String()))
		}
	default:
		return nil, glinterrors.NewParseError(name, 0, fmt.Errorf("unsupported preset format %q", format))
	}

	if err := ValidatePreset(&preset); err != nil {
		return nil, err
	}

	return &preset, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var parseErr toml.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Position.Line
	}
	return extractLine(err)
}
