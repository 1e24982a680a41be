// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a style file encoding.
type Format string

// Supported formats.
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
	}
	return "", fmt.Errorf("style: unsupported config extension %q", filepath.Ext(path))
}

// LoadFile reads a style file, expanding environment variables, and layers
// it over Default. Keys missing from the file keep their default values.
func LoadFile(path string) (Style, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Style{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("style: failed to read %s: %w", path, err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return Style{}, fmt.Errorf("style: %s: %w", path, err)
	}
	return s, nil
}

// Decode parses data in the given format over Default and validates the
// result.
func Decode(data []byte, format Format) (Style, error) {
	s := Default()
	expanded := os.ExpandEnv(string(data))

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Style{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(expanded, &s)
		if err != nil {
			return Style{}, fmt.Errorf("failed to parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Style{}, fmt.Errorf("unknown toml keys: %v", undecoded)
		}
	default:
		return Style{}, fmt.Errorf("unsupported format %q", format)
	}

	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}
