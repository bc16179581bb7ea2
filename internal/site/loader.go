package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/pders01/pagesnap/internal/validation"
)

//go:embed default_site.toml
var defaultSiteTOML []byte

// Default returns the built-in demo site.
func Default() (*Manifest, error) {
	m, err := Decode(defaultSiteTOML, ".toml")
	if err != nil {
		return nil, fmt.Errorf("parsing built-in site: %w", err)
	}
	return m, nil
}

// Load reads a manifest from path, or the built-in site when path is empty.
func Load(path string) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	clean, err := validation.NewManifestPathValidator().ValidateAndSanitize(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("reading site %s: %w", clean, err)
	}

	m, err := Decode(data, filepath.Ext(clean))
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", clean, err)
	}
	m.Source = clean
	return m, nil
}

// Decode parses data according to ext (".toml", ".yaml" or ".yml") and
// validates the result.
func Decode(data []byte, ext string) (*Manifest, error) {
	var m Manifest
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported site format %q", ext)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
