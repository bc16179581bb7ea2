package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnsupportedExtension = errors.New("unsupported site file extension")

// ManifestPathValidator checks that a site manifest path is safe to read.
type ManifestPathValidator struct {
	// Extensions lists the accepted file extensions, lower case with dot.
	Extensions []string
	// AllowHomeExpansion permits a leading "~/".
	AllowHomeExpansion bool
	MaxPathLength      int
}

func NewManifestPathValidator() *ManifestPathValidator {
	return &ManifestPathValidator{
		Extensions:         []string{".toml", ".yaml", ".yml"},
		AllowHomeExpansion: true,
		MaxPathLength:      4096,
	}
}

// ValidateAndSanitize returns the absolute, cleaned path of an existing
// regular manifest file.
func (v *ManifestPathValidator) ValidateAndSanitize(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if len(path) > v.MaxPathLength {
		return "", fmt.Errorf("path too long (max %d characters)", v.MaxPathLength)
	}
	if err := validateCharacters(path); err != nil {
		return "", err
	}

	clean, err := v.normalize(path)
	if err != nil {
		return "", fmt.Errorf("path normalization failed: %w", err)
	}

	if !v.extensionAllowed(clean) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(clean))
	}

	info, err := os.Stat(clean)
	if err != nil {
		return "", fmt.Errorf("checking site file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("not a regular file: %s", clean)
	}
	return clean, nil
}

func validateCharacters(path string) error {
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null bytes")
	}
	for _, r := range path {
		if r < 32 && r != '\t' {
			return fmt.Errorf("path contains control characters")
		}
	}
	return nil
}

func (v *ManifestPathValidator) normalize(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		if !v.AllowHomeExpansion || !strings.HasPrefix(path, "~/") {
			return "", fmt.Errorf("tilde expansion not allowed or invalid tilde usage")
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot make path absolute: %w", err)
	}
	return filepath.Clean(abs), nil
}

func (v *ManifestPathValidator) extensionAllowed(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range v.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
