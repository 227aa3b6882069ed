package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/templates"
)

// ErrCatalogValidation is a sentinel that wraps catalog validation failures
// (as opposed to syntax, filesystem, or format errors). Callers can use
// errors.Is(err, ErrCatalogValidation) to distinguish the two.
var ErrCatalogValidation = errors.New("catalog validation failed")

// builtinSource names the embedded catalog in error messages.
const builtinSource = "built-in catalog"

// Load reads and validates the catalog at path. A missing file falls back to
// the embedded default catalog, matching the behavior of an unconfigured
// checkout.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debugf("catalog %s missing, using built-in defaults", path)
		return LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadCatalogFmt, path, err)
	}
	return Parse(data, path)
}

// LoadDefault parses the embedded default catalog.
func LoadDefault() (*Catalog, error) {
	data, err := templates.Read("environments.json")
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigParseBuiltinFmt, err)
	}
	return Parse(data, builtinSource)
}

// Parse decodes and validates catalog data. source appears in error messages
// and its extension selects the format: .toml decodes as TOML, while .json,
// .yaml, .yml, and extensionless sources decode as YAML (which accepts JSON).
func Parse(data []byte, source string) (*Catalog, error) {
	var catalog Catalog
	ext := strings.ToLower(filepath.Ext(source))
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf(messages.ConfigParseCatalogFmt, source, err)
		}
	case ".json", ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf(messages.ConfigParseCatalogFmt, source, err)
		}
	default:
		return nil, fmt.Errorf(messages.ConfigUnsupportedFormatFmt, ext)
	}
	if err := catalog.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrCatalogValidation, err)
	}
	return &catalog, nil
}
