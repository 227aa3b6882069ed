package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const jsonCatalog = `{
  "environments": {
    "envA": {
      "python": "3.10",
      "packages": {
        "conda": ["numpy"],
        "pip": ["requests"]
      },
      "channels": ["conda-forge"]
    }
  }
}`

const yamlCatalog = `environments:
  envA:
    python: "3.10"
    packages:
      conda:
        - numpy
      pip:
        - requests
    channels:
      - conda-forge
`

const tomlCatalog = `[environments.envA]
python = "3.10"
channels = ["conda-forge"]

[environments.envA.packages]
conda = ["numpy"]
pip = ["requests"]
`

func writeCatalog(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadJSONCatalog(t *testing.T) {
	path := writeCatalog(t, "environments.json", jsonCatalog)

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	env, err := catalog.Lookup("envA")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if env.Python != "3.10" {
		t.Fatalf("Python = %q, want 3.10", env.Python)
	}
	if len(env.Packages.Conda) != 1 || env.Packages.Conda[0] != "numpy" {
		t.Fatalf("Conda packages = %v", env.Packages.Conda)
	}
	if len(env.Packages.Pip) != 1 || env.Packages.Pip[0] != "requests" {
		t.Fatalf("Pip packages = %v", env.Packages.Pip)
	}
	if len(env.Channels) != 1 || env.Channels[0] != "conda-forge" {
		t.Fatalf("Channels = %v", env.Channels)
	}
}

func TestLoadFormatsAreEquivalent(t *testing.T) {
	jsonPath := writeCatalog(t, "environments.json", jsonCatalog)
	yamlPath := writeCatalog(t, "environments.yaml", yamlCatalog)
	tomlPath := writeCatalog(t, "environments.toml", tomlCatalog)

	fromJSON, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}
	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	fromTOML, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load toml: %v", err)
	}

	if !reflect.DeepEqual(fromJSON, fromYAML) {
		t.Fatalf("json %+v != yaml %+v", fromJSON, fromYAML)
	}
	if !reflect.DeepEqual(fromJSON, fromTOML) {
		t.Fatalf("json %+v != toml %+v", fromJSON, fromTOML)
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "environments.json")

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	names := catalog.Names()
	want := []string{"torchpy310", "torchpy311"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("Names = %v, want %v", names, want)
	}
}

func TestLoadDefaultCatalog(t *testing.T) {
	catalog, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}

	env, err := catalog.Lookup("torchpy310")
	if err != nil {
		t.Fatalf("Lookup torchpy310: %v", err)
	}
	if env.Python != "3.10" {
		t.Fatalf("torchpy310 Python = %q, want 3.10", env.Python)
	}
	if len(env.Packages.Conda) != 8 {
		t.Fatalf("torchpy310 conda packages = %d, want 8", len(env.Packages.Conda))
	}
	if len(env.Packages.Pip) != 7 {
		t.Fatalf("torchpy310 pip packages = %d, want 7", len(env.Packages.Pip))
	}
	if !reflect.DeepEqual(env.Channels, []string{"pytorch", "nvidia", "conda-forge"}) {
		t.Fatalf("torchpy310 channels = %v", env.Channels)
	}

	env, err = catalog.Lookup("torchpy311")
	if err != nil {
		t.Fatalf("Lookup torchpy311: %v", err)
	}
	if env.Python != "3.11" {
		t.Fatalf("torchpy311 Python = %q, want 3.11", env.Python)
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	path := writeCatalog(t, "environments.json", jsonCatalog)
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unreadable catalog")
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("x"), "environments.ini")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), ".ini") {
		t.Fatalf("error %q does not name the extension", err.Error())
	}
}

func TestParseSyntaxErrorIsNotValidationError(t *testing.T) {
	_, err := Parse([]byte(`{"environments":`), "environments.json")
	if err == nil {
		t.Fatal("expected syntax error")
	}
	if errors.Is(err, ErrCatalogValidation) {
		t.Fatalf("syntax error %v should not wrap ErrCatalogValidation", err)
	}
}

func TestParseEmptyCatalogFailsValidation(t *testing.T) {
	_, err := Parse([]byte(`{"environments": {}}`), "environments.json")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrCatalogValidation) {
		t.Fatalf("error %v does not wrap ErrCatalogValidation", err)
	}
	if !strings.Contains(err.Error(), "condactl list") {
		t.Fatalf("error %q is missing repair guidance", err.Error())
	}
}

func TestParseMissingPythonFailsValidation(t *testing.T) {
	data := []byte(`{"environments": {"envA": {"channels": ["conda-forge"]}}}`)
	_, err := Parse(data, "environments.json")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrCatalogValidation) {
		t.Fatalf("error %v does not wrap ErrCatalogValidation", err)
	}
	if !strings.Contains(err.Error(), "envA") {
		t.Fatalf("error %q does not name the environment", err.Error())
	}
}
