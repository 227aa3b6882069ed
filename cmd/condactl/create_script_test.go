package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/condaops/condactl/internal/conda"
	"github.com/condaops/condactl/internal/config"
)

func TestCreateScriptWritesForExplicitEnvironment(t *testing.T) {
	stubHomeDir(t, "/home/u")
	stubProbe(t, "24.3.0", nil)
	created := stubScriptsCreate(t, nil)
	catalogPath := writeCatalog(t)

	var out bytes.Buffer
	if err := execute([]string{"condactl", "create-script", "--env", "envB", "--config", catalogPath}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if created.Env != "envB" {
		t.Fatalf("script env = %q, want envB", created.Env)
	}
	if created.Home != "/home/u" {
		t.Fatalf("script home = %q, want /home/u", created.Home)
	}
}

func TestCreateScriptUnknownEnvironment(t *testing.T) {
	stubHomeDir(t, "/home/u")
	stubProbe(t, "24.3.0", nil)
	created := stubScriptsCreate(t, nil)
	catalogPath := writeCatalog(t)

	var out bytes.Buffer
	err := execute([]string{"condactl", "create-script", "--env", "nope", "--config", catalogPath}, &out, &out)
	if err == nil {
		t.Fatal("expected error for unknown environment")
	}
	if !strings.Contains(err.Error(), "unknown environment") {
		t.Fatalf("error = %v, want unknown environment", err)
	}
	if created.Env != "" {
		t.Fatal("expected no script creation")
	}
}

func TestCreateScriptFailsFastWithoutConda(t *testing.T) {
	stubHomeDir(t, "/home/u")
	stubProbe(t, "", conda.ErrCondaMissing)
	created := stubScriptsCreate(t, nil)

	var stdout, stderr bytes.Buffer
	err := execute([]string{"condactl", "create-script", "--env", "envA"}, &stdout, &stderr)

	var silent *SilentExitError
	if !errors.As(err, &silent) || silent.Code != 1 {
		t.Fatalf("error = %v, want SilentExitError with code 1", err)
	}
	if created.Env != "" {
		t.Fatal("expected no script creation")
	}
}

func TestCreateScriptNoInputUsesDefaultEnvironment(t *testing.T) {
	stubHomeDir(t, "/home/u")
	stubProbe(t, "24.3.0", nil)
	created := stubScriptsCreate(t, nil)

	missing := filepath.Join(t.TempDir(), "environments.json")
	var out bytes.Buffer
	if err := execute([]string{"condactl", "create-script", "--no-input", "--config", missing}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if created.Env != config.DefaultEnvironment {
		t.Fatalf("script env = %q, want %s", created.Env, config.DefaultEnvironment)
	}
}
