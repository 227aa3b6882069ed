package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condaops/condactl/internal/conda"
	"github.com/condaops/condactl/internal/config"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/scripts"
	"github.com/condaops/condactl/internal/testutil"
)

func writeShellInit(t *testing.T, root string) string {
	t.Helper()
	script := conda.ShellInitScript(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(script), 0o755))
	require.NoError(t, os.WriteFile(script, []byte("# conda\n"), 0o644))
	return script
}

func TestCheckBinaryOK(t *testing.T) {
	run := &testutil.RecordingRunner{
		Binaries: map[string]string{"conda": "/opt/conda/bin/conda"},
		Outputs:  map[string]string{"conda --version": "conda 24.3.0\n"},
	}

	results := CheckBinary(context.Background(), run)

	require.Len(t, results, 1)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Equal(t, messages.DoctorCheckNameBinary, results[0].CheckName)
	assert.Equal(t, "conda 24.3.0 on PATH (/opt/conda/bin/conda)", results[0].Message)
	assert.Empty(t, results[0].Recommendation)
}

func TestCheckBinaryMissing(t *testing.T) {
	run := &testutil.RecordingRunner{}

	results := CheckBinary(context.Background(), run)

	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Equal(t, messages.DoctorCondaMissing, results[0].Message)
	assert.Contains(t, results[0].Recommendation, "condactl install-conda")
}

func TestCheckBinaryProbeFailure(t *testing.T) {
	run := &testutil.RecordingRunner{
		Binaries: map[string]string{"conda": "/opt/conda/bin/conda"},
		Errs:     map[string]error{"conda --version": errors.New("boom")},
	}

	results := CheckBinary(context.Background(), run)

	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Contains(t, results[0].Message, "failed")
	assert.Contains(t, results[0].Message, "boom")
	assert.Equal(t, messages.DoctorCondaProbeRecommend, results[0].Recommendation)
}

func TestCheckInstallFound(t *testing.T) {
	home := t.TempDir()
	roots := conda.InstallRoots(home)[:2]
	script := writeShellInit(t, roots[1])

	results, condaSh := CheckInstall(roots, true)

	require.Len(t, results, 1)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Equal(t, messages.DoctorCheckNameInstall, results[0].CheckName)
	assert.Contains(t, results[0].Message, roots[1])
	assert.Equal(t, script, condaSh)
}

func TestCheckInstallFoundButNotOnPath(t *testing.T) {
	home := t.TempDir()
	roots := conda.InstallRoots(home)[:2]
	script := writeShellInit(t, roots[0])

	results, condaSh := CheckInstall(roots, false)

	require.Len(t, results, 1)
	assert.Equal(t, StatusWarn, results[0].Status)
	assert.Contains(t, results[0].Message, "not on PATH")
	assert.Contains(t, results[0].Recommendation, "source "+script)
	assert.Equal(t, script, condaSh)
}

func TestCheckInstallMissing(t *testing.T) {
	home := t.TempDir()

	results, condaSh := CheckInstall(conda.InstallRoots(home)[:2], false)

	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Equal(t, messages.DoctorInstallMissing, results[0].Message)
	assert.Contains(t, results[0].Recommendation, "condactl install-conda")
	assert.Empty(t, condaSh)
}

func TestCheckInstallElsewhereOnPath(t *testing.T) {
	home := t.TempDir()

	results, condaSh := CheckInstall(conda.InstallRoots(home)[:2], true)

	require.Len(t, results, 1)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Equal(t, messages.DoctorInstallElsewhere, results[0].Message)
	assert.Empty(t, condaSh)
}

func TestCheckShellInitMixed(t *testing.T) {
	home := t.TempDir()
	condaSh := filepath.Join(home, "miniconda3", "etc", "profile.d", "conda.sh")
	bashrc := filepath.Join(home, ".bashrc")
	zshrc := filepath.Join(home, ".zshrc")
	require.NoError(t, os.WriteFile(bashrc, []byte("source \""+condaSh+"\"\n"), 0o644))
	require.NoError(t, os.WriteFile(zshrc, []byte("alias ll='ls -l'\n"), 0o644))

	results := CheckShellInit(home, condaSh)

	require.Len(t, results, 2)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Equal(t, bashrc+" sources conda", results[0].Message)
	assert.Equal(t, StatusWarn, results[1].Status)
	assert.Equal(t, zshrc+" does not source conda", results[1].Message)
	assert.Contains(t, results[1].Recommendation, condaSh)
}

func TestCheckShellInitSkipsMissingFiles(t *testing.T) {
	home := t.TempDir()

	results := CheckShellInit(home, filepath.Join(home, "conda.sh"))

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, StatusOK, r.Status)
		assert.Contains(t, r.Message, "not present; skipped")
	}
}

func scriptsCatalog() *config.Catalog {
	return &config.Catalog{Environments: map[string]config.Environment{
		"envA": {Python: "3.10"},
	}}
}

func TestCheckScriptsAbsent(t *testing.T) {
	dir := t.TempDir()

	results := CheckScripts(dir, scriptsCatalog(), "/opt/x/etc/profile.d/conda.sh")

	require.Len(t, results, 1)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Equal(t, messages.DoctorCheckNameScripts, results[0].CheckName)
	assert.Equal(t, `no activation script for "envA"`, results[0].Message)
}

func TestCheckScriptsCurrent(t *testing.T) {
	dir := t.TempDir()
	condaSh := "/opt/x/etc/profile.d/conda.sh"
	content, err := scripts.Render("envA", condaSh)
	require.NoError(t, err)
	path := scripts.Path(dir, "envA")
	require.NoError(t, os.WriteFile(path, content, 0o755))

	results := CheckScripts(dir, scriptsCatalog(), condaSh)

	require.Len(t, results, 1)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Contains(t, results[0].Message, "matches the current catalog")
}

func TestCheckScriptsStale(t *testing.T) {
	dir := t.TempDir()
	path := scripts.Path(dir, "envA")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/bash\necho old\n"), 0o755))

	results := CheckScripts(dir, scriptsCatalog(), "/opt/x/etc/profile.d/conda.sh")

	require.Len(t, results, 1)
	assert.Equal(t, StatusWarn, results[0].Status)
	assert.Contains(t, results[0].Message, "is stale")
	assert.Contains(t, results[0].Recommendation, "create-script --env envA")
}

func TestCheckCatalogLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "environments.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"environments":{"envA":{"python":"3.10"}}}`), 0o644))

	results, catalog := CheckCatalog(path)

	require.Len(t, results, 1)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Equal(t, messages.DoctorCheckNameCatalog, results[0].CheckName)
	assert.Equal(t, path+" loaded: 1 environments", results[0].Message)
	require.NotNil(t, catalog)
	assert.Equal(t, []string{"envA"}, catalog.Names())
}

func TestCheckCatalogMissingFileFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "environments.json")

	results, catalog := CheckCatalog(path)

	require.Len(t, results, 1)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Contains(t, results[0].Message, "built-in default catalog active")
	assert.Contains(t, results[0].Message, "2 environments")
	require.NotNil(t, catalog)
}

func TestCheckCatalogBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "environments.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	results, catalog := CheckCatalog(path)

	require.Len(t, results, 1)
	assert.Equal(t, StatusFail, results[0].Status)
	assert.Contains(t, results[0].Message, "Failed to load catalog")
	assert.Equal(t, messages.DoctorCatalogLoadRecommend, results[0].Recommendation)
	assert.Nil(t, catalog)
}
