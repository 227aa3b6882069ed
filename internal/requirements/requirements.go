// Package requirements installs manifest-listed packages into a Python
// interpreter via pip.
package requirements

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/condaops/condactl/internal/config"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/runner"
)

// DefaultManifest is the manifest consulted when no path is given.
const DefaultManifest = "requirements.txt"

// FallbackInterpreter is used when no candidate interpreter exists.
const FallbackInterpreter = "python3"

// ManifestNotFoundError reports a missing requirements manifest.
type ManifestNotFoundError struct {
	Path string
}

func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf(messages.RequirementsManifestMissingFmt, e.Path)
}

// InterpreterCandidates returns the environment interpreters probed when no
// explicit interpreter is given, in priority order.
func InterpreterCandidates(home string) []string {
	env := config.DefaultEnvironment
	return []string{
		filepath.Join(home, "miniconda3", "envs", env, "bin", "python"),
		filepath.Join(home, "anaconda3", "envs", env, "bin", "python"),
		filepath.Join("/opt/conda", "envs", env, "bin", "python"),
	}
}

// ResolveInterpreter returns explicit when non-empty, else the first
// existing path in candidates, else FallbackInterpreter.
func ResolveInterpreter(explicit string, candidates []string) string {
	if explicit != "" {
		return explicit
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return FallbackInterpreter
}

// Parse returns the installable requirement specs in manifest data. Blank
// lines, comments, and pip option lines are skipped. source names the
// manifest in line-numbered errors.
func Parse(data []byte, source string) ([]string, error) {
	var specs []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		spec, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.RequirementsLineErrorFmt, source, lineNo, err)
		}
		if !ok {
			continue
		}
		specs = append(specs, spec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.RequirementsReadManifestFmt, source, err)
	}
	return specs, nil
}

// parseLine classifies one manifest line and returns its requirement spec
// when it holds one. Option lines are pip's to interpret, except the bare
// include forms, which are always malformed.
func parseLine(line string) (string, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false, nil
	}
	if strings.HasPrefix(trimmed, "-") {
		switch trimmed {
		case "-r", "-c", "-e", "--requirement", "--constraint", "--editable":
			return "", false, fmt.Errorf(messages.RequirementsOptionNeedsValueFmt, trimmed)
		}
		return "", false, nil
	}
	return trimmed, true, nil
}

// Options controls requirements installation.
type Options struct {
	// Manifest is the requirements file path. Empty means DefaultManifest.
	Manifest string
	// Python is an explicit interpreter path. Empty probes the candidates.
	Python string
	// Home is the user home directory the interpreter candidates derive from.
	Home string
	// Runner executes pip.
	Runner runner.Runner
	// Out receives progress output. Defaults to os.Stdout.
	Out io.Writer
}

// Install installs the manifest's packages via pip. The manifest is checked
// and parsed before any interpreter probe or subprocess call, and a manifest
// holding no requirement specs is an error rather than a silent no-op.
func Install(ctx context.Context, opts Options) error {
	manifest := opts.Manifest
	if manifest == "" {
		manifest = DefaultManifest
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	data, err := os.ReadFile(manifest)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &ManifestNotFoundError{Path: manifest}
		}
		return fmt.Errorf(messages.RequirementsReadManifestFmt, manifest, err)
	}
	specs, err := Parse(data, manifest)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf(messages.RequirementsEmptyManifestFmt, manifest)
	}

	python := ResolveInterpreter(opts.Python, InterpreterCandidates(opts.Home))
	logrus.Debugf("resolved interpreter %s for manifest %s", python, manifest)
	_, _ = fmt.Fprintf(out, messages.RequirementsUsingPythonFmt, python)
	_, _ = fmt.Fprintf(out, messages.RequirementsInstallingFmt, len(specs), manifest)

	if err := opts.Runner.Run(ctx, python, "-m", "pip", "install", "-r", manifest); err != nil {
		return fmt.Errorf(messages.RequirementsInstallFailedFmt, err)
	}
	_, _ = fmt.Fprintln(out, messages.RequirementsInstalledOK)
	return nil
}
