// Package scripts generates environment activation scripts.
package scripts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/aymanbagabas/go-udiff"

	"github.com/condaops/condactl/internal/conda"
	"github.com/condaops/condactl/internal/fsutil"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/templates"
)

const activationTemplate = "activate.sh.tmpl"

type activationData struct {
	Env     string
	CondaSh string
}

// Path returns the activation script path for env under dir.
func Path(dir string, env string) string {
	return filepath.Join(dir, "activate_"+env+".sh")
}

// Render returns the activation script for env. condaSh is baked into the
// script, so the script keeps working without condactl on PATH.
func Render(env string, condaSh string) ([]byte, error) {
	raw, err := templates.Read(activationTemplate)
	if err != nil {
		return nil, fmt.Errorf(messages.ScriptsRenderFmt, err)
	}
	tmpl, err := template.New(activationTemplate).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf(messages.ScriptsRenderFmt, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, activationData{Env: env, CondaSh: condaSh}); err != nil {
		return nil, fmt.Errorf(messages.ScriptsRenderFmt, err)
	}
	return buf.Bytes(), nil
}

// Options controls activation script generation.
type Options struct {
	// Env is the environment the script activates.
	Env string
	// Dir is the output directory.
	Dir string
	// Home is the user home directory the activation roots derive from.
	Home string
	// Roots override the probed activation prefixes. Nil means
	// conda.ActivationRoots(Home).
	Roots []string
	// Out receives progress output. Defaults to os.Stdout.
	Out io.Writer
}

// Create resolves the conda shell integration script, renders the
// activation script with that path baked in, and writes it executable.
// Overwriting an existing script with different content prints a diff of
// the change first.
func Create(opts Options) (string, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	roots := opts.Roots
	if roots == nil {
		roots = conda.ActivationRoots(opts.Home)
	}

	condaSh, ok := conda.FindShellInit(roots)
	if !ok {
		return "", errors.New(messages.ScriptsCondaIntegrationMissing)
	}

	content, err := Render(opts.Env, condaSh)
	if err != nil {
		return "", err
	}

	path := Path(opts.Dir, opts.Env)
	if old, err := os.ReadFile(path); err == nil {
		if !bytes.Equal(old, content) {
			_, _ = fmt.Fprintf(out, messages.ScriptsUpdatingFmt, path)
			_, _ = fmt.Fprint(out, udiff.Unified(path+" (current)", path+" (new)", string(old), string(content)))
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf(messages.ScriptsReadOldFmt, path, err)
	}

	if err := fsutil.WriteFileAtomic(path, content, 0o755); err != nil {
		return "", fmt.Errorf(messages.ScriptsWriteFmt, path, err)
	}
	_, _ = fmt.Fprintf(out, messages.ScriptsCreatedFmt, path)
	return path, nil
}
