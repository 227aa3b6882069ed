// Package setup provisions configured conda environments.
package setup

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/condaops/condactl/internal/config"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/runner"
)

// List writes the configured environment names and Python pins to w.
func List(w io.Writer, catalog *config.Catalog) {
	_, _ = fmt.Fprintln(w, messages.ListHeader)
	for _, name := range catalog.Names() {
		env := catalog.Environments[name]
		_, _ = fmt.Fprintf(w, messages.ListRowFmt, name, env.Python)
	}
}

// Provisioner creates environments and installs their package sets.
type Provisioner struct {
	Catalog *config.Catalog
	Runner  runner.Runner
	// Out receives progress output. Defaults to os.Stdout.
	Out io.Writer
}

// Setup provisions the named environment: create it at the pinned Python
// version, install the conda package list through the configured channels,
// then install the pip list inside the environment. Empty package lists
// skip their step. The first failing command aborts the setup; partially
// created environments are left in place.
func (p *Provisioner) Setup(ctx context.Context, name string) error {
	env, err := p.Catalog.Lookup(name)
	if err != nil {
		return err
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	_, _ = fmt.Fprintf(out, messages.SetupStartFmt, name)
	_, _ = fmt.Fprintf(out, messages.SetupPythonFmt, env.Python)

	if err := p.run(ctx, out, "conda", "create", "-n", name, "python="+env.Python, "-y"); err != nil {
		return err
	}

	if len(env.Packages.Conda) > 0 {
		args := append([]string{"install", "-n", name}, env.Packages.Conda...)
		for _, channel := range env.Channels {
			args = append(args, "-c", channel)
		}
		args = append(args, "-y")
		if err := p.run(ctx, out, "conda", args...); err != nil {
			return err
		}
	}

	if len(env.Packages.Pip) > 0 {
		args := append([]string{"run", "-n", name, "pip", "install"}, env.Packages.Pip...)
		if err := p.run(ctx, out, "conda", args...); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(out, messages.SetupCompleteFmt, name)
	return nil
}

func (p *Provisioner) run(ctx context.Context, out io.Writer, name string, args ...string) error {
	_, _ = fmt.Fprintf(out, messages.RunnerCommandEchoFmt, strings.Join(append([]string{name}, args...), " "))
	return p.Runner.Run(ctx, name, args...)
}
