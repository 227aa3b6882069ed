package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/condaops/condactl/internal/conda"
	"github.com/condaops/condactl/internal/config"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/prompt"
	"github.com/condaops/condactl/internal/runner"
)

var probeCondaVersion = conda.Version
var newPromptUI = func() prompt.UI { return prompt.NewHuhUI() }

// ensureConda verifies a usable conda binary is on PATH before commands
// that cannot work without one. A missing binary prints a pointer at
// install-conda and exits without cobra's error prefix.
func ensureConda(cmd *cobra.Command, run runner.Runner) error {
	if _, err := probeCondaVersion(cmd.Context(), run); err != nil {
		if errors.Is(err, conda.ErrCondaMissing) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.CondaMissing)
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.SetupCondaMissingHint)
			return &SilentExitError{Code: 1}
		}
		return err
	}
	return nil
}

// resolveEnvironment picks the catalog environment to operate on. An
// explicit name wins; otherwise an interactive terminal gets the picker,
// and --no-input or a non-terminal run falls back to the default.
func resolveEnvironment(name string, noInput bool, catalog *config.Catalog) (string, error) {
	if name != "" {
		return name, nil
	}
	if noInput || !isTerminal() {
		return config.DefaultEnvironment, nil
	}
	return newPromptUI().SelectEnvironment(catalog)
}
