package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/requirements"
	"github.com/condaops/condactl/internal/runner"
)

var requirementsInstall = requirements.Install

func newInstallRequirementsCmd() *cobra.Command {
	var manifest string
	var python string

	cmd := &cobra.Command{
		Use:   messages.InstallRequirementsUse,
		Short: messages.InstallRequirementsShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := homeDir()
			if err != nil {
				return fmt.Errorf(messages.HomeDirFmt, err)
			}
			err = requirementsInstall(cmd.Context(), requirements.Options{
				Manifest: manifest,
				Python:   python,
				Home:     home,
				Runner:   runner.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
				Out:      cmd.OutOrStdout(),
			})
			var notFound *requirements.ManifestNotFoundError
			if errors.As(err, &notFound) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.RequirementsManifestMissingHint)
				return &SilentExitError{Code: 1}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&manifest, "requirements", requirements.DefaultManifest, messages.InstallRequirementsFlagManifest)
	cmd.Flags().StringVar(&python, "python", "", messages.InstallRequirementsFlagPython)
	return cmd
}
