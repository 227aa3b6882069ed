package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/condaops/condactl/internal/conda"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/platform"
	"github.com/condaops/condactl/internal/runner"
)

var condaInstall = conda.Install

func newInstallCondaCmd() *cobra.Command {
	var flavorName string
	var dir string

	cmd := &cobra.Command{
		Use:   messages.InstallCondaUse,
		Short: messages.InstallCondaShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			flavor, err := platform.ParseFlavor(flavorName)
			if err != nil {
				return err
			}
			home, err := homeDir()
			if err != nil {
				return fmt.Errorf(messages.HomeDirFmt, err)
			}
			return condaInstall(cmd.Context(), conda.Options{
				Flavor: flavor,
				Prefix: dir,
				Home:   home,
				Runner: runner.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
				Out:    cmd.OutOrStdout(),
				Err:    cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringVar(&flavorName, "type", string(platform.Miniconda), messages.InstallCondaFlagType)
	cmd.Flags().StringVar(&dir, "dir", "", messages.InstallCondaFlagDir)
	return cmd
}
