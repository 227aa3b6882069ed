package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/condaops/condactl/internal/config"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/runner"
	"github.com/condaops/condactl/internal/scripts"
	"github.com/condaops/condactl/internal/setup"
)

var provisionEnvironment = func(ctx context.Context, catalog *config.Catalog, run runner.Runner, out io.Writer, name string) error {
	prov := &setup.Provisioner{Catalog: catalog, Runner: run, Out: out}
	return prov.Setup(ctx, name)
}

func newSetupCmd() *cobra.Command {
	var envName string
	var configPath string
	var noInput bool

	cmd := &cobra.Command{
		Use:   messages.SetupUse,
		Short: messages.SetupShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := runner.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
			if err := ensureConda(cmd, run); err != nil {
				return err
			}
			catalog, err := config.Load(configPath)
			if err != nil {
				return err
			}
			name, err := resolveEnvironment(envName, noInput, catalog)
			if err != nil {
				return err
			}
			if err := provisionEnvironment(cmd.Context(), catalog, run, cmd.OutOrStdout(), name); err != nil {
				return err
			}
			home, err := homeDir()
			if err != nil {
				return fmt.Errorf(messages.HomeDirFmt, err)
			}
			_, err = scriptsCreate(scripts.Options{
				Env:  name,
				Home: home,
				Out:  cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", messages.FlagEnv)
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, messages.FlagConfig)
	cmd.Flags().BoolVar(&noInput, "no-input", false, messages.FlagNoInput)
	return cmd
}
