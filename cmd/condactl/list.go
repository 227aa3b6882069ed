package main

import (
	"github.com/spf13/cobra"

	"github.com/condaops/condactl/internal/config"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/setup"
)

func newListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := config.Load(configPath)
			if err != nil {
				return err
			}
			setup.List(cmd.OutOrStdout(), catalog)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, messages.FlagConfig)
	return cmd
}
