package main

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/terminal"
)

var getwd = os.Getwd
var homeDir = homedir.Dir
var isTerminal = terminal.IsInteractive

// newRootCmd constructs the root command with all subcommands attached.
func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.AddCommand(newInstallRequirementsCmd())
	cmd.AddCommand(newInstallCondaCmd())
	cmd.AddCommand(newSetupCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCreateScriptCmd())
	cmd.AddCommand(newDoctorCmd())

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, messages.RootVerboseFlag)
	return cmd
}
