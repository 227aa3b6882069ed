package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/condaops/condactl/internal/conda"
	"github.com/condaops/condactl/internal/config"
	"github.com/condaops/condactl/internal/doctor"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/runner"
)

var (
	checkBinary    = doctor.CheckBinary
	checkInstall   = doctor.CheckInstall
	checkShellInit = doctor.CheckShellInit
	checkScripts   = doctor.CheckScripts
	checkCatalog   = doctor.CheckCatalog
)

var findActivationShellInit = func(home string) (string, bool) {
	return conda.FindShellInit(conda.ActivationRoots(home))
}

func newDoctorCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			home, err := homeDir()
			if err != nil {
				return fmt.Errorf(messages.HomeDirFmt, err)
			}
			run := runner.ExecRunner{Stderr: cmd.ErrOrStderr()}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, home)

			var allResults []doctor.Result

			// 1. Check the conda binary
			binaryResults := checkBinary(cmd.Context(), run)
			allResults = append(allResults, binaryResults...)
			onPath := len(binaryResults) > 0 && binaryResults[0].Status == doctor.StatusOK

			// 2. Check known install prefixes
			installResults, condaSh := checkInstall(conda.InstallRoots(home), onPath)
			allResults = append(allResults, installResults...)

			// 3. Check shell integration
			if condaSh != "" {
				allResults = append(allResults, checkShellInit(home, condaSh)...)
			}

			// 4. Check the catalog
			catalogResults, catalog := checkCatalog(configPath)
			allResults = append(allResults, catalogResults...)

			// 5. Check activation scripts
			if catalog != nil {
				if activationSh, ok := findActivationShellInit(home); ok {
					cwd, err := getwd()
					if err != nil {
						return err
					}
					allResults = append(allResults, checkScripts(cwd, catalog, activationSh)...)
				}
			}

			hasFail := false
			for _, r := range allResults {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, messages.FlagConfig)
	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
