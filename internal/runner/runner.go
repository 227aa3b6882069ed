// Package runner abstracts external process execution so command sequences
// can be asserted in tests without touching the host.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/condaops/condactl/internal/messages"
)

// Runner executes external commands synchronously.
type Runner interface {
	// Run executes the command, streaming output to the configured writers,
	// and blocks until it exits.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes the command and returns its captured standard output.
	Output(ctx context.Context, name string, args ...string) (string, error)
	// LookPath returns the absolute path of an executable found on PATH.
	LookPath(name string) (string, error)
}

// CommandError reports a failed external command together with its argv and
// exit code. ExitCode is -1 when the command did not run to completion.
type CommandError struct {
	Argv     []string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf(messages.RunnerCommandFailedFmt, strings.Join(e.Argv, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands on the host via os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive streamed output from Run. Nil writers
	// discard the corresponding stream.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command and blocks until it exits.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	if name == "" {
		return errors.New(messages.RunnerNameRequired)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return wrapCommandError(name, args, err)
	}
	return nil
}

// Output executes the command and returns its standard output. Standard error
// is streamed to the configured writer so failure diagnostics reach the user.
func (r ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	if name == "" {
		return "", errors.New(messages.RunnerNameRequired)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return "", wrapCommandError(name, args, err)
	}
	return stdout.String(), nil
}

// LookPath returns the absolute path of an executable found on PATH.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func wrapCommandError(name string, args []string, err error) error {
	cmdErr := &CommandError{Argv: append([]string{name}, args...), ExitCode: -1, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		cmdErr.ExitCode = exitErr.ExitCode()
	}
	return cmdErr
}
