package testutil

import (
	"context"
	"os/exec"
	"strings"
)

// RecordingRunner is an in-memory command runner that records every
// invocation instead of executing it. Scripted results are keyed by the
// space-joined argv of the call.
type RecordingRunner struct {
	// Commands holds the argv of every Run and Output call, in order.
	Commands [][]string
	// Errs maps a joined argv to the error Run or Output returns for it.
	Errs map[string]error
	// Outputs maps a joined argv to the stdout Output returns for it.
	Outputs map[string]string
	// Binaries maps an executable name to the path LookPath returns for it.
	// Names absent from the map are reported as not found.
	Binaries map[string]string
}

func (r *RecordingRunner) record(name string, args []string) string {
	argv := append([]string{name}, args...)
	r.Commands = append(r.Commands, argv)
	return strings.Join(argv, " ")
}

// Run records the call and returns the scripted error, if any.
func (r *RecordingRunner) Run(_ context.Context, name string, args ...string) error {
	return r.Errs[r.record(name, args)]
}

// Output records the call and returns the scripted output or error.
func (r *RecordingRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	key := r.record(name, args)
	if err := r.Errs[key]; err != nil {
		return "", err
	}
	return r.Outputs[key], nil
}

// LookPath resolves name against the Binaries map.
func (r *RecordingRunner) LookPath(name string) (string, error) {
	path, ok := r.Binaries[name]
	if !ok {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return path, nil
}

// CommandLines returns every recorded invocation as a space-joined string.
func (r *RecordingRunner) CommandLines() []string {
	lines := make([]string, 0, len(r.Commands))
	for _, argv := range r.Commands {
		lines = append(lines, strings.Join(argv, " "))
	}
	return lines
}
