// Package terminal reports whether the process is attached to an interactive terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both terminals. Prompting
// is gated on this so piped and CI invocations never block waiting for input.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
