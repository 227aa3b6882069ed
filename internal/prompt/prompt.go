// Package prompt renders the interactive environment picker.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/condaops/condactl/internal/config"
	"github.com/condaops/condactl/internal/messages"
	"github.com/condaops/condactl/internal/terminal"
)

// UI selects an environment from the catalog.
type UI interface {
	SelectEnvironment(catalog *config.Catalog) (string, error)
}

// HuhUI implements UI with a charmbracelet/huh select form.
type HuhUI struct {
	isTerminal func() bool
}

// runFormFunc runs a form; a seam for tests.
var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI returns a HuhUI gated on terminal.IsInteractive.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// SelectEnvironment prompts for one of the catalog's environments and
// returns its name. Without a terminal it fails immediately so piped and CI
// invocations never hang.
func (ui *HuhUI) SelectEnvironment(catalog *config.Catalog) (string, error) {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if !checker() {
		return "", errors.New(messages.PromptRequiresTerminal)
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(messages.PromptSelectTitle).
			Options(environmentOptions(catalog)...).
			Value(&selected),
	))
	form.WithKeyMap(pickerKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(interruptFilter),
	)
	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errors.New(messages.PromptSelectionCancelled)
		}
		return "", err
	}
	return selected, nil
}

// pickerKeyMap maps both esc and ctrl+c to abort and disables list
// filtering, which a short environment list does not need.
func pickerKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// interruptFilter converts an InterruptMsg (huh's cancel path, or an
// external SIGINT) to QuitMsg so bubbletea takes the graceful shutdown path
// and clears the form output.
func interruptFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

// environmentOptions labels each catalog entry with its Python version and
// package counts; the option value stays the plain environment name.
func environmentOptions(catalog *config.Catalog) []huh.Option[string] {
	names := catalog.Names()
	opts := make([]huh.Option[string], len(names))
	for i, name := range names {
		env := catalog.Environments[name]
		detail := fmt.Sprintf(messages.PromptSelectDescriptionFmt,
			env.Python, len(env.Packages.Conda), len(env.Packages.Pip))
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", name, detail), name)
	}
	return opts
}
