package messages

// Setup messages for environment provisioning and listing.
const (
	// SetupStartFmt announces environment provisioning.
	SetupStartFmt    = "Setting up environment: %s\n"
	SetupPythonFmt   = "Python version: %s\n"
	SetupCompleteFmt = "Environment %q setup complete.\n"

	// SetupCondaMissingHint follows the failed conda probe on commands that
	// need a working conda before they can do anything.
	SetupCondaMissingHint = "Run `condactl install-conda` first, then re-run this command."

	// ListHeader precedes the catalog environment listing.
	ListHeader = "Available environments:"
	ListRowFmt = "  - %s (Python %s)\n"

	// PromptSelectTitle titles the interactive environment picker.
	PromptSelectTitle          = "Select an environment"
	PromptSelectDescriptionFmt = "Python %s, %d conda packages, %d pip packages"
	PromptRequiresTerminal     = "environment selection requires an interactive terminal; pass --env or --no-input"
	PromptSelectionCancelled   = "environment selection cancelled"
)
