package messages

// Requirements messages for the requirements installer.
const (
	// RequirementsManifestMissingFmt formats missing manifest errors.
	RequirementsManifestMissingFmt  = "requirements manifest not found at %s"
	RequirementsManifestMissingHint = "Create the manifest or point --requirements at an existing file."
	RequirementsReadManifestFmt     = "read manifest %s: %w"

	// RequirementsLineErrorFmt prefixes manifest parse errors with their line.
	RequirementsLineErrorFmt        = "%s line %d: %w"
	RequirementsOptionNeedsValueFmt = "option %s requires an argument"
	RequirementsEmptyManifestFmt    = "no installable requirements in %s"

	RequirementsUsingPythonFmt   = "Using Python: %s\n"
	RequirementsInstallingFmt    = "Installing %d packages from %s\n"
	RequirementsInstalledOK      = "Requirements installed successfully."
	RequirementsInstallFailedFmt = "install requirements: %w"
)
