package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "condactl"
	// RootShort is the short description for the root command.
	RootShort = "Provision conda installations and Python environments"
	RootLong  = "condactl installs conda when it is missing, provisions the Python environments\ndefined in an environment catalog, and installs pip requirements into them."

	RootVerboseFlag = "Enable verbose logging"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallRequirementsUse is the install-requirements command name.
	InstallRequirementsUse   = "install-requirements"
	InstallRequirementsShort = "Install packages from a requirements manifest"

	InstallRequirementsFlagManifest = "Path to the requirements manifest"
	InstallRequirementsFlagPython   = "Python interpreter to install with (default: probe known environments)"

	// InstallCondaUse is the install-conda command name.
	InstallCondaUse   = "install-conda"
	InstallCondaShort = "Download and install miniconda or anaconda if missing"

	InstallCondaFlagType = "Installer flavor (miniconda or anaconda)"
	InstallCondaFlagDir  = "Installation directory (default: ~/miniconda3)"

	InstallCondaInvalidFlavorFmt = "invalid installer flavor %q (supported: %s, %s)"

	// SetupUse is the setup command name.
	SetupUse   = "setup"
	SetupShort = "Create a catalog environment and install its packages"

	ListUse   = "list"
	ListShort = "List environments defined in the catalog"

	CreateScriptUse   = "create-script"
	CreateScriptShort = "Write an activation script for a catalog environment"

	FlagEnv     = "Environment name from the catalog"
	FlagConfig  = "Path to the environment catalog"
	FlagNoInput = "Never prompt; use the default environment when --env is omitted"
)
