package messages

// Conda messages for probing, downloading, and installing conda.
const (
	// CondaMissing indicates the conda binary could not be found on PATH.
	CondaMissing              = "conda is not installed or not on PATH"
	CondaVersionUnexpectedFmt = "unexpected conda version output %q"
	CondaProbeFailedFmt       = "probe conda: %w"

	CondaCheckingInstall  = "Checking conda installation...\n"
	CondaAlreadyInstalled = "Conda is already installed and accessible.\n"
	CondaFoundExistingFmt = "Found existing conda installation: %s\n"
	// CondaNotOnPathWarningFmt warns that an installation exists but is not usable yet.
	CondaNotOnPathWarningFmt = "Warning: conda is installed but not on PATH; run `source %s` or restart your shell, then verify with `condactl doctor`\n"

	// CondaInstallHomeRequired and CondaInstallRunnerRequired guard installer options.
	CondaInstallHomeRequired   = "install home directory is required"
	CondaInstallRunnerRequired = "install command runner is required"

	CondaInstallingFlavorFmt = "Installing %s...\n"
	CondaDownloadingFmt      = "Downloading %s installer from %s...\n"
	CondaDownloadedFmt       = "Downloaded installer to %s\n"

	// CondaDownloadFailedFmt renders DownloadError; the rest wrap its causes.
	CondaDownloadFailedFmt           = "download %s: %v"
	CondaDownloadStatusUnexpectedFmt = "unexpected status %s"
	CondaCreateInstallerFileFmt      = "create installer file %s: %w"
	CondaWriteInstallerFmt           = "write installer %s: %w"
	CondaChmodInstallerFmt           = "chmod installer %s: %w"

	CondaInstallingToFmt = "Installing conda to %s\n"
	// CondaRunInstallerFmt renders InstallError.
	CondaRunInstallerFmt    = "run installer: %v"
	CondaRemoveInstallerFmt = "remove installer %s: %w"

	CondaShellInitMissingWarningFmt = "Warning: %s not found; shell integration may not work\n"
	CondaShellInitComment           = "# Conda initialization"
	CondaShellInitAddedFmt          = "Added conda initialization to %s\n"
	CondaShellInitReadFmt           = "read %s: %w"
	CondaShellInitAppendFmt         = "append to %s: %w"

	CondaInstallCompleteFmt = "\nConda installation completed.\nInstallation directory: %s\nShell integration: %s\n\nTo start using conda, restart your terminal or run:\n  source %s\n"
)
