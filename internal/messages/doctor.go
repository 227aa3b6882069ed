package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check conda installation, shell integration, and catalog health"

	DoctorHealthCheckFmt = "🏥 Checking conda setup health in %s...\n"

	DoctorCheckNameBinary    = "Conda"
	DoctorCheckNameInstall   = "Install"
	DoctorCheckNameShellInit = "ShellInit"
	DoctorCheckNameScripts   = "Scripts"
	DoctorCheckNameCatalog   = "Catalog"

	DoctorCondaOnPathFmt        = "conda %s on PATH (%s)"
	DoctorCondaProbeFailedFmt   = "conda is on PATH but `conda --version` failed: %v"
	DoctorCondaProbeRecommend   = "Reinstall conda or check that the binary is executable."
	DoctorCondaMissing          = "conda is not on PATH"
	DoctorCondaMissingRecommend = "Run `condactl install-conda`, or add an existing installation to PATH."

	DoctorInstallFoundFmt               = "Conda installation found: %s"
	DoctorInstallFoundNotEnabledFmt     = "Conda installation found at %s but conda is not on PATH"
	DoctorInstallNotEnabledRecommendFmt = "Run `source %s` or restart your shell."
	DoctorInstallElsewhere              = "No installation under the standard prefixes; conda runs from elsewhere on PATH"
	DoctorInstallMissing                = "No conda installation found at known locations"
	DoctorInstallMissingRecommend       = "Run `condactl install-conda` to install miniconda."

	DoctorShellInitPresentFmt   = "%s sources conda"
	DoctorShellInitMissingFmt   = "%s does not source conda"
	DoctorShellInitRecommendFmt = "Run `condactl install-conda` to add shell integration, or append `source %q` yourself."
	DoctorShellInitAbsentFmt    = "%s not present; skipped"
	DoctorFileUnreadableFmt     = "%s could not be read: %v"

	DoctorScriptCurrentFmt        = "%s matches the current catalog"
	DoctorScriptStaleFmt          = "%s is stale"
	DoctorScriptStaleRecommendFmt = "Run `condactl create-script --env %s` to regenerate it."
	DoctorScriptAbsentFmt         = "no activation script for %q"
	DoctorScriptRenderFailedFmt   = "render activation script for %q: %v"

	DoctorCatalogLoadedFmt     = "%s loaded: %d environments"
	DoctorCatalogBuiltinFmt    = "%s not present; built-in default catalog active (%d environments)"
	DoctorCatalogLoadFailedFmt = "Failed to load catalog: %v"
	DoctorCatalogLoadRecommend = "Fix the catalog file, or remove it to fall back to the built-in defaults."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "

	DoctorFailureSummary = "❌ Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "✅ All systems go. Conda is ready."
)
