package messages

// Config messages for environment catalog loading and validation.
const (
	// ConfigReadCatalogFmt formats catalog read errors.
	ConfigReadCatalogFmt       = "read catalog %s: %w"
	ConfigParseCatalogFmt      = "parse catalog %s: %w"
	ConfigParseBuiltinFmt      = "parse built-in catalog: %w"
	ConfigUnsupportedFormatFmt = "unsupported catalog format %q (supported: .json, .yaml, .yml, .toml)"

	ConfigNoEnvironmentsFmt       = "%s: no environments defined"
	ConfigEnvironmentNameEmpty    = "environment name must not be empty"
	ConfigPythonVersionMissingFmt = "%s: environments.%s.python is required"

	// ConfigUnknownEnvironmentFmt formats lookups of catalog entries that do not exist.
	ConfigUnknownEnvironmentFmt = "unknown environment %q (available: %s)"

	// ConfigValidationGuidance is appended to validation errors to direct users to repair tools.
	ConfigValidationGuidance = "(run 'condactl list' to see configured environments or 'condactl doctor' to diagnose)"
)
