package messages

// Scripts messages for activation script generation.
const (
	// ScriptsCondaIntegrationMissing indicates no conda.sh was found at any known location.
	ScriptsCondaIntegrationMissing = "conda shell integration not found at any known location"

	ScriptsRenderFmt   = "render activation script: %w"
	ScriptsWriteFmt    = "write activation script %s: %w"
	ScriptsReadOldFmt  = "read existing script %s: %w"
	ScriptsCreatedFmt  = "Activation script created: %s\n"
	ScriptsUpdatingFmt = "Updating %s:\n"
)
