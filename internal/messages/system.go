package messages

// System messages for internal operations.
const (
	// FsutilCreateTempFileFmt formats temp file creation errors.
	FsutilCreateTempFileFmt = "create temp file for %s: %w"
	FsutilSetPermissionsFmt = "set permissions for %s: %w"
	FsutilWriteTempFileFmt  = "write temp file for %s: %w"
	FsutilSyncTempFileFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFileFmt  = "close temp file for %s: %w"
	FsutilRenameTempFileFmt = "rename temp file for %s: %w"
	FsutilOpenDirFmt        = "open dir %s: %w"
	FsutilSyncDirFmt        = "sync dir %s: %w"

	// RunnerNameRequired indicates an empty command name.
	RunnerNameRequired     = "command name is required"
	RunnerCommandFailedFmt = "command %s failed: %v"
	// RunnerCommandEchoFmt announces an external command before it runs.
	RunnerCommandEchoFmt = "Running: %s\n"

	// PlatformUnsupportedFmt formats unsupported platform errors.
	PlatformUnsupportedFmt = "no %s installer for %s/%s"

	// HomeDirFmt formats home directory resolution errors.
	HomeDirFmt = "resolve home dir: %w"
)
