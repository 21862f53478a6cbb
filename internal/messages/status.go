package messages

// Status messages for the status command.
const (
	StatusRootRequired   = "project directory is required"
	StatusRootMissingFmt = "project directory %s does not exist"
	StatusRootNotDirFmt  = "%s exists but is not a directory"
	StatusStatFailedFmt  = "failed to stat %s: %w"

	StatusCoreName        = "Agent OS core"
	StatusInstalledLabel  = "installed"
	StatusMissingLabel    = "not installed"
	StatusNotDirLabel     = "not a directory"
	StatusHeaderFmt       = "Agent OS status for %s"
	StatusColumnPlatform  = "Platform"
	StatusColumnDirectory = "Directory"
	StatusColumnState     = "Status"
)
