package messages

// Installer messages.
const (
	// InstallRootRequired indicates the target directory is required.
	InstallRootRequired = "target project directory is required"
	// InstallSourceRequired indicates a template source is required.
	InstallSourceRequired = "install source is required"
	// InstallSystemRequired indicates the filesystem abstraction is required.
	InstallSystemRequired = "install system is required"

	InstallCreateDirFailedFmt    = "failed to create directory %s: %w"
	InstallFailedCreateDirForFmt = "failed to create directory for %s: %w"
	InstallFailedStatFmt         = "failed to stat %s: %w"
	InstallFailedReadFmt         = "failed to read %s: %w"
	InstallFailedWriteFmt        = "failed to write %s: %w"
	InstallFailedRemoveFmt       = "failed to remove %s: %w"
	InstallPathEscapeFmt         = "%w: %s resolves outside %s"
	InstallFailedResolveFmt      = "failed to resolve %s: %w"
	InstallItemFailedFmt         = "install %s: %w"
	InstallCancelledFmt          = "install cancelled before %s: %w"

	// InstallProgressFmt formats per-item progress labels: index, total, source path.
	InstallProgressFmt         = "[%d/%d] Installing %s"
	InstallSkipMissingFmt      = "Skipping %s: %v"
	InstallKeepExistingFmt     = "Keeping existing %s (use %s to replace it)"
	InstallKeepExistingDiffFmt = "Keeping existing %s, which differs from the template (use %s to replace it)"
	InstallItemErrorFmt        = "Failed to install %s: %v"

	InstallDiffTruncatedFmt = "... (truncated to %d lines)"
)
