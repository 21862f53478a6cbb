package messages

// Source provider messages.
const (
	// SourceNotFoundFmt wraps ErrNotFound with the missing location.
	SourceNotFoundFmt      = "%w: %s"
	SourceInvalidPathFmt   = "invalid source path %q"
	SourceIsDirectoryFmt   = "source %s is a directory"
	SourceNotDirectoryFmt  = "source %s is not a directory"
	SourceOpenFailedFmt    = "failed to open source %s: %w"
	SourceListFailedFmt    = "failed to list source directory %s: %w"
	SourceStatusFmt        = "GET %s: unexpected status %s"
	SourceRequestCreateFmt = "create request for %s: %w"
	SourceRequestFailedFmt = "GET %s: %w"

	// SourceManifestDecodeFmt formats manifest parse failures.
	SourceManifestDecodeFmt       = "decode manifest %s: %w"
	SourceManifestInvalidEntryFmt = "manifest %s: invalid entry %q"
	SourceRemoteBaseURLRequired   = "remote base URL is required"
	SourceRemoteBaseURLInvalidFmt = "invalid remote base URL %q: %w"
	SourceLocalRootRequired       = "local template root is required"
)
