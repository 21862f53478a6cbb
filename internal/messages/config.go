package messages

// Config messages for loading and validating the user config file.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt      = "missing config file %s: %w"
	ConfigReadFailedFmt       = "failed to read config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %w"
	ConfigExpandPathFmt       = "failed to expand %s: %w"

	ConfigFieldRequiredFmt   = "%s: %s is required"
	ConfigTimeoutInvalidFmt  = "%s: source.timeout_seconds must be greater than zero (got %d)"
	ConfigPlatformInvalidFmt = "%s: install.platforms[%d] %q is not a supported platform"
)
