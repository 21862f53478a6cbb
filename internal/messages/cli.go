package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse   = "agent-os"
	RootShort = "Install Agent OS templates into a project"
	RootLong  = "agent-os copies the Agent OS instructions, standards and config into a project,\nplus the files each selected AI coding assistant needs."

	RootVersionFlag = "Print version and exit"
	RootVerboseFlag = "Increase log verbosity (repeatable: -v info, -vv debug, -vvv trace)"
	RootConfigFlag  = "Path to the config file (default ~/.config/agent-os/config.toml)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command usage.
	InstallUse   = "install [project_dir]"
	InstallShort = "Install Agent OS into a project directory (default: current directory)"

	InstallFlagAll                   = "Install every CLI platform (claude-code, cursor, github-copilot, qwen-code)"
	InstallFlagPlatformFmt           = "Install %s files (%s)"
	InstallFlagOverwriteInstructions = "Replace an existing .agent-os/instructions/"
	InstallFlagOverwriteStandards    = "Replace an existing .agent-os/standards/"
	InstallFlagOverwriteConfig       = "Replace an existing .agent-os/config.yml"
	InstallFlagBranch                = "Remote branch to download templates from"
	InstallFlagSource                = "Copy templates from a local Agent OS checkout instead of downloading them"
	InstallFlagInteractive           = "Choose platforms and overwrites interactively"
	InstallFlagShowDiffs             = "Print diffs for existing files that differ from the templates"

	InstallResolveRootFmt     = "failed to resolve project directory %s: %w"
	InstallSourceNotDirFmt    = "template source %s is not a directory"
	InstallSourceStatFmt      = "failed to access template source %s: %w"
	InstallSourceAndBranchFmt = "--branch %s has no effect with a local template source"
	InstallADKRemote          = "adk templates are only available from a local template source (--source); skipping adk"
	InstallStartFmt           = "Installing Agent OS into %s"

	// InfoUse is the info command name.
	InfoUse   = "info"
	InfoShort = "List supported platforms and usage examples"

	// StatusUse is the status command usage.
	StatusUse   = "status [project_dir]"
	StatusShort = "Show which Agent OS components are installed in a project"

	ConfigLoadFailedFmt = "failed to load config: %w"
)
