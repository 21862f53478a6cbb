package messages

// Report messages for terminal output.
const (
	ReportWarningPrefix = "Warning: "
	ReportErrorPrefix   = "Error: "

	ReportSuccessTitle    = "Agent OS installed"
	ReportFailureTitle    = "Agent OS installation failed"
	ReportCancelledTitle  = "Operation cancelled"
	ReportTargetFmt       = "Target:    %s"
	ReportSourceFmt       = "Source:    %s (%s)"
	ReportPlatformsFmt    = "Platforms: %s"
	ReportPlatformsNone   = "none (core files only)"
	ReportCountsFmt       = "Items:     %d installed, %d kept, %d missing"
	ReportFailedItemFmt   = "Stopped at %s"
	ReportDiffsHeaderFmt  = "%d existing file(s) differ from the templates:"
	ReportDiffsHint       = "Run with --show-diffs to see the differences."
	ReportDiffsTruncated  = "(diff truncated)"
	ReportPlatformsTitle  = "Supported platforms"
	ReportColumnName      = "Name"
	ReportColumnID        = "Flag"
	ReportColumnDescribe  = "Description"
	ReportColumnDirs      = "Directories"
	ReportUsageTitle      = "Examples"
)

// ReportUsageExamples are shown by the info command.
var ReportUsageExamples = []string{
	"agent-os install --claude-code",
	"agent-os install ./my-project --cursor --github-copilot",
	"agent-os install --all --overwrite-standards",
	"agent-os install --source ~/src/agent-os --adk",
	"agent-os status ./my-project",
}
