package report

import (
	"fmt"
	"strings"

	"github.com/fenghaitao/agent-os/internal/install"
	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/platform"
)

// Summary describes a finished install run.
type Summary struct {
	Root      string
	Source    string
	Mode      string
	Platforms []platform.ID
	Result    install.Result
	// Err is the error Run returned, if any.
	Err       error
	Cancelled bool
}

// RenderSummary renders the closing banner for an install run.
func RenderSummary(s Summary) string {
	platforms := messages.ReportPlatformsNone
	if len(s.Platforms) > 0 {
		names := make([]string, len(s.Platforms))
		for i, id := range s.Platforms {
			names[i] = id.String()
		}
		platforms = strings.Join(names, ", ")
	}
	lines := []string{
		fmt.Sprintf(messages.ReportTargetFmt, s.Root),
		fmt.Sprintf(messages.ReportSourceFmt, s.Source, s.Mode),
		fmt.Sprintf(messages.ReportPlatformsFmt, platforms),
		fmt.Sprintf(messages.ReportCountsFmt,
			s.Result.Count(install.StatusInstalled),
			s.Result.Count(install.StatusSkippedExisting),
			s.Result.Count(install.StatusSkippedMissing)),
	}

	switch {
	case s.Cancelled:
		return card(errorStyle.Render("✗ "+messages.ReportCancelledTitle), lines...)
	case s.Err != nil || !s.Result.OK:
		if n := len(s.Result.Outcomes); n > 0 {
			last := s.Result.Outcomes[n-1]
			if last.Status == install.StatusFailed {
				lines = append(lines, fmt.Sprintf(messages.ReportFailedItemFmt, last.Item.Source))
			}
		}
		return card(errorStyle.Render("✗ "+messages.ReportFailureTitle), lines...)
	default:
		return card(successStyle.Render("✓ "+messages.ReportSuccessTitle), lines...)
	}
}

// RenderDiffs renders diff previews. With full unset only a count and hint are shown.
func RenderDiffs(diffs []install.DiffPreview, full bool) string {
	if len(diffs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf(messages.ReportDiffsHeaderFmt, len(diffs))))
	b.WriteString("\n")
	if !full {
		for _, diff := range diffs {
			b.WriteString("  ")
			b.WriteString(diff.Path)
			b.WriteString("\n")
		}
		b.WriteString(mutedStyle.Render(messages.ReportDiffsHint))
		b.WriteString("\n")
		return b.String()
	}
	for _, diff := range diffs {
		b.WriteString("\n")
		for _, line := range strings.Split(strings.TrimRight(diff.UnifiedDiff, "\n"), "\n") {
			b.WriteString(styleDiffLine(line))
			b.WriteString("\n")
		}
		if diff.Truncated {
			b.WriteString(mutedStyle.Render(messages.ReportDiffsTruncated))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func styleDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return titleStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return successStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return errorStyle.Render(line)
	case strings.HasPrefix(line, "@@"):
		return mutedStyle.Render(line)
	default:
		return line
	}
}
