package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/platform"
	"github.com/fenghaitao/agent-os/internal/status"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// RenderPlatformTable renders the platform catalog followed by usage examples.
func RenderPlatformTable(platforms []platform.Info) string {
	t := newTable(
		messages.ReportColumnName,
		messages.ReportColumnID,
		messages.ReportColumnDescribe,
		messages.ReportColumnDirs,
	)
	for _, p := range platforms {
		t.Row(p.Name, "--"+p.ID.String(), p.Description, p.Directories)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(messages.ReportPlatformsTitle))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(messages.ReportUsageTitle))
	b.WriteString("\n")
	for _, example := range messages.ReportUsageExamples {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(example))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStatusTable renders one row per status entry.
func RenderStatusTable(root string, entries []status.Entry) string {
	t := newTable(messages.StatusColumnPlatform, messages.StatusColumnDirectory, messages.StatusColumnState)
	for _, entry := range entries {
		state := entry.State.String()
		if entry.Installed() {
			state = successStyle.Render("✓ " + state)
		} else {
			state = mutedStyle.Render("✗ " + state)
		}
		t.Row(entry.Name, entry.Dir+"/", state)
	}
	return titleStyle.Render(fmt.Sprintf(messages.StatusHeaderFmt, root)) + "\n" + t.Render() + "\n"
}
