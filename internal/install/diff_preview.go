package install

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/fenghaitao/agent-os/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines kept per file.
const DefaultDiffMaxLines = 40

// DiffPreview is a unified diff between an existing destination file and the
// template it would have been replaced with.
type DiffPreview struct {
	Path        string
	UnifiedDiff string
	Truncated   bool
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

// buildDiffPreview returns nil when current and template are identical.
func buildDiffPreview(relPath string, current, template []byte, maxLines int) *DiffPreview {
	if string(current) == string(template) {
		return nil
	}
	rendered, truncated := renderTruncatedUnifiedDiff(
		"existing/"+relPath,
		"template/"+relPath,
		ensureTrailingNewline(string(current)),
		ensureTrailingNewline(string(template)),
		maxLines,
	)
	return &DiffPreview{Path: relPath, UnifiedDiff: rendered, Truncated: truncated}
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append(lines[:limit:limit], fmt.Sprintf(messages.InstallDiffTruncatedFmt, limit))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
