package install

import (
	"strings"
	"testing"
)

func TestNormalizeDiffMaxLines_DefaultAndPositive(t *testing.T) {
	if got := normalizeDiffMaxLines(0); got != DefaultDiffMaxLines {
		t.Fatalf("normalizeDiffMaxLines(0) = %d, want %d", got, DefaultDiffMaxLines)
	}
	if got := normalizeDiffMaxLines(-1); got != DefaultDiffMaxLines {
		t.Fatalf("normalizeDiffMaxLines(-1) = %d, want %d", got, DefaultDiffMaxLines)
	}
	if got := normalizeDiffMaxLines(7); got != 7 {
		t.Fatalf("normalizeDiffMaxLines(7) = %d, want 7", got)
	}
}

func TestRenderTruncatedUnifiedDiff(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nx\ny\nz\n"
	diff, truncated := renderTruncatedUnifiedDiff("from.txt", "to.txt", from, to, 2)
	if !truncated {
		t.Fatal("expected truncated diff")
	}
	if !strings.Contains(diff, "truncated to 2 lines") {
		t.Fatalf("expected truncation note in diff:\n%s", diff)
	}
	if got := len(splitDiffLines(diff)); got != 3 {
		t.Fatalf("expected 2 diff lines plus note, got %d:\n%s", got, diff)
	}
}

func TestRenderTruncatedUnifiedDiff_Untruncated(t *testing.T) {
	diff, truncated := renderTruncatedUnifiedDiff("from.txt", "to.txt", "a\n", "b\n", 40)
	if truncated {
		t.Fatal("did not expect truncation")
	}
	for _, want := range []string{"--- from.txt", "+++ to.txt", "-a", "+b"} {
		if !strings.Contains(diff, want) {
			t.Fatalf("expected %q in diff:\n%s", want, diff)
		}
	}
	if !strings.HasSuffix(diff, "\n") {
		t.Fatalf("expected trailing newline, got %q", diff)
	}
}

func TestBuildDiffPreview(t *testing.T) {
	if got := buildDiffPreview(".agent-os/config.yml", []byte("same\n"), []byte("same\n"), 0); got != nil {
		t.Fatalf("expected nil preview for identical content, got %+v", got)
	}

	preview := buildDiffPreview(".agent-os/config.yml", []byte("old"), []byte("new\n"), 0)
	if preview == nil {
		t.Fatal("expected preview")
	}
	if preview.Path != ".agent-os/config.yml" {
		t.Fatalf("unexpected path %q", preview.Path)
	}
	if !strings.Contains(preview.UnifiedDiff, "existing/.agent-os/config.yml") ||
		!strings.Contains(preview.UnifiedDiff, "template/.agent-os/config.yml") {
		t.Fatalf("expected labelled headers:\n%s", preview.UnifiedDiff)
	}
	if preview.Truncated {
		t.Fatal("did not expect truncation")
	}
}

func TestSplitDiffLines(t *testing.T) {
	if got := splitDiffLines("\n\n"); len(got) != 0 {
		t.Fatalf("expected no lines, got %q", got)
	}
	if got := splitDiffLines("a\nb\n"); len(got) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	if got := ensureTrailingNewline(""); got != "" {
		t.Fatalf("ensureTrailingNewline(\"\") = %q", got)
	}
	if got := ensureTrailingNewline("x"); got != "x\n" {
		t.Fatalf("ensureTrailingNewline(\"x\") = %q", got)
	}
}
