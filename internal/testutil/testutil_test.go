package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndReadTree(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.txt":         "a",
		"nested/b.md":   "b",
		"nested/x/c.md": "",
	}
	WriteTree(t, root, files)

	got := ReadTree(t, root)
	if len(got) != len(files) {
		t.Fatalf("ReadTree returned %d files, want %d: %v", len(got), len(files), got)
	}
	for rel, want := range files {
		if got[rel] != want {
			t.Fatalf("ReadTree[%q] = %q, want %q", rel, got[rel], want)
		}
	}
}

func TestReadTreeEmptyDir(t *testing.T) {
	if got := ReadTree(t, t.TempDir()); len(got) != 0 {
		t.Fatalf("expected empty tree, got %v", got)
	}
}

func TestBoolPtr(t *testing.T) {
	if p := BoolPtr(true); p == nil || !*p {
		t.Fatal("BoolPtr(true) should point to true")
	}
	if p := BoolPtr(false); p == nil || *p {
		t.Fatal("BoolPtr(false) should point to false")
	}
}

func TestWithWorkingDir(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	WithWorkingDir(t, dir, func() {
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("getwd: %v", err)
		}
		resolvedDir, _ := filepath.EvalSymlinks(dir)
		resolvedCwd, _ := filepath.EvalSymlinks(cwd)
		if resolvedCwd != resolvedDir {
			t.Fatalf("cwd = %q, want %q", cwd, dir)
		}
	})
	after, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if after != orig {
		t.Fatalf("cwd not restored: %q != %q", after, orig)
	}
}
