// Package source provides the template sources the installer reads from:
// a local template root and a remote HTTP mirror of the same layout.
package source

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

// Mode distinguishes local-copy installs from remote-download installs.
// Item resolution differs slightly between the two.
type Mode int

const (
	// ModeLocal copies from a template root on disk.
	ModeLocal Mode = iota
	// ModeRemote downloads from an HTTP base URL.
	ModeRemote
)

func (m Mode) String() string {
	switch m {
	case ModeLocal:
		return "local"
	case ModeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// ErrNotFound reports that a source file or directory does not exist.
// The installer treats it as a skippable condition; every other error is fatal.
var ErrNotFound = errors.New("source not found")

// Provider reads template content by slash-separated relative path.
type Provider interface {
	// Mode reports which install variant the provider backs.
	Mode() Mode
	// Location describes the source root for messages.
	Location() string
	// Open returns the content of the file at rel.
	Open(ctx context.Context, rel string) (io.ReadCloser, error)
	// List returns the files under dir, relative to dir, in a stable order.
	List(ctx context.Context, dir string) ([]string, error)
}

// cleanRel normalizes a relative source path, dropping any trailing slash.
// It reports false for absolute paths and paths that climb out of the root.
func cleanRel(rel string) (string, bool) {
	trimmed := strings.TrimSpace(rel)
	if trimmed == "" || strings.HasPrefix(trimmed, "/") || strings.Contains(trimmed, "\\") {
		return "", false
	}
	cleaned := path.Clean(strings.TrimSuffix(trimmed, "/"))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", false
	}
	return cleaned, true
}
