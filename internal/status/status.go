// Package status reports which Agent OS components are present in a project.
package status

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/platform"
)

// CoreDir is the directory holding instructions, standards and config.
const CoreDir = ".agent-os"

// State describes a marker directory.
type State int

const (
	// StateMissing means the marker does not exist.
	StateMissing State = iota
	// StateInstalled means the marker exists and is a directory.
	StateInstalled
	// StateNotDir means the marker path exists but is not a directory.
	StateNotDir
)

func (s State) String() string {
	switch s {
	case StateInstalled:
		return messages.StatusInstalledLabel
	case StateNotDir:
		return messages.StatusNotDirLabel
	default:
		return messages.StatusMissingLabel
	}
}

// Entry is the status of one component.
type Entry struct {
	// Platform is empty for the core entry.
	Platform platform.ID
	Name     string
	Dir      string
	State    State
}

// Installed reports whether the entry's marker directory exists.
func (e Entry) Installed() bool {
	return e.State == StateInstalled
}

// Check inspects root and returns the core entry followed by one entry per CLI platform.
func Check(root string) ([]Entry, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New(messages.StatusRootRequired)
	}
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf(messages.StatusRootMissingFmt, root)
		}
		return nil, fmt.Errorf(messages.StatusStatFailedFmt, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(messages.StatusRootNotDirFmt, root)
	}

	entries := make([]Entry, 0, 1+len(platform.CLIPlatforms()))
	core, err := inspect(root, CoreDir)
	if err != nil {
		return nil, err
	}
	entries = append(entries, Entry{Name: messages.StatusCoreName, Dir: CoreDir, State: core})

	for _, id := range platform.CLIPlatforms() {
		meta, _ := platform.Lookup(id)
		state, err := inspect(root, meta.MarkerDir)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Platform: id, Name: meta.Name, Dir: meta.MarkerDir, State: state})
	}
	return entries, nil
}

func inspect(root, rel string) (State, error) {
	fullPath := filepath.Join(root, rel)
	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StateMissing, nil
		}
		return StateMissing, fmt.Errorf(messages.StatusStatFailedFmt, fullPath, err)
	}
	if !info.IsDir() {
		return StateNotDir, nil
	}
	return StateInstalled, nil
}
