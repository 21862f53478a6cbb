package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenghaitao/agent-os/internal/messages"
)

// ErrPathEscape reports a destination that would land outside its root.
var ErrPathEscape = errors.New("path escapes target directory")

// resolveUnder joins the slash-separated rel onto root and verifies that the
// result stays inside root. rel must be relative.
func resolveUnder(root, rel string) (string, error) {
	cleanedRel := filepath.Clean(filepath.FromSlash(strings.TrimSuffix(rel, "/")))
	if filepath.IsAbs(cleanedRel) || cleanedRel == "." {
		return "", fmt.Errorf(messages.InstallPathEscapeFmt, ErrPathEscape, rel, root)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", root, err)
	}
	joined := filepath.Join(absRoot, cleanedRel)
	if !within(absRoot, joined) {
		return "", fmt.Errorf(messages.InstallPathEscapeFmt, ErrPathEscape, rel, root)
	}
	return joined, nil
}

// within reports whether target is strictly below root. Both must be clean.
func within(root, target string) bool {
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(target, prefix)
}

// checkResolved verifies that target still lands inside root once symbolic
// links are followed. The deepest existing ancestor of target is resolved and
// the missing remainder appended, so a linked directory or file pointing
// outside root is rejected before anything is removed or written.
func checkResolved(sys System, root, target string) error {
	resolvedRoot, err := sys.EvalSymlinks(root)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedResolveFmt, root, err)
	}
	resolvedRoot, err = filepath.Abs(resolvedRoot)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedResolveFmt, root, err)
	}

	existing := target
	var missing []string
	for {
		resolved, err := sys.EvalSymlinks(existing)
		if err == nil {
			resolved, err = filepath.Abs(resolved)
			if err != nil {
				return fmt.Errorf(messages.InstallFailedResolveFmt, existing, err)
			}
			full := filepath.Join(append([]string{resolved}, missing...)...)
			if !within(resolvedRoot, full) {
				return fmt.Errorf(messages.InstallPathEscapeFmt, ErrPathEscape, target, root)
			}
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf(messages.InstallFailedResolveFmt, existing, err)
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return fmt.Errorf(messages.InstallFailedResolveFmt, target, err)
		}
		missing = append([]string{filepath.Base(existing)}, missing...)
		existing = parent
	}
}
