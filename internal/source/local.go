package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fenghaitao/agent-os/internal/logging"
	"github.com/fenghaitao/agent-os/internal/messages"
)

// Local reads templates from a filesystem rooted at the template repository.
type Local struct {
	fsys     fs.FS
	location string
}

// NewLocal returns a provider reading from the directory root.
func NewLocal(root string) (*Local, error) {
	if root == "" {
		return nil, errors.New(messages.SourceLocalRootRequired)
	}
	return &Local{fsys: os.DirFS(root), location: root}, nil
}

// NewLocalFS returns a provider over an arbitrary fs.FS, such as an embedded
// template tree or a fstest.MapFS. location is only used in messages.
func NewLocalFS(fsys fs.FS, location string) *Local {
	return &Local{fsys: fsys, location: location}
}

// Mode implements Provider.
func (l *Local) Mode() Mode { return ModeLocal }

// Location implements Provider.
func (l *Local) Location() string { return l.location }

// Open implements Provider.
func (l *Local) Open(ctx context.Context, rel string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, ok := cleanRel(rel)
	if !ok {
		return nil, fmt.Errorf(messages.SourceInvalidPathFmt, rel)
	}
	info, err := fs.Stat(l.fsys, name)
	if err != nil {
		return nil, l.wrapErr(name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf(messages.SourceIsDirectoryFmt, l.display(name))
	}
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, l.wrapErr(name, err)
	}
	logger := logging.Component("source")
	logger.Debug().Str("path", l.display(name)).Int64("size", info.Size()).Msg("Opened local source")
	return f, nil
}

// List implements Provider by walking the directory tree.
func (l *Local) List(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, ok := cleanRel(dir)
	if !ok {
		return nil, fmt.Errorf(messages.SourceInvalidPathFmt, dir)
	}
	info, err := fs.Stat(l.fsys, name)
	if err != nil {
		return nil, l.wrapErr(name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(messages.SourceNotDirectoryFmt, l.display(name))
	}
	var files []string
	err = fs.WalkDir(l.fsys, name, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel := p[len(name)+1:]
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.SourceListFailedFmt, l.display(name), err)
	}
	return files, nil
}

func (l *Local) wrapErr(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(messages.SourceNotFoundFmt, ErrNotFound, l.display(name))
	}
	return fmt.Errorf(messages.SourceOpenFailedFmt, l.display(name), err)
}

func (l *Local) display(name string) string {
	if l.location == "" {
		return name
	}
	return filepath.Join(l.location, filepath.FromSlash(name))
}
