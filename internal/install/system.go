package install

import (
	"io"
	"os"
	"path/filepath"

	"github.com/fenghaitao/agent-os/internal/fsutil"
)

// System abstracts the filesystem operations the materializer performs on the
// target project. Tests wrap RealSystem to inject failures deterministically.
type System interface {
	Stat(name string) (os.FileInfo, error)
	EvalSymlinks(path string) (string, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	WriteReaderAtomic(filename string, r io.Reader, perm os.FileMode) (int64, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// EvalSymlinks returns path with every symbolic link resolved.
func (RealSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// WriteReaderAtomic streams r into filename via a temp file and rename.
func (RealSystem) WriteReaderAtomic(filename string, r io.Reader, perm os.FileMode) (int64, error) {
	return fsutil.WriteReaderAtomic(filename, r, perm)
}
