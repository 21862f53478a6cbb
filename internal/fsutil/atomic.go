// Package fsutil holds small filesystem helpers shared by the installer.
package fsutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to filename through a temp file in the same directory
// followed by a rename, so readers never observe a partially written file.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	_, err := WriteReaderAtomic(filename, bytes.NewReader(data), perm)
	return err
}

// WriteReaderAtomic streams r into filename using the same temp+rename strategy
// as WriteFileAtomic and returns the number of bytes written.
// The temp file is removed when any step fails.
func WriteReaderAtomic(filename string, r io.Reader, perm os.FileMode) (int64, error) {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	n, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		cleanup()
		return n, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		cleanup()
		return n, fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return n, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		cleanup()
		return n, err
	}
	return n, nil
}
