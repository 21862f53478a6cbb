package install

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fenghaitao/agent-os/internal/source"
	"github.com/fenghaitao/agent-os/internal/testutil"
)

// faultSystem is a test helper that allows deterministic error injection for the
// installer System interface without chmod-based permission tricks.
type faultSystem struct {
	base       System
	statErrs   map[string]error
	readErrs   map[string]error
	mkdirErrs  map[string]error
	removeErrs map[string]error
	writeErrs  map[string]error
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:       base,
		statErrs:   map[string]error{},
		readErrs:   map[string]error{},
		mkdirErrs:  map[string]error{},
		removeErrs: map[string]error{},
		writeErrs:  map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) EvalSymlinks(path string) (string, error) {
	return f.base.EvalSymlinks(path)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadFile(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) RemoveAll(path string) error {
	if err, ok := f.removeErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.RemoveAll(path)
}

func (f *faultSystem) WriteReaderAtomic(filename string, r io.Reader, perm os.FileMode) (int64, error) {
	if err, ok := f.writeErrs[normalizePath(filename)]; ok {
		return 0, err
	}
	return f.base.WriteReaderAtomic(filename, r, perm)
}

// recordingReporter captures reporter calls for assertions.
type recordingReporter struct {
	mu       sync.Mutex
	progress []string
	warnings []string
	errors   []string
}

func (r *recordingReporter) Progress(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, label)
}

func (r *recordingReporter) Warning(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, msg)
}

func (r *recordingReporter) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

// templateFiles is a complete local template root keyed by slash path.
var templateFiles = map[string]string{
	"config.yml":                          "agent_os_version: 1.0.0\n",
	"instructions/core/plan-product.md":   "# Plan product\n",
	"instructions/meta/pre-flight.md":     "# Pre-flight\n",
	"standards/code-style.md":             "# Code style\n",
	"standards/code-style/go-style.md":    "# Go style\n",
	"commands/plan-product.md":            "# /plan-product\n",
	"commands/create-spec.md":             "# /create-spec\n",
	"claude-code/agents/test-runner.md":   "# test-runner\n",
	"claude-code/commands/execute.md":     "# execute\n",
	"github-copilot/prompts/plan.md":      "# plan prompt\n",
	"qwen-code/commands/create-spec.toml": "description = \"spec\"\n",
	"adk/agents/context-fetcher.md":       "# context-fetcher\n",
}

// writeTemplateRoot materializes files under a temp dir and returns a local provider for it.
func writeTemplateRoot(t *testing.T, files map[string]string) (string, *source.Local) {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTree(t, root, files)
	p, err := source.NewLocal(root)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	return root, p
}
