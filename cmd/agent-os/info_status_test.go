package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"agent-os", "info"}, &out, &out))
	for _, want := range []string{"Claude Code", "--cursor", "--github-copilot", "--qwen-code", "--adk", "Examples"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestStatusCommand(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".cursor", "rules"), 0o755))

	var out bytes.Buffer
	require.NoError(t, execute([]string{"agent-os", "status", project}, &out, &out))
	assert.Contains(t, out.String(), project)
	assert.Contains(t, out.String(), "✓ installed")
	assert.Contains(t, out.String(), "✗ not installed")
	assert.Contains(t, out.String(), ".cursor/")
}

func TestStatusCommandMissingDir(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"agent-os", "status", filepath.Join(t.TempDir(), "missing")}, &out, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestVerboseFlagAccepted(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"agent-os", "-vv", "info"}, &out, &out))
}
