// Package platform describes the AI coding assistants Agent OS installs files for.
package platform

import (
	"strings"
)

// ID identifies a supported platform.
type ID string

// Supported platforms, in installation order.
const (
	ClaudeCode    ID = "claude-code"
	Cursor        ID = "cursor"
	GitHubCopilot ID = "github-copilot"
	QwenCode      ID = "qwen-code"
	ADK           ID = "adk"
)

// Info holds static, user-facing details about a platform.
type Info struct {
	ID          ID
	Name        string
	Description string
	// Directories summarizes where the platform's files land.
	Directories string
	// MarkerDir is the project-relative directory whose presence marks the platform as installed.
	MarkerDir string
}

var catalog = []Info{
	{ClaudeCode, "Claude Code", "Claude Code agent templates", ".claude/commands/ + .claude/agents/", ".claude"},
	{Cursor, "Cursor", "Cursor rule files", ".cursor/rules/", ".cursor"},
	{GitHubCopilot, "GitHub Copilot", "GitHub Copilot prompt templates", ".github/prompts/", ".github"},
	{QwenCode, "Qwen Code", "Qwen Code command templates", ".qwen/commands/", ".qwen"},
	{ADK, "ADK", "Agent Development Kit agents and commands", ".adk/agents/ + .adk/commands/", ".adk"},
}

// All returns every platform ID in installation order.
func All() []ID {
	out := make([]ID, 0, len(catalog))
	for _, info := range catalog {
		out = append(out, info.ID)
	}
	return out
}

// CLIPlatforms returns the platforms exposed through dedicated CLI flags and --all.
// ADK only ships with local template roots and is opted into separately.
func CLIPlatforms() []ID {
	return []ID{ClaudeCode, Cursor, GitHubCopilot, QwenCode}
}

// Lookup returns the catalog entry for id.
func Lookup(id ID) (Info, bool) {
	for _, info := range catalog {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// Parse resolves a user-supplied identifier. Dashed and underscored spellings
// are both accepted ("claude-code", "claude_code"), case-insensitively.
func Parse(raw string) (ID, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	id := ID(normalized)
	if _, ok := Lookup(id); !ok {
		return "", false
	}
	return id, true
}

// String returns the dashed identifier.
func (id ID) String() string {
	return string(id)
}
