package install

import (
	"strings"

	"github.com/fenghaitao/agent-os/internal/platform"
	"github.com/fenghaitao/agent-os/internal/source"
)

// Kind distinguishes file items from directory items.
type Kind int

const (
	// KindFile is a single file.
	KindFile Kind = iota
	// KindDirectory is a directory tree, marked by a trailing slash on the source.
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Category groups items for overwrite gating.
type Category int

const (
	// CategoryInstructions covers .agent-os/instructions.
	CategoryInstructions Category = iota
	// CategoryStandards covers .agent-os/standards.
	CategoryStandards
	// CategoryConfig covers .agent-os/config.yml.
	CategoryConfig
	// CategoryPlatform covers assistant-specific directories.
	CategoryPlatform
)

// FlagName returns the CLI flag that unlocks overwriting the category.
func (c Category) FlagName() string {
	switch c {
	case CategoryInstructions:
		return "--overwrite-instructions"
	case CategoryStandards:
		return "--overwrite-standards"
	case CategoryConfig:
		return "--overwrite-config"
	default:
		return ""
	}
}

// Item maps one source path onto a destination relative to the project directory.
// Both paths are slash-separated.
type Item struct {
	Source   string
	Dest     string
	Kind     Kind
	Category Category
	Platform platform.ID
}

func newItem(src, dest string, category Category, id platform.ID) Item {
	kind := KindFile
	if strings.HasSuffix(src, "/") {
		kind = KindDirectory
	}
	return Item{Source: src, Dest: dest, Kind: kind, Category: category, Platform: id}
}

type mapping struct {
	source    string
	dest      string
	localOnly bool
}

// platformMappings is the fixed platform → item table.
// localOnly entries are only shipped by local template roots.
var platformMappings = map[platform.ID][]mapping{
	platform.ClaudeCode: {
		{source: "claude-code/agents/", dest: ".claude/agents/"},
		{source: "claude-code/commands/", dest: ".claude/commands/", localOnly: true},
	},
	platform.Cursor: {
		{source: "commands/", dest: ".cursor/rules/"},
	},
	platform.GitHubCopilot: {
		{source: "github-copilot/prompts/", dest: ".github/prompts/"},
	},
	platform.QwenCode: {
		{source: "qwen-code/commands/", dest: ".qwen/commands/"},
	},
	platform.ADK: {
		{source: "adk/agents/", dest: ".adk/agents/", localOnly: true},
		{source: "commands/", dest: ".adk/commands/", localOnly: true},
	},
}

// CoreItems returns the items installed regardless of platform selection.
func CoreItems() []Item {
	return []Item{
		newItem("instructions/", ".agent-os/instructions/", CategoryInstructions, ""),
		newItem("standards/", ".agent-os/standards/", CategoryStandards, ""),
		newItem("config.yml", ".agent-os/config.yml", CategoryConfig, ""),
	}
}

// PlatformItems returns the items contributed by a single platform for mode.
func PlatformItems(id platform.ID, mode source.Mode) []Item {
	var out []Item
	for _, m := range platformMappings[id] {
		if m.localOnly && mode != source.ModeLocal {
			continue
		}
		out = append(out, newItem(m.source, m.dest, CategoryPlatform, id))
	}
	return out
}

// BuildItems returns the ordered install list: core items, then each enabled
// platform's items in platform order.
func BuildItems(profile *Profile, mode source.Mode) []Item {
	items := CoreItems()
	for _, id := range profile.EnabledPlatforms() {
		items = append(items, PlatformItems(id, mode)...)
	}
	return items
}
