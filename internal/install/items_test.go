package install

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenghaitao/agent-os/internal/platform"
	"github.com/fenghaitao/agent-os/internal/source"
)

func pairs(items []Item) [][2]string {
	out := make([][2]string, 0, len(items))
	for _, item := range items {
		out = append(out, [2]string{item.Source, item.Dest})
	}
	return out
}

func TestBuildItemsCoreOnly(t *testing.T) {
	for _, mode := range []source.Mode{source.ModeLocal, source.ModeRemote} {
		items := BuildItems(NewProfile(), mode)
		require.Len(t, items, 3, mode.String())
		assert.Equal(t, [][2]string{
			{"instructions/", ".agent-os/instructions/"},
			{"standards/", ".agent-os/standards/"},
			{"config.yml", ".agent-os/config.yml"},
		}, pairs(items))
		assert.Equal(t, KindDirectory, items[0].Kind)
		assert.Equal(t, KindDirectory, items[1].Kind)
		assert.Equal(t, KindFile, items[2].Kind)
		assert.Equal(t, []Category{CategoryInstructions, CategoryStandards, CategoryConfig},
			[]Category{items[0].Category, items[1].Category, items[2].Category})
	}
}

func TestPlatformItemsByMode(t *testing.T) {
	tests := []struct {
		id     platform.ID
		local  [][2]string
		remote [][2]string
	}{
		{
			id: platform.ClaudeCode,
			local: [][2]string{
				{"claude-code/agents/", ".claude/agents/"},
				{"claude-code/commands/", ".claude/commands/"},
			},
			remote: [][2]string{{"claude-code/agents/", ".claude/agents/"}},
		},
		{
			id:     platform.Cursor,
			local:  [][2]string{{"commands/", ".cursor/rules/"}},
			remote: [][2]string{{"commands/", ".cursor/rules/"}},
		},
		{
			id:     platform.GitHubCopilot,
			local:  [][2]string{{"github-copilot/prompts/", ".github/prompts/"}},
			remote: [][2]string{{"github-copilot/prompts/", ".github/prompts/"}},
		},
		{
			id:     platform.QwenCode,
			local:  [][2]string{{"qwen-code/commands/", ".qwen/commands/"}},
			remote: [][2]string{{"qwen-code/commands/", ".qwen/commands/"}},
		},
		{
			id: platform.ADK,
			local: [][2]string{
				{"adk/agents/", ".adk/agents/"},
				{"commands/", ".adk/commands/"},
			},
			remote: [][2]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			assert.Equal(t, tt.local, pairs(PlatformItems(tt.id, source.ModeLocal)))
			assert.Equal(t, tt.remote, pairs(PlatformItems(tt.id, source.ModeRemote)))
			for _, item := range PlatformItems(tt.id, source.ModeLocal) {
				assert.Equal(t, CategoryPlatform, item.Category)
				assert.Equal(t, tt.id, item.Platform)
				assert.Equal(t, KindDirectory, item.Kind)
			}
		})
	}
}

// Enabling one platform adds exactly its items after the core items,
// regardless of which other platforms are enabled.
func TestBuildItemsAdditive(t *testing.T) {
	for _, mode := range []source.Mode{source.ModeLocal, source.ModeRemote} {
		for _, id := range platform.All() {
			single := NewProfile()
			single.SetPlatform(id, true)
			assert.Equal(t,
				append(CoreItems(), PlatformItems(id, mode)...),
				BuildItems(single, mode))
		}

		all := NewProfile()
		for _, id := range platform.All() {
			all.SetPlatform(id, true)
		}
		want := CoreItems()
		for _, id := range platform.All() {
			want = append(want, PlatformItems(id, mode)...)
		}
		assert.Equal(t, want, BuildItems(all, mode))
	}
}

func TestBuildItemsDeterministic(t *testing.T) {
	p := NewProfile()
	p.SetPlatforms(map[string]bool{"qwen-code": true, "claude-code": true, "cursor": true})
	first := BuildItems(p, source.ModeLocal)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildItems(p, source.ModeLocal))
	}
	assert.Equal(t, ".claude/agents/", first[3].Dest)
	assert.Equal(t, ".qwen/commands/", first[len(first)-1].Dest)
}

func TestCategoryFlagName(t *testing.T) {
	assert.Equal(t, "--overwrite-instructions", CategoryInstructions.FlagName())
	assert.Equal(t, "--overwrite-standards", CategoryStandards.FlagName())
	assert.Equal(t, "--overwrite-config", CategoryConfig.FlagName())
	assert.Empty(t, CategoryPlatform.FlagName())
	assert.Equal(t, "directory", KindDirectory.String())
	assert.Equal(t, "file", KindFile.String())
}
