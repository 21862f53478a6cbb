package install

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenghaitao/agent-os/internal/platform"
	"github.com/fenghaitao/agent-os/internal/testutil"
)

func TestNewProfileDefaults(t *testing.T) {
	p := NewProfile()
	assert.Empty(t, p.EnabledPlatforms())
	assert.Equal(t, OverwriteFlags{}, p.Overwrite())
}

func TestSetPlatformsIgnoresUnknownKeys(t *testing.T) {
	p := NewProfile()
	p.SetPlatforms(map[string]bool{
		"claude_code": true,
		"cursor":      true,
		"emacs":       true,
	})
	assert.Equal(t, []platform.ID{platform.ClaudeCode, platform.Cursor}, p.EnabledPlatforms())

	p.SetPlatforms(map[string]bool{"cursor": false})
	assert.Equal(t, []platform.ID{platform.ClaudeCode}, p.EnabledPlatforms())
	assert.True(t, p.Enabled(platform.ClaudeCode))
	assert.False(t, p.Enabled(platform.Cursor))
}

func TestSetPlatformUnknownIgnored(t *testing.T) {
	p := NewProfile()
	p.SetPlatform("vim", true)
	assert.Empty(t, p.EnabledPlatforms())
	p.SetPlatform(platform.ADK, true)
	assert.Equal(t, []platform.ID{platform.ADK}, p.EnabledPlatforms())
}

func TestEnableAllCoversCLIPlatforms(t *testing.T) {
	p := NewProfile()
	p.EnableAll()
	assert.Equal(t, platform.CLIPlatforms(), p.EnabledPlatforms())
	assert.False(t, p.Enabled(platform.ADK))
}

func TestSetOverwriteFlagsKeepsOmitted(t *testing.T) {
	p := NewProfile()
	p.SetOverwriteFlags(testutil.BoolPtr(true), nil, nil)
	assert.Equal(t, OverwriteFlags{Instructions: true}, p.Overwrite())

	p.SetOverwriteFlags(nil, testutil.BoolPtr(true), testutil.BoolPtr(true))
	assert.Equal(t, OverwriteFlags{Instructions: true, Standards: true, Config: true}, p.Overwrite())

	p.SetOverwriteFlags(testutil.BoolPtr(false), nil, nil)
	assert.Equal(t, OverwriteFlags{Standards: true, Config: true}, p.Overwrite())
}

func TestOverwriteAllowedByCategory(t *testing.T) {
	p := NewProfile()
	assert.False(t, p.overwriteAllowed(CategoryInstructions))
	assert.False(t, p.overwriteAllowed(CategoryStandards))
	assert.False(t, p.overwriteAllowed(CategoryConfig))
	assert.True(t, p.overwriteAllowed(CategoryPlatform))

	p.SetOverwriteFlags(nil, nil, testutil.BoolPtr(true))
	assert.True(t, p.overwriteAllowed(CategoryConfig))
	assert.False(t, p.overwriteAllowed(CategoryStandards))
}
