package install

import (
	"github.com/fenghaitao/agent-os/internal/platform"
)

// OverwriteFlags controls which core categories may replace existing content.
type OverwriteFlags struct {
	Instructions bool
	Standards    bool
	Config       bool
}

// Profile records the platforms to install and the overwrite policy.
// It is configured by the caller and only read during Run.
type Profile struct {
	platforms map[platform.ID]bool
	overwrite OverwriteFlags
}

// NewProfile returns a profile with every platform disabled and no overwrites.
func NewProfile() *Profile {
	platforms := make(map[platform.ID]bool, len(platform.All()))
	for _, id := range platform.All() {
		platforms[id] = false
	}
	return &Profile{platforms: platforms}
}

// SetPlatforms applies the flags whose keys name a known platform.
// Unknown keys are ignored.
func (p *Profile) SetPlatforms(flags map[string]bool) {
	for key, enabled := range flags {
		id, ok := platform.Parse(key)
		if !ok {
			continue
		}
		p.platforms[id] = enabled
	}
}

// SetPlatform sets a single platform flag. Unknown IDs are ignored.
func (p *Profile) SetPlatform(id platform.ID, enabled bool) {
	if _, ok := p.platforms[id]; !ok {
		return
	}
	p.platforms[id] = enabled
}

// EnableAll enables the platforms covered by --all.
func (p *Profile) EnableAll() {
	for _, id := range platform.CLIPlatforms() {
		p.platforms[id] = true
	}
}

// SetOverwriteFlags sets each non-nil flag and keeps the others.
func (p *Profile) SetOverwriteFlags(instructions, standards, config *bool) {
	if instructions != nil {
		p.overwrite.Instructions = *instructions
	}
	if standards != nil {
		p.overwrite.Standards = *standards
	}
	if config != nil {
		p.overwrite.Config = *config
	}
}

// Enabled reports whether id is enabled.
func (p *Profile) Enabled(id platform.ID) bool {
	return p.platforms[id]
}

// EnabledPlatforms returns the enabled platforms in installation order.
func (p *Profile) EnabledPlatforms() []platform.ID {
	var out []platform.ID
	for _, id := range platform.All() {
		if p.platforms[id] {
			out = append(out, id)
		}
	}
	return out
}

// Overwrite returns the overwrite flags.
func (p *Profile) Overwrite() OverwriteFlags {
	return p.overwrite
}

// overwriteAllowed reports whether an existing destination of the given
// category may be replaced. Platform items have no flag and are always replaced.
func (p *Profile) overwriteAllowed(category Category) bool {
	switch category {
	case CategoryInstructions:
		return p.overwrite.Instructions
	case CategoryStandards:
		return p.overwrite.Standards
	case CategoryConfig:
		return p.overwrite.Config
	default:
		return true
	}
}
