// Package wizard runs the interactive platform and overwrite selection.
package wizard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fenghaitao/agent-os/internal/install"
	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/platform"
	"github.com/fenghaitao/agent-os/internal/source"
)

var (
	// ErrCancelled reports that the user quit without confirming.
	ErrCancelled = errors.New("selection cancelled")
	errBack      = errors.New("back requested")
)

var statFunc = os.Stat

type choices struct {
	platforms []string
	overwrite install.OverwriteFlags
	// existing lists core items whose destination is already present.
	existing []install.Item
}

// Run prompts for platforms and for replacing existing core files under
// root, then applies the answers to profile. profile is left untouched
// unless the user confirms.
func Run(root string, ui UI, profile *install.Profile, mode source.Mode) error {
	c := &choices{overwrite: profile.Overwrite()}
	for _, id := range profile.EnabledPlatforms() {
		c.platforms = append(c.platforms, id.String())
	}
	for _, item := range install.CoreItems() {
		if _, err := statFunc(filepath.Join(root, filepath.FromSlash(item.Dest))); err == nil {
			c.existing = append(c.existing, item)
		}
	}
	available := availablePlatforms(mode)

	steps := []func() error{
		func() error { return ui.Note(messages.WizardHelpTitle, messages.WizardHelpBody) },
		func() error { return ui.MultiSelect(messages.WizardPlatformsTitle, platformOptions(available), &c.platforms) },
	}
	for _, item := range c.existing {
		steps = append(steps, func() error {
			value := overwriteFlag(&c.overwrite, item.Category)
			return ui.Confirm(fmt.Sprintf(messages.WizardOverwritePromptFmt, item.Dest), value)
		})
	}
	confirmed := true
	steps = append(steps, func() error {
		return ui.Confirm(c.summary(root), &confirmed)
	})

	for i := 0; i < len(steps); {
		err := steps[i]()
		switch {
		case errors.Is(err, errBack):
			if i == 0 {
				return ErrCancelled
			}
			i--
		case err != nil:
			return err
		default:
			i++
		}
	}
	if !confirmed {
		return ErrCancelled
	}

	for _, id := range available {
		profile.SetPlatform(id, slices.Contains(c.platforms, id.String()))
	}
	o := c.overwrite
	profile.SetOverwriteFlags(&o.Instructions, &o.Standards, &o.Config)
	return nil
}

// availablePlatforms lists what the source can install. ADK ships only with local roots.
func availablePlatforms(mode source.Mode) []platform.ID {
	ids := platform.CLIPlatforms()
	if mode == source.ModeLocal {
		ids = append(ids, platform.ADK)
	}
	return ids
}

func platformOptions(ids []platform.ID) []Option {
	out := make([]Option, 0, len(ids))
	for _, id := range ids {
		info, _ := platform.Lookup(id)
		out = append(out, Option{
			Label: fmt.Sprintf(messages.WizardPlatformOptionFmt, info.Name, info.Directories),
			Value: id.String(),
		})
	}
	return out
}

func overwriteFlag(flags *install.OverwriteFlags, category install.Category) *bool {
	switch category {
	case install.CategoryInstructions:
		return &flags.Instructions
	case install.CategoryStandards:
		return &flags.Standards
	default:
		return &flags.Config
	}
}

func (c *choices) summary(root string) string {
	platforms := messages.WizardSummaryNone
	if len(c.platforms) > 0 {
		platforms = strings.Join(c.platforms, ", ")
	}
	lines := []string{
		fmt.Sprintf(messages.WizardConfirmTitleFmt, root),
		fmt.Sprintf(messages.WizardConfirmPlatformsFmt, platforms),
	}
	var replaced []string
	for _, item := range c.existing {
		if *overwriteFlag(&c.overwrite, item.Category) {
			replaced = append(replaced, item.Dest)
		}
	}
	if len(replaced) > 0 {
		lines = append(lines, fmt.Sprintf(messages.WizardConfirmOverwriteFmt, strings.Join(replaced, ", ")))
	}
	return strings.Join(lines, "\n")
}
