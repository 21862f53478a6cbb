// Package config loads the optional user configuration for the installer.
package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/go-homedir"

	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/platform"
	"github.com/fenghaitao/agent-os/internal/source"
)

// Config is the user configuration file.
type Config struct {
	Source  SourceConfig  `toml:"source"`
	Install InstallConfig `toml:"install"`
}

// SourceConfig selects where templates come from.
type SourceConfig struct {
	// LocalRoot switches the installer to local mode when non-empty. "~" is expanded.
	LocalRoot      string `toml:"local_root"`
	Host           string `toml:"host"`
	Org            string `toml:"org"`
	Repo           string `toml:"repo"`
	Branch         string `toml:"branch"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// InstallConfig holds defaults for the install command.
type InstallConfig struct {
	Platforms             []string `toml:"platforms"`
	OverwriteInstructions bool     `toml:"overwrite_instructions"`
	OverwriteStandards    bool     `toml:"overwrite_standards"`
	OverwriteConfig       bool     `toml:"overwrite_config"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Host:           source.DefaultHost,
			Org:            source.DefaultOrg,
			Repo:           source.DefaultRepo,
			Branch:         source.DefaultBranch,
			TimeoutSeconds: int(source.DefaultTimeout / time.Second),
		},
	}
}

// BaseURL returns the remote template URL for branch, or for the configured
// branch when branch is empty.
func (s SourceConfig) BaseURL(branch string) string {
	if branch == "" {
		branch = s.Branch
	}
	return source.BaseURL(s.Host, s.Org, s.Repo, branch)
}

// Timeout returns the per-request HTTP timeout.
func (s SourceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ExpandedLocalRoot returns LocalRoot with a leading "~" expanded.
func (s SourceConfig) ExpandedLocalRoot() (string, error) {
	if s.LocalRoot == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(s.LocalRoot)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, s.LocalRoot, err)
	}
	return expanded, nil
}

// PlatformIDs returns the configured default platforms. Unknown entries are
// rejected by Validate, so they are dropped here.
func (i InstallConfig) PlatformIDs() []platform.ID {
	out := make([]platform.ID, 0, len(i.Platforms))
	for _, raw := range i.Platforms {
		if id, ok := platform.Parse(raw); ok {
			out = append(out, id)
		}
	}
	return out
}
