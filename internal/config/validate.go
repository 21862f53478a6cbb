package config

import (
	"fmt"
	"strings"

	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/platform"
)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(path string) error {
	required := []struct {
		key   string
		value string
	}{
		{"source.host", c.Source.Host},
		{"source.org", c.Source.Org},
		{"source.repo", c.Source.Repo},
		{"source.branch", c.Source.Branch},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf(messages.ConfigFieldRequiredFmt, path, field.key)
		}
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf(messages.ConfigTimeoutInvalidFmt, path, c.Source.TimeoutSeconds)
	}
	for i, raw := range c.Install.Platforms {
		if _, ok := platform.Parse(raw); !ok {
			return fmt.Errorf(messages.ConfigPlatformInvalidFmt, path, i, raw)
		}
	}
	return nil
}
