package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDirName = "agent-os"

// DefaultPath returns the user config path under the XDG config home
// (~/.config/agent-os/config.toml on Linux). The environment is re-read on
// every call so XDG_CONFIG_HOME changes take effect.
func DefaultPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, appDirName, "config.toml")
}
