// Package paths resolves where shotgun keeps its files. The config
// directory comes from adrg/xdg: ~/.config/shotgun on Linux and
// ~/Library/Application Support/shotgun on macOS.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/shotgun/internal/errors"
)

const (
	AppName        = "shotgun"
	ConfigFileName = "config.yaml"
)

// privateDir is used by EnsureDir when no mode is given.
const privateDir os.FileMode = 0o700

// ConfigDir is $XDG_CONFIG_HOME/shotgun.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigFile is the config file inside ConfigDir.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// EnsureDir creates path and its parents. A zero perm means 0700.
// An existing directory is not an error and keeps its mode.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = privateDir
	}
	if err := os.MkdirAll(path, perm); err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	return nil
}

// ExpandHome resolves a leading "~" or "~/" against the user's home
// directory. "~user" forms are left alone.
func ExpandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/') {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving home directory")
	}
	return filepath.Join(home, rest), nil
}
