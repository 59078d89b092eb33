package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

const (
	// AppName names the per-user config and data directories.
	AppName = "mkt"
	// ConfigFileName is the base name of the config file in ConfigDir.
	ConfigFileName = "config.yaml"
	// DefaultDirPerm is used by EnsureDir when no mode is given.
	DefaultDirPerm = 0o700
)

var (
	ErrHomeDirNotFound = errors.New("home directory not found")
	ErrInvalidPath     = errors.New("invalid path")
)

// ConfigDir returns $XDG_CONFIG_HOME/mkt, or the platform equivalent.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// LogDir returns $XDG_DATA_HOME/mkt/logs, where bare --log-file names go.
func LogDir() string {
	return filepath.Join(xdg.DataHome, AppName, "logs")
}

// EnsureDir is os.MkdirAll with DefaultDirPerm for a zero perm.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory
// and cleans the result. "~user" forms are left alone.
func ExpandHome(path string) (string, error) {
	if strings.ContainsRune(path, '\x00') {
		return "", errors.Wrapf(ErrInvalidPath, "%q", path)
	}
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return filepath.Clean(path), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return filepath.Join(home, path[1:]), nil
}
