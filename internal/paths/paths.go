// Package paths resolves the configuration directory and the location of the
// optional log file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under the platform config and state
// roots.
const appDirName = "contacts"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "CONTACTS_CONFIG_DIR"
	EnvStateDir  = "CONTACTS_STATE_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/contacts (fallback ~/.config/contacts)
// macOS:   ~/Library/Application Support/contacts
// Windows: %APPDATA%/contacts
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// DefaultStateDir returns the platform-specific directory for log files.
//
// Linux:   $XDG_STATE_HOME/contacts (fallback ~/.local/state/contacts)
// macOS:   ~/Library/Application Support/contacts
// Windows: %APPDATA%/contacts
func DefaultStateDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "state", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > CONTACTS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveLogFile returns the absolute path of the log file named by the
// log_file config value. An empty value disables file logging and yields "".
// Absolute values are returned unchanged; relative values are joined to
// CONTACTS_STATE_DIR if set, otherwise to DefaultStateDir().
func ResolveLogFile(configValue string) (string, error) {
	if configValue == "" {
		return "", nil
	}
	if filepath.IsAbs(configValue) {
		return configValue, nil
	}
	if env := os.Getenv(EnvStateDir); env != "" {
		dir, err := filepath.Abs(env)
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, configValue), nil
	}
	dir, err := DefaultStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configValue), nil
}
