// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// AppName names the per-user platform directories.
const AppName = "lootboard"

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".lootboard"
	DefaultDataDirName   = ".lootboard-db"
)

// DefaultExportFile is the file name used when export is given no --out.
const DefaultExportFile = "mhw-board-game-data.json"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "LOOTBOARD_CONFIG_DIR"
	EnvDataDir   = "LOOTBOARD_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgDir returns $xdgEnv/lootboard on Linux, falling back to
// ~/<fallback...>/lootboard. Other platforms use os.UserConfigDir.
func xdgDir(xdgEnv string, fallback ...string) (string, error) {
	if platformDir.goos != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if xdg := os.Getenv(xdgEnv); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, AppName)...), nil
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/lootboard (fallback ~/.config/lootboard)
// macOS:   ~/Library/Application Support/lootboard
// Windows: %APPDATA%/lootboard
func DefaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific data directory. It is not part
// of the ResolveDataDir chain; init prints it as an alternative location.
//
// Linux:   $XDG_DATA_HOME/lootboard (fallback ~/.local/share/lootboard)
// macOS and Windows: same as DefaultConfigDir.
func DefaultDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > LOOTBOARD_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > LOOTBOARD_DATA_DIR env > $(CWD)/.lootboard-db.
//
// With no override each working directory keeps its own board.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	for _, candidate := range []string{flag, configYAMLValue, os.Getenv(EnvDataDir)} {
		if candidate != "" {
			return filepath.Abs(candidate)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// BackupFile returns the path of a reset backup inside dataDir. The name
// embeds the UTC timestamp and id so backups sort chronologically.
func BackupFile(dataDir string, at time.Time, id string) string {
	name := "backup-" + at.UTC().Format("20060102T150405Z") + "-" + id + ".json"
	return filepath.Join(dataDir, "backups", name)
}
