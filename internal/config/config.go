package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

// ConfigDir holds settings.json. Set by InitConfigDir.
var ConfigDir string

// ErrNoConfigDir is returned when a -config-dir override does not exist
var ErrNoConfigDir = errors.New("config directory does not exist")

// defaultConfigDir resolves TABDOCK_CONFIG_HOME, then
// $XDG_CONFIG_HOME/tabdock, then ~/.config/tabdock
func defaultConfigDir() (string, error) {
	if dir := os.Getenv("TABDOCK_CONFIG_HOME"); dir != "" {
		return dir, nil
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("locating home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tabdock"), nil
}

// InitConfigDir sets ConfigDir. An existing override directory wins as is;
// otherwise the default directory is used and created when missing. A
// missing override is reported with ErrNoConfigDir after falling back.
func InitConfigDir(override string) error {
	dir, err := defaultConfigDir()
	if err != nil {
		return err
	}
	ConfigDir = dir

	var overrideErr error
	if override != "" {
		if info, err := os.Stat(override); err == nil && info.IsDir() {
			ConfigDir = override
			return nil
		}
		overrideErr = fmt.Errorf("%w: %s, using %s", ErrNoConfigDir, override, ConfigDir)
	}

	if err := os.MkdirAll(ConfigDir, os.ModePerm); err != nil {
		return fmt.Errorf("creating config directory %s: %w", ConfigDir, err)
	}
	return overrideErr
}

// SettingsFilePath returns the path to settings.json in the config directory
func SettingsFilePath() string {
	return filepath.Join(ConfigDir, SettingsFileName)
}
