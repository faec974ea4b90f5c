// Package config handles loading and persisting cl's preferences using
// Viper for layered lookup and go-toml/v2 for on-disk (de)serialization.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// LogLevel is one of the accepted preference values for log verbosity.
type LogLevel string

const (
	// LogLevelDebug enables debug-level logging.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo enables info-level logging.
	LogLevelInfo LogLevel = "info"
	// LogLevelError restricts logging to errors (the default).
	LogLevelError LogLevel = "error"
)

// Preferences holds cl's persisted user preferences.
type Preferences struct {
	// QuietMode suppresses the child shell's stdout during exec.
	QuietMode bool `toml:"quiet-mode" mapstructure:"quiet-mode"`
	// LogLevel controls the minimum severity written to the log file.
	LogLevel LogLevel `toml:"log-level" mapstructure:"log-level"`
	// HighlightMatches enables highlighting of matched query tokens in the
	// TUI's filtered list.
	HighlightMatches bool `toml:"highlight-matches" mapstructure:"highlight-matches"`
}

const (
	// AppName is the application name, used to derive the config directory.
	AppName = "cl"
	// FileName is the name of the preferences file (without extension).
	FileName = "config"
	// FileExt is the preferences file extension.
	FileExt = "toml"
	// CommandsFileName is the name of the command-store file.
	CommandsFileName = "commands.toml"
)

// Default returns the default preferences: quiet=false, log-level=error,
// highlight=true.
func Default() Preferences {
	return Preferences{
		QuietMode:        false,
		LogLevel:         LogLevelError,
		HighlightMatches: true,
	}
}

// Dir returns cl's configuration directory ($HOME/.config/cl on Unix,
// honoring XDG_CONFIG_HOME; the platform-appropriate application-support
// directory elsewhere).
func Dir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// CommandsFilePath returns the path to the persisted command file.
func CommandsFilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CommandsFileName), nil
}

// filePath returns the path to the preferences file.
func filePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName+"."+FileExt), nil
}

// snakeToKebab maps the legacy snake_case keys onto their kebab-case
// replacements so older commands.toml-adjacent config files keep loading.
var snakeToKebab = map[string]string{
	"quiet_mode":        "quiet-mode",
	"log_level":         "log-level",
	"highlight_matches": "highlight-matches",
}

// Load reads preferences from the configured directory, falling back to
// defaults for absent keys and tolerating a missing file entirely.
func Load() (Preferences, error) {
	path, err := filePath()
	if err != nil {
		return Preferences{}, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(FileExt)

	defaults := Default()
	v.SetDefault("quiet-mode", defaults.QuietMode)
	v.SetDefault("log-level", string(defaults.LogLevel))
	v.SetDefault("highlight-matches", defaults.HighlightMatches)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return Preferences{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	// Accept legacy snake_case keys alongside the canonical kebab-case ones.
	for snake, kebab := range snakeToKebab {
		if v.IsSet(snake) && !v.InConfig(kebab) {
			v.Set(kebab, v.Get(snake))
		}
	}

	var prefs Preferences
	if err := v.Unmarshal(&prefs); err != nil {
		return Preferences{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return prefs, nil
}

// Save writes prefs to the configured directory, creating it if necessary.
func Save(prefs Preferences) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", dir, err)
	}

	path, err := filePath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	return nil
}
