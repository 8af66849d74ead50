// Package config holds the paths and logging settings the backend runs with.
//
// Values start from the built-in defaults, which are the install locations of
// a stock Windows Steam client, and may be overridden from the environment
// and then from command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Log formats understood by the CLI.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultLibraryRoot is the Steam install the library scan targets.
const DefaultLibraryRoot = `C:\Program Files (x86)\Steam`

// DefaultLoginUsersPaths lists the login caches searched for the SteamID, in order.
var DefaultLoginUsersPaths = []string{
	"C:/Program Files (x86)/Steam/config/loginusers.vdf",
	"C:/Program Files/Steam/config/loginusers.vdf",
	"D:/Steam/config/loginusers.vdf",
	"E:/Steam/config/loginusers.vdf",
}

// Config is injected into the scanner, locator and CLI at construction time.
type Config struct {
	LoginUsersPaths []string `env:"GAMINGHUB_LOGINUSERS_PATHS" envSeparator:";"`
	LibraryRoot     string   `env:"GAMINGHUB_STEAM_ROOT"`
	LogLevel        string   `env:"GAMINGHUB_LOG_LEVEL"`
	LogFormat       string   `env:"GAMINGHUB_LOG_FORMAT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LoginUsersPaths: append([]string(nil), DefaultLoginUsersPaths...),
		LibraryRoot:     DefaultLibraryRoot,
		LogLevel:        "info",
		LogFormat:       LogFormatText,
	}
}

// LoadFromEnv returns Default overlaid with any GAMINGHUB_* variables that are set.
func LoadFromEnv() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LoginUsersPaths = trimPaths(cfg.LoginUsersPaths)
	return cfg, nil
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	if strings.TrimSpace(c.LibraryRoot) == "" {
		return errors.New("library root must not be empty")
	}
	if len(c.LoginUsersPaths) == 0 {
		return errors.New("at least one login users path is required")
	}
	for i, p := range c.LoginUsersPaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("login users path %d is empty", i)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}

// SplitPaths splits a ';'-separated list, trimming spaces and dropping empty entries.
func SplitPaths(list string) []string {
	return trimPaths(strings.Split(list, ";"))
}

func trimPaths(paths []string) []string {
	var trimmed []string
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	return trimmed
}
