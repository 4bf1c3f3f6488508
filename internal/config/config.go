// Package config handles XDG configuration directory, file paths, and the
// backend base URL.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "taskify"

	// TokenFile is the stored session token filename.
	TokenFile = "token"

	// CacheFile is the task-collection snapshot filename.
	CacheFile = "tasks.json"

	// EnvBaseURL is the environment variable overriding the backend base URL.
	EnvBaseURL = "TASKIFY_API_URL"

	// DefaultBaseURL is the backend base URL when nothing else is configured.
	DefaultBaseURL = "http://localhost:3000"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the backend API base URL, without a trailing slash.
	BaseURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the default or specified config directory and
// base URL. If configDir is empty, uses XDG_CONFIG_HOME/taskify or
// $HOME/.config/taskify. If baseURL is empty, falls back to TASKIFY_API_URL
// (a .env file in the working directory is loaded first) and then to
// DefaultBaseURL.
func New(configDir, baseURL string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:     dir,
		BaseURL: resolveBaseURL(baseURL),
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// resolveBaseURL picks the backend base URL: flag value, then environment
// (with .env loaded), then the default. A trailing slash is stripped so path
// joining stays uniform.
func resolveBaseURL(flagValue string) string {
	url := flagValue
	if url == "" {
		// Missing .env is not an error; the environment may be set directly.
		_ = godotenv.Load()
		url = os.Getenv(EnvBaseURL)
	}
	if url == "" {
		url = DefaultBaseURL
	}
	return strings.TrimRight(url, "/")
}

// TokenPath returns the path to the stored session token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// CachePath returns the path to the task-collection snapshot file.
func (c *Config) CachePath() string {
	return filepath.Join(c.Dir, CacheFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
