// Package app provides application-level configuration and initialization.
package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lazyvibe/phonebook/pkg/utils"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// DefaultLogFile is the log file name used when none is configured.
const DefaultLogFile = "phonebook.log"

// Config holds the application configuration.
type Config struct {
	// Storage selects where contacts are persisted.
	Storage StorageConfig `json:"storage"`
	// Log configures the log file.
	Log LogConfig `json:"log"`
	// Notification configures duplicate-name and change alerts.
	Notification NotificationConfig `json:"notification"`
	// Theme is the color theme (future use).
	Theme string `json:"theme"`
}

// StorageConfig selects and configures the durable storage backend.
type StorageConfig struct {
	// Backend is one of "file", "redis", "memory".
	Backend string `json:"backend"`
	// RedisAddr is the redis server address (e.g. "localhost:6379").
	RedisAddr string `json:"redis_addr,omitempty"`
	// RedisPassword is the optional redis password.
	RedisPassword string `json:"redis_password,omitempty"`
	// RedisDB is the redis database number.
	RedisDB int `json:"redis_db,omitempty"`
	// RedisPrefix is prepended to every key stored in redis.
	RedisPrefix string `json:"redis_prefix,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of logrus' level names ("debug", "info", ...).
	Level string `json:"level"`
	// File is the log file path. Relative paths resolve against the config dir.
	File string `json:"file,omitempty"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	// Desktop enables desktop notifications via system APIs.
	Desktop bool `json:"desktop"`
	// WebhookURL is the optional URL to send webhook notifications.
	WebhookURL string `json:"webhook_url,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:     BackendFile,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "phonebook:",
		},
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogFile,
		},
		Theme: "catppuccin-mocha",
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.json")
}

// LoadConfig loads the configuration from disk.
func LoadConfig(configDir string) (*Config, error) {
	path := ConfigPath(configDir)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(configDir string, config *Config) error {
	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(configDir), data, 0644)
}

// Validate checks field values that cannot be fixed up silently.
func (c *Config) Validate() error {
	backend := strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if backend == "" {
		backend = BackendFile
	}
	switch backend {
	case BackendFile, BackendRedis, BackendMemory:
		c.Storage.Backend = backend
	default:
		return fmt.Errorf("storage backend %q: must be file, redis or memory", c.Storage.Backend)
	}
	if c.Storage.Backend == BackendRedis && strings.TrimSpace(c.Storage.RedisAddr) == "" {
		return errors.New("redis backend requires redis_addr")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return fmt.Errorf("log level %q is not recognized", c.Log.Level)
	}
	return nil
}

// LogPath resolves the log file against configDir.
func (c *Config) LogPath(configDir string) string {
	file := c.Log.File
	if file == "" {
		file = DefaultLogFile
	}
	if file == os.DevNull {
		return file
	}
	return utils.ResolvePath(configDir, file)
}

// ConfigDir returns the Phonebook configuration directory.
func ConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if available, otherwise default to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "phonebook"), nil
}
