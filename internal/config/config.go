// ABOUTME: lifeos configuration management with backend selection.
// ABOUTME: Reads config.json, applies .env and environment overrides, and opens storage.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/lifeos/internal/storage"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendSQLite, BackendBadger, BackendMemory}

// Environment variables that override the config file.
const (
	EnvBackend = "LIFEOS_BACKEND"
	EnvDataDir = "LIFEOS_DATA_DIR"
)

// Config stores lifeos tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger", or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts lifeos.db here. Badger uses a badger/ folder here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/lifeos.
	DataDir string `json:"data_dir,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// BackendPath returns where a backend keeps its files under the data directory.
// The memory backend has no path.
func (c *Config) BackendPath(backend string) string {
	switch backend {
	case BackendSQLite:
		return filepath.Join(c.GetDataDir(), "lifeos.db")
	case BackendBadger:
		return filepath.Join(c.GetDataDir(), "badger")
	default:
		return ""
	}
}

// OpenKV opens the slot store for backend.
func (c *Config) OpenKV(backend string) (storage.KV, error) {
	switch backend {
	case BackendSQLite:
		return storage.Open(c.BackendPath(backend))
	case BackendBadger:
		return storage.OpenBadger(c.BackendPath(backend))
	case BackendMemory:
		return storage.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// OpenBackend opens a Repository on the named backend.
func (c *Config) OpenBackend(backend string, opts ...storage.Option) (storage.Repository, error) {
	kv, err := c.OpenKV(backend)
	if err != nil {
		return nil, err
	}
	return storage.NewStore(kv, opts...), nil
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage(opts ...storage.Option) (storage.Repository, error) {
	return c.OpenBackend(c.GetBackend(), opts...)
}

// configDir returns the lifeos config directory.
func configDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, "lifeos")
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	return filepath.Join(configDir(), "config.json")
}

// GetEnvPath returns the dotenv override file path.
func GetEnvPath() string {
	return filepath.Join(configDir(), ".env")
}

// Load reads config from disk and applies overrides from the .env file
// and then the process environment.
func Load() (*Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}
	if err := cfg.applyOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyOverrides() error {
	env, err := godotenv.Read(GetEnvPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read %s: %w", GetEnvPath(), err)
	}

	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return env[key]
	}
	if v := lookup(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := lookup(EnvDataDir); v != "" {
		c.DataDir = v
	}
	return nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
