// Package config loads todo settings from a YAML file and TODO_* environment
// variables.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/abatilo/todo/internal/storage"
	"github.com/abatilo/todo/internal/task"
	"github.com/abatilo/todo/internal/view"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the config filename inside the config directory.
	ConfigFile = "config.yaml"

	envPrefix = "TODO"
)

// Config holds user settings.
type Config struct {
	// DataDir is where task lists are stored.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// Scope is "user" (one list) or "project" (one list per git repository).
	Scope string `yaml:"scope" mapstructure:"scope"`

	// Backend is "file" (one JSON file per key) or "sqlite" (a todo.db table).
	Backend string `yaml:"backend" mapstructure:"backend"`

	// DefaultPriority is used by add when no priority is given.
	DefaultPriority string `yaml:"default_priority" mapstructure:"default_priority"`

	// Theme is the theme every session starts in.
	Theme string `yaml:"theme" mapstructure:"theme"`

	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// InvalidValueError indicates a config key holds an unsupported value.
type InvalidValueError struct {
	Key   string
	Value string
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("invalid config value for %s: %q", e.Key, e.Value)
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir:         DefaultDataDir(),
		Scope:           string(storage.ScopeUser),
		Backend:         string(storage.BackendFile),
		DefaultPriority: string(task.DefaultPriority),
		Theme:           view.ThemeLight.String(),
		LogLevel:        "warn",
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFile)
}

// DefaultDataDir returns ~/.todo, or .todo when the home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, "."+AppName)
}

// Load reads configuration from path, layered over the defaults and under
// TODO_* environment variables. An empty path means DefaultPath, which may be
// absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("scope", def.Scope)
	v.SetDefault("backend", def.Backend)
	v.SetDefault("default_priority", def.DefaultPriority)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("log_level", def.LogLevel)

	if _, err := os.Stat(path); err == nil || explicit {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.DataDir = expandHome(cfg.DataDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch storage.Scope(c.Scope) {
	case storage.ScopeUser, storage.ScopeProject:
	default:
		return InvalidValueError{Key: "scope", Value: c.Scope}
	}
	switch storage.Backend(c.Backend) {
	case storage.BackendFile, storage.BackendSQLite:
	default:
		return InvalidValueError{Key: "backend", Value: c.Backend}
	}
	if _, ok := task.ParsePriority(c.DefaultPriority); !ok {
		return InvalidValueError{Key: "default_priority", Value: c.DefaultPriority}
	}
	switch strings.ToLower(c.Theme) {
	case "light", "dark":
	default:
		return InvalidValueError{Key: "theme", Value: c.Theme}
	}
	return nil
}

// Priority returns the parsed default priority.
func (c *Config) Priority() task.Priority {
	p, ok := task.ParsePriority(c.DefaultPriority)
	if !ok {
		return task.DefaultPriority
	}
	return p
}

// StartTheme returns the parsed starting theme.
func (c *Config) StartTheme() view.Theme {
	return view.ParseTheme(c.Theme)
}

// BasePath resolves the storage directory for the configured scope.
func (c *Config) BasePath() (string, error) {
	return storage.ResolveBasePath(c.DataDir, storage.Scope(c.Scope))
}

// Write saves cfg as YAML at path, creating the directory.
func Write(path string, cfg *Config) error {
	//nolint:gosec // G301: 0755 is appropriate for user config directory
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("# todo configuration\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	//nolint:gosec // G306: 0644 is appropriate for user config files
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
