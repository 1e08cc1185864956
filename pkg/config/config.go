package config

import (
	"os"
	"path/filepath"
	"strconv"

	"clipscrub/pkg/errors"

	"gopkg.in/yaml.v3"
)

// Config holds the complete clipscrub configuration. Flags override file
// values, file values override environment, and everything has a working
// default, so a missing config file is never an error.
type Config struct {
	Policy  PolicyConfig  `yaml:"policy"`
	Notify  NotifyConfig  `yaml:"notify"`
	History HistoryConfig `yaml:"history"`
}

// PolicyConfig mirrors scrub.Policy for the config file.
type PolicyConfig struct {
	KeepFormatMarks  bool `yaml:"keep_format_marks"`
	KeepNoBreakSpace bool `yaml:"keep_no_break_space"`
}

type NotifyConfig struct {
	SuppressSound bool `yaml:"suppress_sound"`
	SuppressToast bool `yaml:"suppress_toast"`
}

type HistoryConfig struct {
	Disabled bool   `yaml:"disabled"`
	Path     string `yaml:"path,omitempty"`
}

// Load reads the config file if present and applies environment overrides.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "clipscrub", "config.yaml"), nil
}

// Save writes the configuration to the config file, creating the directory
// if needed.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path.
// A missing file is fine; env vars and defaults cover everything.
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

func applyEnvironmentOverrides(cfg *Config) {
	cfg.Policy.KeepFormatMarks = getEnvBool("CLIPSCRUB_KEEP_FORMAT_MARKS", cfg.Policy.KeepFormatMarks)
	cfg.Policy.KeepNoBreakSpace = getEnvBool("CLIPSCRUB_KEEP_NBSP", cfg.Policy.KeepNoBreakSpace)
	cfg.Notify.SuppressSound = getEnvBool("CLIPSCRUB_NO_SOUND", cfg.Notify.SuppressSound)
	cfg.Notify.SuppressToast = getEnvBool("CLIPSCRUB_NO_TOAST", cfg.Notify.SuppressToast)
	cfg.History.Disabled = getEnvBool("CLIPSCRUB_NO_HISTORY", cfg.History.Disabled)

	if path := os.Getenv("CLIPSCRUB_HISTORY_PATH"); path != "" {
		cfg.History.Path = path
	}
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
