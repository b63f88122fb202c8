package config

import (
	"os"

	"github.com/tnicklin/filelog/logger"
	"go.uber.org/config"
)

// AppConfig holds all application configuration.
type AppConfig struct {
	Logger logger.Config `yaml:"logger"`
}

// Load reads configuration from the specified YAML files.
// Files are merged in order, with later files overriding earlier ones.
// Missing files are silently ignored.
func Load(files ...string) (*AppConfig, error) {
	opts := make([]config.YAMLOption, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			opts = append(opts, config.File(f))
		}
	}

	if len(opts) == 0 {
		return nil, os.ErrNotExist
	}

	provider, err := config.NewYAML(opts...)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := provider.Get(config.Root).Populate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration with sensible defaults.
func LoadWithDefaults(files ...string) (*AppConfig, error) {
	cfg, err := Load(files...)
	if err != nil {
		return nil, err
	}

	if cfg.Logger.Dir == "" {
		cfg.Logger.Dir = logger.DefaultDir
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}

	return cfg, nil
}
