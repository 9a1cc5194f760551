package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder settings.
type Config struct {
	// File is the YAML question bank to load.
	File   string `yaml:"file"    env:"SEED_FILE"`
	DryRun bool   `yaml:"dry_run" env:"SEED_DRY_RUN"`
	// StopOnError aborts at the first failed question instead of
	// recording it and moving on.
	StopOnError bool `yaml:"stop_on_error" env:"SEED_STOP_ON_ERROR"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
