package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// PathEnv names the environment variable holding the config file path.
	PathEnv     = "DICTBUILD_APP_CONFIG"
	defaultPath = "./dictbuild.yaml"
)

// Load reads the process-level settings shared by every command.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file is taken from DICTBUILD_APP_CONFIG, or ./dictbuild.yaml when the
// variable is unset; only an explicitly named file is required to exist.
func Load() (*Config, error) {
	path, explicit := resolvePath()

	cfg, err := read(path, explicit)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func resolvePath() (string, bool) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, true
	}
	return defaultPath, false
}

func read(path string, explicit bool) (*Config, error) {
	var cfg Config

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}
	return &cfg, nil
}
