package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env-default:"warn"`
	LogFormat   string `yaml:"log-format" env-default:"text"`
	FirstPlayer string `yaml:"first-player" env-default:"O"`
	Color       bool   `yaml:"color" env-default:"false"`
}

// Load - reads the config file at path. A missing file means defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to apply config defaults: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	if _, err = config.FirstMark(); err != nil {
		return nil, fmt.Errorf("bad first-player: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) FirstMark() (entity.Mark, error) {
	return entity.ParseMark(that.FirstPlayer)
}
