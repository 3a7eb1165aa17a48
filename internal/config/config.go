package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const minBoardSize = 3

var ErrInvalidBoardSize = errors.New("invalid board size")

type Config struct {
	LogLevel string `yaml:"log-level" env:"PAPERSOCCER_LOG_LEVEL" env-default:"info"`
	LogPath  string `yaml:"log-path" env:"PAPERSOCCER_LOG_PATH" env-default:"papersoccer.log"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Width  int `yaml:"width" env:"PAPERSOCCER_BOARD_WIDTH" env-default:"9"`
	Height int `yaml:"height" env:"PAPERSOCCER_BOARD_HEIGHT" env-default:"11"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment
// when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Board.Width < minBoardSize || that.Board.Height < minBoardSize {
		return fmt.Errorf("%w: %dx%d, minimum is %d", ErrInvalidBoardSize, that.Board.Width, that.Board.Height, minBoardSize)
	}

	return nil
}
