package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	fileName    = "config.yml"
	xdgFileName = "tictactoe/config.yml"
)

var ErrInvalidDepth = errors.New("search depth must be between 1 and 9")

type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode       string   `yaml:"mode" env:"GAME_MODE" env-default:"pvc"`
	Difficulty string   `yaml:"difficulty" env:"GAME_DIFFICULTY"`
	Depths     Depths   `yaml:"depths"`
	Computer   Computer `yaml:"computer"`
	Redis      Redis    `yaml:"redis"`
}

// Depths maps each difficulty tier to a search depth in plies.
type Depths struct {
	Easy   int `yaml:"easy" env:"DEPTH_EASY" env-default:"3"`
	Medium int `yaml:"medium" env:"DEPTH_MEDIUM" env-default:"5"`
	Hard   int `yaml:"hard" env:"DEPTH_HARD" env-default:"9"`
}

type Computer struct {
	// Random makes the computer play random legal moves instead of searching.
	Random bool  `yaml:"random" env:"COMPUTER_RANDOM" env-default:"false"`
	Seed   int64 `yaml:"seed" env:"COMPUTER_SEED" env-default:"0"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load configuration from path, or from the environment when path is empty.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Locate - finds config.yml in baseDir, then in the XDG config directories.
// It returns an empty string when there is no config file.
func Locate(baseDir string) string {
	local := filepath.Join(baseDir, fileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	if path, err := xdg.SearchConfigFile(xdgFileName); err == nil {
		return path
	}

	return ""
}

func (that *Config) Validate() error {
	if _, err := entity.ParseMode(that.Mode); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if that.Difficulty != "" {
		if _, err := entity.ParseDifficulty(that.Difficulty); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	for _, depth := range []int{that.Depths.Easy, that.Depths.Medium, that.Depths.Hard} {
		if depth < 1 || depth > entity.Size*entity.Size {
			return fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
		}
	}

	return nil
}

func (that *Config) GameMode() entity.Mode {
	mode, _ := entity.ParseMode(that.Mode)
	return mode
}

// PresetDifficulty returns the configured tier, if any.
func (that *Config) PresetDifficulty() (entity.Difficulty, bool) {
	difficulty, err := entity.ParseDifficulty(that.Difficulty)
	return difficulty, err == nil
}

func (that *Depths) For(difficulty entity.Difficulty) (int, error) {
	switch difficulty {
	case entity.Easy:
		return that.Easy, nil
	case entity.Medium:
		return that.Medium, nil
	case entity.Hard:
		return that.Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
