package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/quizgrid/quizgrid/internal/game"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix is prepended to every environment override, e.g.
// QUIZGRID_TIMING_AUTO_CLOSE_DELAY=2s.
const EnvPrefix = "QUIZGRID"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Timing Timing `mapstructure:"timing"` // prompt pacing
	Log    Log    `mapstructure:"log"`    // log sink
}

// Timing mirrors game.Timing with config keys.
type Timing struct {
	FocusDelay     time.Duration `mapstructure:"focus_delay"`
	AutoCloseDelay time.Duration `mapstructure:"auto_close_delay"`
	GameOverDelay  time.Duration `mapstructure:"game_over_delay"`
}

// Log configures the log file.
type Log struct {
	Level string `mapstructure:"level"` // zerolog level name, or "disabled"
	File  string `mapstructure:"file"`  // empty selects the default path
}

// Game converts the timing section for the game controller.
func (t Timing) Game() game.Timing {
	return game.Timing{
		FocusDelay:     t.FocusDelay,
		AutoCloseDelay: t.AutoCloseDelay,
		GameOverDelay:  t.GameOverDelay,
	}
}

// LoadOptions selects where configuration is read from.
type LoadOptions struct {
	// ConfigFile is an explicit config path. When empty, config.yaml is
	// searched in ./config and $XDG_CONFIG_HOME/quizgrid.
	ConfigFile string

	// EnvFile is a dotenv file loaded before reading the environment.
	// A missing file is not an error.
	EnvFile string
}

// Load reads configuration from an optional file, an optional .env file,
// and QUIZGRID_* environment variables, in increasing priority.
func Load(opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	v := viper.New()
	defaults := game.DefaultTiming()
	v.SetDefault("timing.focus_delay", defaults.FocusDelay)
	v.SetDefault("timing.auto_close_delay", defaults.AutoCloseDelay)
	v.SetDefault("timing.game_over_delay", defaults.GameOverDelay)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	delays := []struct {
		key string
		d   time.Duration
	}{
		{"timing.focus_delay", c.Timing.FocusDelay},
		{"timing.auto_close_delay", c.Timing.AutoCloseDelay},
		{"timing.game_over_delay", c.Timing.GameOverDelay},
	}
	for _, d := range delays {
		if d.d < 0 {
			return fmt.Errorf("%w: %s must not be negative (got %s)", ErrInvalidConfig, d.key, d.d)
		}
	}
	return nil
}

// configDir returns $XDG_CONFIG_HOME/quizgrid, falling back to ~/.config/quizgrid.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "quizgrid"), nil
}
