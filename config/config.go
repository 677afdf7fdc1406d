package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/lightcycle/constants"
)

// configName is the file looked up in the config directory, lightcycle.toml
const configName = "lightcycle"

// ArenaConfig holds board construction parameters
type ArenaConfig struct {
	Width          int `mapstructure:"width"`
	Height         int `mapstructure:"height"`
	Bots           int `mapstructure:"bots"`
	MaxTrailLength int `mapstructure:"maxTrailLength"`
}

// GameConfig holds simulation pacing and seeding
type GameConfig struct {
	Seed         uint64        `mapstructure:"seed"` // 0 derives the seed from the clock
	TickInterval time.Duration `mapstructure:"tickInterval"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
	Debug bool   `mapstructure:"debug"` // Enables the log file
}

// Config is the full application configuration
type Config struct {
	Arena ArenaConfig `mapstructure:"arena"`
	Game  GameConfig  `mapstructure:"game"`
	Log   LogConfig   `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("arena.width", constants.DefaultArenaWidth)
	v.SetDefault("arena.height", constants.DefaultArenaHeight)
	v.SetDefault("arena.bots", constants.DefaultBotCount)
	v.SetDefault("arena.maxTrailLength", constants.MaxTrailLength)

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.tickInterval", constants.GameUpdateInterval.String())

	v.SetDefault("log.level", "info")
	v.SetDefault("log.debug", false)
}

// Load reads lightcycle.toml from configDir over the defaults, then LIGHTCYCLE_* environment variables
// A missing file is not an error
func Load(configDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("LIGHTCYCLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot be built from
func (c Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("invalid arena size %dx%d", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.Bots < 0 {
		return fmt.Errorf("invalid bot count %d", c.Arena.Bots)
	}
	if c.Arena.MaxTrailLength < 0 {
		return fmt.Errorf("invalid max trail length %d", c.Arena.MaxTrailLength)
	}
	if c.Game.TickInterval <= 0 {
		return fmt.Errorf("invalid tick interval %s", c.Game.TickInterval)
	}
	return nil
}
