package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

var (
	ErrInvalidProbability = errors.New("cheat probability must be within [0, 1]")
	ErrUnknownBackend     = errors.New("unknown scoreboard backend")
	ErrUnknownLogLevel    = errors.New("unknown log level")
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile    string     `yaml:"log-file" env:"LOG_FILE" env-default:"ghost-tictactoe.log"`
	Game       Game       `yaml:"game"`
	Scoreboard Scoreboard `yaml:"scoreboard"`
	Redis      Redis      `yaml:"redis"`
	HTTP       HTTP       `yaml:"http"`
	UI         UI         `yaml:"ui"`
}

type Game struct {
	CheatProbability float64 `yaml:"cheat-probability" env:"GAME_CHEAT_PROBABILITY" env-default:"0.2"`
	// NoCheat turns the ghost move off; a zero probability in the file would be taken as unset.
	NoCheat bool `yaml:"no-cheat" env:"GAME_NO_CHEAT"`
	// Seed of the random source; zero picks a time based seed.
	Seed int64 `yaml:"seed" env:"GAME_SEED" env-default:"0"`
}

type Scoreboard struct {
	Backend string `yaml:"backend" env:"SCOREBOARD_BACKEND" env-default:"memory"`
	Name    string `yaml:"name" env:"SCOREBOARD_NAME" env-default:"default"`
}

type Redis struct {
	Host string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"0s"`
}

type HTTP struct {
	Enabled bool   `yaml:"enabled" env:"HTTP_ENABLED" env-default:"false"`
	Port    string `yaml:"port" env:"HTTP_PORT" env-default:"9090"`
}

// UI flags are negative so that a false value in the file is not replaced by a default.
type UI struct {
	NoColor  bool `yaml:"no-color" env:"NO_COLOR"`
	NoBanner bool `yaml:"no-banner" env:"UI_NO_BANNER"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the config file, falling back to env and defaults when the file is absent.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	if that.Game.CheatProbability < 0 || that.Game.CheatProbability > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, that.Game.CheatProbability)
	}

	switch that.Scoreboard.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, that.Scoreboard.Backend)
	}

	return nil
}

// GhostMoveProbability is the chance of a ghost move on each player turn.
func (that *Game) GhostMoveProbability() float64 {
	if that.NoCheat {
		return 0
	}
	return that.CheatProbability
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
