package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/spf13/pflag"
)

const (
	ModePlay  = "play"
	ModeArena = "arena"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidVariant  = errors.New("invalid variant")
	ErrInvalidDepth    = errors.New("search depth must be positive")
	ErrInvalidArena    = errors.New("arena games and workers must be positive")

	logLevels = map[string]struct{}{
		"debug": {},
		"info":  {},
		"warn":  {},
		"error": {},
	}

	variants = map[string]struct{}{
		"random":     {},
		"rules":      {},
		"exhaustive": {},
		"bounded":    {},
	}
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode        string `yaml:"mode" env:"MODE" env-default:"play"`
	Variant     string `yaml:"variant" env:"VARIANT" env-default:"exhaustive"`
	HumanMark   string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
	HumanFirst  bool   `yaml:"human-first" env:"HUMAN_FIRST"`
	Ask         bool   `yaml:"ask" env:"ASK" env-default:"false"`
	SearchDepth int    `yaml:"search-depth" env:"SEARCH_DEPTH" env-default:"4"`
	Trace       bool   `yaml:"trace" env:"TRACE" env-default:"false"`
	Color       bool   `yaml:"color" env:"COLOR"`
	Arena       Arena  `yaml:"arena"`
	Redis       Redis  `yaml:"redis"`
}

type Arena struct {
	Games    int    `yaml:"games" env:"ARENA_GAMES" env-default:"100"`
	Workers  int    `yaml:"workers" env:"ARENA_WORKERS" env-default:"4"`
	Opponent string `yaml:"opponent" env:"ARENA_OPPONENT" env-default:"random"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the YAML file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	// cleanenv applies env-default to zero values, so defaults of true are preset here
	config := &Config{
		HumanFirst: true,
		Color:      true,
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, os.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return config, nil
}

// RegisterFlags - adds command line overrides; current values become the flag defaults.
func (that *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&that.LogLevel, "log-level", that.LogLevel, "debug, info, warn or error")
	fs.StringVarP(&that.Mode, "mode", "m", that.Mode, "play against the computer or run an arena")
	fs.StringVarP(&that.Variant, "variant", "v", that.Variant, "random, rules, exhaustive or bounded")
	fs.StringVar(&that.HumanMark, "human", that.HumanMark, "mark played at the console (X or O)")
	fs.BoolVar(&that.HumanFirst, "first", that.HumanFirst, "human moves first")
	fs.BoolVar(&that.Ask, "ask", that.Ask, "ask for mark, first move and trace at startup")
	fs.IntVarP(&that.SearchDepth, "depth", "d", that.SearchDepth, "depth limit of the bounded search")
	fs.BoolVarP(&that.Trace, "trace", "t", that.Trace, "print the explored game tree after each exhaustive move")
	fs.BoolVar(&that.Color, "color", that.Color, "color X and O on the board")
	fs.IntVar(&that.Arena.Games, "games", that.Arena.Games, "arena games")
	fs.IntVar(&that.Arena.Workers, "workers", that.Arena.Workers, "arena games played concurrently")
	fs.StringVar(&that.Arena.Opponent, "opponent", that.Arena.Opponent, "arena opponent variant")
	fs.BoolVar(&that.Redis.Enabled, "redis", that.Redis.Enabled, "cache search decisions in redis")
}

func (that *Config) Validate() error {
	if _, ok := logLevels[that.LogLevel]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	if that.Mode != ModePlay && that.Mode != ModeArena {
		return fmt.Errorf("%w: %q", ErrInvalidMode, that.Mode)
	}

	if _, ok := variants[that.Variant]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidVariant, that.Variant)
	}

	if _, err := entity.ParseMark(that.HumanMark); err != nil {
		return fmt.Errorf("invalid human mark: %w", err)
	}

	if that.SearchDepth <= 0 {
		return ErrInvalidDepth
	}

	if that.Mode == ModeArena {
		if _, ok := variants[that.Arena.Opponent]; !ok {
			return fmt.Errorf("%w: opponent %q", ErrInvalidVariant, that.Arena.Opponent)
		}

		if that.Arena.Games <= 0 || that.Arena.Workers <= 0 {
			return ErrInvalidArena
		}
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
