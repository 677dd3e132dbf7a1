package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "SPACEZOOM_"

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the process configuration. Values come from the environment
// (optionally seeded from a .env file) and are overridden by flags.
type Config struct {
	LogLevel   string
	LogDir     string
	PrefabDir  string
	Muted      bool
	Fullscreen bool
	Advance    string
	Seed       int64
}

// Load reads .env files, the environment and then args. A missing .env file
// is not an error.
func Load(args []string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load env file: %w", err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("spacezoom", flag.ContinueOnError)
	fs.StringVar(&cfg.PrefabDir, "config", cfg.PrefabDir, "directory whose scene.yaml and scripts override the embedded ones")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "directory for the rotating log file")
	fs.BoolVar(&cfg.Muted, "mute", cfg.Muted, "start with audio muted")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "start fullscreen")
	fs.StringVar(&cfg.Advance, "advance", cfg.Advance, "auto flight pace: frame or time")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for generated content (0 picks one)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: parse flags: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	muted, err := envBool("MUTE", false)
	if err != nil {
		return nil, err
	}
	fullscreen, err := envBool("FULLSCREEN", false)
	if err != nil {
		return nil, err
	}
	seed, err := strconv.ParseInt(getEnv("SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %sSEED: %v", ErrInvalidConfig, envPrefix, err)
	}
	return &Config{
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogDir:     getEnv("LOG_DIR", ""),
		PrefabDir:  getEnv("PREFABS", "prefabs"),
		Muted:      muted,
		Fullscreen: fullscreen,
		Advance:    getEnv("ADVANCE", ""),
		Seed:       seed,
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(envPrefix + key); ok {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(envPrefix + key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s%s: %v", ErrInvalidConfig, envPrefix, key, err)
	}
	return v, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.Advance {
	case "", "frame", "time":
	default:
		return fmt.Errorf("%w: advance mode %q", ErrInvalidConfig, c.Advance)
	}
	return nil
}
