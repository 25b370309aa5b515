package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/sibyl/deck"
	"github.com/minaorangina/sibyl/engine"
)

// Config is read from the environment
type Config struct {
	Addr          string        `env:"SIBYL_ADDR,default=:8000"`
	LogLevel      string        `env:"SIBYL_LOG_LEVEL,default=info"`
	ShuffleWait   time.Duration `env:"SIBYL_SHUFFLE_WAIT,default=2s"`
	FlipDelay     time.Duration `env:"SIBYL_FLIP_DELAY,default=400ms"`
	AutoPlayDelay time.Duration `env:"SIBYL_AUTOPLAY_DELAY,default=500ms"`
	PlaceDelay    time.Duration `env:"SIBYL_PLACE_DELAY,default=300ms"`

	// Seed fixes the shuffle order. Zero means seed from the clock.
	Seed int64 `env:"SIBYL_SEED,default=0"`

	// LogFile is where the terminal client writes its logs, if anywhere
	LogFile string `env:"SIBYL_LOG_FILE"`

	level slog.Level
}

func Load() (Config, error) {
	var c Config
	err := envdecode.StrictDecode(&c)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	c.level, err = parseLogLevel(c.LogLevel)
	if err != nil {
		return Config{}, err
	}

	for name, d := range map[string]time.Duration{
		"SIBYL_SHUFFLE_WAIT":   c.ShuffleWait,
		"SIBYL_FLIP_DELAY":     c.FlipDelay,
		"SIBYL_AUTOPLAY_DELAY": c.AutoPlayDelay,
		"SIBYL_PLACE_DELAY":    c.PlaceDelay,
	} {
		if d < 0 {
			return Config{}, fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}

	return c, nil
}

func (c Config) Level() slog.Level {
	return c.level
}

func (c Config) Pacing() engine.Pacing {
	return engine.Pacing{
		ShuffleWait:   c.ShuffleWait,
		FlipDelay:     c.FlipDelay,
		AutoPlayDelay: c.AutoPlayDelay,
		PlaceDelay:    c.PlaceDelay,
	}
}

// RNG returns the randomness each new deck should shuffle with
func (c Config) RNG() deck.RNG {
	if c.Seed == 0 {
		return deck.NewRNG()
	}
	return deck.NewSeededRNG(c.Seed)
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid SIBYL_LOG_LEVEL %q", s)
	}
}
