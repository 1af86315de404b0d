// Package config loads runtime settings for the explorer and profile tools
// from the environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"isa-explorer/pkg/atmosphere"
)

const (
	EnvSeaLevelTemperature = "ISA_SEA_LEVEL_TEMPERATURE"
	EnvTickRate            = "ISA_TICK_RATE"
	EnvTimeScale           = "ISA_TIME_SCALE"
	EnvAscentRate          = "ISA_ASCENT_RATE"
	EnvBurstAltitude       = "ISA_BURST_ALTITUDE"
	EnvMaxProbes           = "ISA_MAX_PROBES"
	EnvWindowWidth         = "ISA_WINDOW_WIDTH"
	EnvWindowHeight        = "ISA_WINDOW_HEIGHT"
	EnvLogLevel            = "ISA_LOG_LEVEL"
)

type Config struct {
	SeaLevelTemperature float64 // K
	TickRate            float64 // updates per second
	TimeScale           float64 // simulated seconds per real second
	AscentRate          float64 // m/s
	BurstAltitude       float64 // m
	MaxProbes           int
	WindowWidth         int
	WindowHeight        int
	LogLevel            log.Lvl
}

func Default() Config {
	return Config{
		SeaLevelTemperature: atmosphere.StandardSeaLevelTemperature,
		TickRate:            60,
		TimeScale:           60,
		AscentRate:          5,
		BurstAltitude:       33000,
		MaxProbes:           5,
		WindowWidth:         1024,
		WindowHeight:        768,
		LogLevel:            log.INFO,
	}
}

// Load reads files (".env" when none are given) into the process
// environment, then builds a Config from it. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				log.Debugf("config: %s not found, using environment only", f)
				continue
			}
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from ISA_* variables over the defaults.
func FromEnv() (Config, error) {
	cfg := Default()

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvSeaLevelTemperature, &cfg.SeaLevelTemperature},
		{EnvTickRate, &cfg.TickRate},
		{EnvTimeScale, &cfg.TimeScale},
		{EnvAscentRate, &cfg.AscentRate},
		{EnvBurstAltitude, &cfg.BurstAltitude},
	}
	for _, f := range floats {
		if err := lookupFloat(f.key, f.dst); err != nil {
			return Config{}, err
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvMaxProbes, &cfg.MaxProbes},
		{EnvWindowWidth, &cfg.WindowWidth},
		{EnvWindowHeight, &cfg.WindowHeight},
	}
	for _, i := range ints {
		if err := lookupInt(i.key, i.dst); err != nil {
			return Config{}, err
		}
	}

	if s, ok := os.LookupEnv(EnvLogLevel); ok {
		lvl, err := ParseLevel(s)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = lvl
	}

	return cfg, cfg.Validate()
}

func lookupFloat(key string, dst *float64) error {
	s, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := atmosphere.ParseNumber(key, s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// lookupInt accepts whole numbers only; "2.5" or "1e3" for a count or a
// pixel size is a mistake, not something to round.
func lookupInt(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := atmosphere.ParseValue(key, s)
	if err != nil {
		return err
	}
	i, ok := v.(int64)
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return fmt.Errorf("%s must be a whole number, got %s", key, strings.TrimSpace(s))
	}
	*dst = int(i)
	return nil
}

func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%s must be positive, got %v", EnvTickRate, c.TickRate)
	}
	if c.TimeScale <= 0 {
		return fmt.Errorf("%s must be positive, got %v", EnvTimeScale, c.TimeScale)
	}
	if c.AscentRate <= 0 {
		return fmt.Errorf("%s must be positive, got %v", EnvAscentRate, c.AscentRate)
	}
	if c.BurstAltitude <= atmosphere.MinAltitude || c.BurstAltitude > atmosphere.MaxAltitude {
		return fmt.Errorf("%s, %v, outside %v to %v", EnvBurstAltitude, c.BurstAltitude, atmosphere.MinAltitude, atmosphere.MaxAltitude)
	}
	if c.MaxProbes < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", EnvMaxProbes, c.MaxProbes)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// ParseLevel maps debug|info|warn|error|off to a gommon log level.
func ParseLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG, nil
	case "info", "":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
