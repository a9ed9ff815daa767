package grapple

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Console variables the grapple reads or forces.
const (
	CvarRoundRestartDelay = "mp_round_restart_delay"
	CvarPingCooldown      = "player_ping_token_cooldown"
)

// Config is the grapple tuning plus the host shell settings.
type Config struct {
	Speed           float32       `yaml:"speed"`
	ArrivalDistance float32       `yaml:"arrival_distance"`
	StrafeFactor    float32       `yaml:"strafe_factor"`
	MaxAimDeviation float32       `yaml:"max_aim_deviation"`
	RoundEndMargin  time.Duration `yaml:"round_end_margin"`

	WireColor RGBA    `yaml:"wire_color"`
	WireWidth float32 `yaml:"wire_width"`

	TickRate  int    `yaml:"tick_rate"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // text or json
}

// RGBA is a yaml-friendly colour.
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

var LimeGreen = RGBA{R: 50, G: 205, B: 50, A: 255}

func (c RGBA) Color() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

func DefaultConfig() Config {
	return Config{
		Speed:           500,
		ArrivalDistance: 100,
		StrafeFactor:    0.5,
		MaxAimDeviation: 180,
		RoundEndMargin:  100 * time.Millisecond,
		WireColor:       LimeGreen,
		WireWidth:       1.5,
		TickRate:        64,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// LoadConfig reads path over the defaults, then applies .env and GRAPPLE_*
// environment overrides. An empty path or a missing file leaves the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	floats := map[string]*float32{
		"GRAPPLE_SPEED":             &c.Speed,
		"GRAPPLE_ARRIVAL_DISTANCE":  &c.ArrivalDistance,
		"GRAPPLE_STRAFE_FACTOR":     &c.StrafeFactor,
		"GRAPPLE_MAX_AIM_DEVIATION": &c.MaxAimDeviation,
		"GRAPPLE_WIRE_WIDTH":        &c.WireWidth,
	}
	for key, dst := range floats {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		f, err := cast.ToFloat32E(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = f
	}

	if v, ok := os.LookupEnv("GRAPPLE_ROUND_END_MARGIN"); ok {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return fmt.Errorf("GRAPPLE_ROUND_END_MARGIN: %w", err)
		}
		c.RoundEndMargin = d
	}
	if v, ok := os.LookupEnv("GRAPPLE_TICK_RATE"); ok {
		n, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("GRAPPLE_TICK_RATE: %w", err)
		}
		c.TickRate = n
	}
	if v, ok := os.LookupEnv("GRAPPLE_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("GRAPPLE_LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Speed <= 0:
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	case c.ArrivalDistance <= 0:
		return fmt.Errorf("arrival_distance must be positive, got %v", c.ArrivalDistance)
	case c.MaxAimDeviation <= 0 || c.MaxAimDeviation > 180:
		return fmt.Errorf("max_aim_deviation must be in (0, 180], got %v", c.MaxAimDeviation)
	case c.TickRate <= 0:
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	case c.RoundEndMargin < 0:
		return fmt.Errorf("round_end_margin must not be negative, got %v", c.RoundEndMargin)
	}
	return nil
}

// Pull builds the sweep tuning. newWire allocates wire handles.
func (c Config) Pull(newWire func() WireID) Pull {
	return Pull{
		Speed:           c.Speed,
		ArrivalDistance: c.ArrivalDistance,
		StrafeFactor:    c.StrafeFactor,
		MaxAimDeviation: c.MaxAimDeviation,
		WireColor:       c.WireColor.Color(),
		WireWidth:       c.WireWidth,
		NewWire:         newWire,
	}
}

// TickInterval is the wall-clock period of one simulation step.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
