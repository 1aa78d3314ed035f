// Package config loads the arena simulator's runtime settings from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Log     LogConfig     `toml:"log"`
	Prefabs PrefabsConfig `toml:"prefabs"`
	Metrics MetricsConfig `toml:"metrics"`
}

type SimConfig struct {
	TickRate int   `toml:"tick_rate"` // ticks per second
	MaxTicks int   `toml:"max_ticks"` // 0 runs until a side is down or a signal arrives
	Seed     int64 `toml:"seed"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "text"
}

type PrefabsConfig struct {
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

type MetricsConfig struct {
	Addr string `toml:"addr"` // empty disables the /metrics listener
}

// TickInterval is the wall time of one tick.
func (c SimConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func Default() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate: 20,
			MaxTicks: 6000,
			Seed:     1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Prefabs: PrefabsConfig{
			Dir: "prefabs",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data into cfg and validates the result. Unknown keys are
// errors.
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Sim.TickRate <= 0 || c.Sim.TickRate > 1000 {
		errs = append(errs, fmt.Errorf("sim.tick_rate %d must be in 1..1000", c.Sim.TickRate))
	}
	if c.Sim.MaxTicks < 0 {
		errs = append(errs, fmt.Errorf("sim.max_ticks %d must not be negative", c.Sim.MaxTicks))
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not a log level", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be json or text", c.Log.Format))
	}
	if c.Prefabs.Watch && c.Prefabs.Dir == "" {
		errs = append(errs, errors.New("prefabs.watch needs prefabs.dir"))
	}
	return errors.Join(errs...)
}
