package app

import (
	"flag"
	"fmt"
	"log/slog"

	"beach-weather/internal/sims/beach"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Scale int
	TPS   int
	// Seed overrides the config file seed when non-zero.
	Seed       int64
	ConfigPath string
	Debug      bool
	// Panel is the tuning panel width in logical pixels; zero hides it.
	Panel int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 3, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for new sessions (0 keeps the config seed)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML tuning file")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log debug events")
	fs.IntVar(&c.Panel, "panel", c.Panel, "tuning panel width in pixels (0 disables)")
}

// WorldConfig resolves the simulation config: defaults, then the tuning
// file, then the seed flag.
func (c *Config) WorldConfig() (beach.Config, error) {
	cfg := beach.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := beach.LoadConfig(c.ConfigPath)
		if err != nil {
			return beach.Config{}, fmt.Errorf("app: %w", err)
		}
		cfg = loaded
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	return cfg, nil
}

// LogLevel returns the slog level selected by the debug flag.
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Tick returns the simulation step for one update.
func (c *Config) Tick() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TPS)
}
