package beach

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the hazard timings and simulation rates. Rates are events per
// second, times are seconds, sea and rain quantities are normalized screen
// units.
type Params struct {
	SunburnEventRate float64 `yaml:"sunburn_event_rate"`
	SunburnTime      float64 `yaml:"sunburn_time"`
	SunburnQuota     int     `yaml:"sunburn_quota"`

	TimeToRain    float64 `yaml:"time_to_rain"`
	RainRate      float64 `yaml:"rain_rate"`
	RainFallSpeed float64 `yaml:"rain_fall_speed"`

	WindEventRate     float64 `yaml:"wind_event_rate"`
	WindEventDuration float64 `yaml:"wind_event_duration"`
	WindSpeed         float64 `yaml:"wind_speed"`
	WindGustScale     float64 `yaml:"wind_gust_scale"`
	WindWoodPushRate  float64 `yaml:"wind_wood_push_rate"`

	TimeToTide      float64 `yaml:"time_to_tide"`
	TideDisplayTime float64 `yaml:"tide_display_time"`
	SeaRiseRate     float64 `yaml:"sea_rise_rate"`

	// ParticleMoveRate is the number of settling passes per second. Particle
	// fall speed is inversely proportional to particle size, hence the
	// scaling by cell height.
	ParticleMoveRate float64 `yaml:"particle_move_rate"`
}

// Config controls the Beach simulation dimensions and tunables.
type Config struct {
	CellsX int   `yaml:"cells_x"`
	CellsY int   `yaml:"cells_y"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellsX: DefaultCellsX,
		CellsY: DefaultCellsY,
		Seed:   1337,
		Params: Params{
			SunburnEventRate:  1.0 / 30.0,
			SunburnTime:       5,
			SunburnQuota:      5,
			TimeToRain:        15,
			RainRate:          50,
			RainFallSpeed:     2,
			WindEventRate:     1.0 / 10.0,
			WindEventDuration: 4,
			WindSpeed:         1,
			WindGustScale:     0.25,
			WindWoodPushRate:  1.0 / 0.3,
			TimeToTide:        40,
			TideDisplayTime:   5,
			SeaRiseRate:       1.0 / 300.0,
			ParticleMoveRate:  40.0 * CellHeight / 16,
		},
	}
}

// Layout returns the geometry implied by the configured cell counts.
func (c Config) Layout() Layout {
	return Layout{CellsX: c.CellsX, CellsY: c.CellsY}
}

// LoadConfig reads a YAML tuning file over the defaults. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read beach config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse beach config %s: %w", path, err)
	}
	return c.sanitized(), nil
}

func (c Config) sanitized() Config {
	d := DefaultConfig()
	if c.CellsX <= 0 {
		c.CellsX = d.CellsX
	}
	// The player needs a row to stand on below the winning row.
	if c.CellsY < 2 {
		c.CellsY = d.CellsY
	}
	if c.Params.SunburnQuota < 0 {
		c.Params.SunburnQuota = 0
	}
	defaults := d.Params.floats()
	for key, v := range c.Params.floats() {
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
			*v = *defaults[key]
		}
	}
	if c.Params.WindGustScale > 1 {
		c.Params.WindGustScale = 1
	}
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cells_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellsX = parsed
		}
	}
	if v, ok := cfg["cells_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 1 {
			c.CellsY = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["sunburn_quota"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SunburnQuota = parsed
		}
	}
	for key, dst := range c.Params.floats() {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
	return c.sanitized()
}

// floats maps each float tunable's key to its field.
func (p *Params) floats() map[string]*float64 {
	return map[string]*float64{
		"sunburn_event_rate":  &p.SunburnEventRate,
		"sunburn_time":        &p.SunburnTime,
		"time_to_rain":        &p.TimeToRain,
		"rain_rate":           &p.RainRate,
		"rain_fall_speed":     &p.RainFallSpeed,
		"wind_event_rate":     &p.WindEventRate,
		"wind_event_duration": &p.WindEventDuration,
		"wind_speed":          &p.WindSpeed,
		"wind_gust_scale":     &p.WindGustScale,
		"wind_wood_push_rate": &p.WindWoodPushRate,
		"time_to_tide":        &p.TimeToTide,
		"tide_display_time":   &p.TideDisplayTime,
		"sea_rise_rate":       &p.SeaRiseRate,
		"particle_move_rate":  &p.ParticleMoveRate,
	}
}
