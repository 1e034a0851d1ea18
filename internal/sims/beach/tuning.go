package beach

import "beach-weather/internal/core"

// ParameterControls lists the tunables the side panel can adjust while a
// session runs.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "sunburn_event_rate", Label: "Sunburn/s", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "sunburn_time", Label: "Burn time", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 30, HasMin: true, HasMax: true},
		{Key: "sunburn_quota", Label: "Burn quota", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 20, HasMin: true, HasMax: true},
		{Key: "rain_rate", Label: "Drops/s", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "wind_event_rate", Label: "Gusts/s", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: "wind_event_duration", Label: "Gust time", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 20, HasMin: true, HasMax: true},
		{Key: "wind_speed", Label: "Wind speed", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 4, HasMin: true, HasMax: true},
		{Key: "wind_gust_scale", Label: "Gust scale", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "sea_rise_rate", Label: "Sea rise", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 0.05, HasMin: true, HasMax: true},
		{Key: "particle_move_rate", Label: "Passes/s", Type: core.ParamTypeFloat, Step: 10, Min: 10, Max: 240, HasMin: true, HasMax: true},
	}
}

func (w *World) control(key string) (core.ParameterControl, bool) {
	for _, c := range w.ParameterControls() {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

func clampControl(c core.ParameterControl, v float64) float64 {
	if c.HasMin && v < c.Min {
		return c.Min
	}
	if c.HasMax && v > c.Max {
		return c.Max
	}
	return v
}

// SetIntParameter updates an integer tunable, clamped to its control range.
func (w *World) SetIntParameter(key string, value int) bool {
	c, ok := w.control(key)
	if !ok || c.Type != core.ParamTypeInt {
		return false
	}
	value = int(clampControl(c, float64(value)))
	switch key {
	case "sunburn_quota":
		w.cfg.Params.SunburnQuota = value
	default:
		return false
	}
	w.log.Debug("parameter set", "key", key, "value", value)
	return true
}

// SetFloatParameter updates a float tunable, clamped to its control range.
// Rates take effect on the next tick without dropping charge already banked.
func (w *World) SetFloatParameter(key string, value float64) bool {
	c, ok := w.control(key)
	if !ok || c.Type != core.ParamTypeFloat {
		return false
	}
	value = clampControl(c, value)
	p := &w.cfg.Params
	h := &w.hazards
	switch key {
	case "sunburn_event_rate":
		p.SunburnEventRate = value
		h.sunburn.Rate = value
	case "sunburn_time":
		p.SunburnTime = value
	case "rain_rate":
		p.RainRate = value
		h.rainSpawn.Rate = value
	case "wind_event_rate":
		p.WindEventRate = value
		h.windOn.Rate = value
	case "wind_event_duration":
		p.WindEventDuration = value
	case "wind_speed":
		p.WindSpeed = value
	case "wind_gust_scale":
		p.WindGustScale = value
	case "sea_rise_rate":
		p.SeaRiseRate = value
	case "particle_move_rate":
		p.ParticleMoveRate = value
		h.moves.Rate = value
	default:
		return false
	}
	w.log.Debug("parameter set", "key", key, "value", value)
	return true
}
