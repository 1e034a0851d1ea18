package beach

import "beach-weather/internal/core"

// Parameters reports the tunables and live session telemetry grouped for the
// debug panel.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	wx := w.weather
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("cells_x", "Cells X", w.cfg.CellsX),
				core.IntParam("cells_y", "Cells Y", w.cfg.CellsY),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
				core.FloatParam("particle_move_rate", "Settling passes/s", p.ParticleMoveRate),
			},
		},
		{
			Name: "Sun",
			Params: []core.Parameter{
				core.FloatParam("sunburn_event_rate", "Sunburn events/s", p.SunburnEventRate),
				core.FloatParam("sunburn_time", "Burn time", p.SunburnTime),
				core.IntParam("sunburn_quota", "Cells per event", p.SunburnQuota),
			},
		},
		{
			Name: "Rain",
			Params: []core.Parameter{
				core.FloatParam("time_to_rain", "Time to rain", p.TimeToRain),
				core.FloatParam("rain_rate", "Drops/s", p.RainRate),
				core.FloatParam("rain_fall_speed", "Fall speed", p.RainFallSpeed),
			},
		},
		{
			Name: "Wind",
			Params: []core.Parameter{
				core.FloatParam("wind_event_rate", "Gusts/s", p.WindEventRate),
				core.FloatParam("wind_event_duration", "Gust duration", p.WindEventDuration),
				core.FloatParam("wind_speed", "Speed", p.WindSpeed),
				core.FloatParam("wind_gust_scale", "Gust scale", p.WindGustScale),
				core.FloatParam("wind_wood_push_rate", "Wood push/s", p.WindWoodPushRate),
			},
		},
		{
			Name: "Tide",
			Params: []core.Parameter{
				core.FloatParam("time_to_tide", "Time to tide", p.TimeToTide),
				core.FloatParam("tide_display_time", "Banner time", p.TideDisplayTime),
				core.FloatParam("sea_rise_rate", "Rise rate", p.SeaRiseRate),
			},
		},
		{
			Name:    "Session",
			Summary: w.state.String(),
			Params: []core.Parameter{
				core.FloatParam("clock", "Clock", w.clock),
				core.FloatParam("sea_level", "Sea level", wx.SeaLevel),
				core.BoolParam("raining", "Raining", wx.Raining),
				core.BoolParam("wind", "Wind", wx.Wind),
				core.FloatParam("wind_velocity", "Wind velocity", wx.WindVelocity),
				core.IntParam("burning", "Burning cells", len(w.burns)),
				core.IntParam("particles", "Particles", w.particles.Count()),
				core.IntParam("loose_ladders", "Loose ladders", len(w.structures.Loose)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
