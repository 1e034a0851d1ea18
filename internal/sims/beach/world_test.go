package beach

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldStartsOnMenu(t *testing.T) {
	w := New(4, 3)
	assert.Equal(t, Menu, w.State())
	assert.Equal(t, "beach", w.Name())
	assert.Equal(t, 4*CellWidth, w.Size().W)
	assert.Equal(t, 3*CellHeight, w.Size().H)
	assert.Len(t, w.Cells(), 4*CellWidth*3*CellHeight)

	layout := w.Layout()
	assert.Equal(t, CellsOffset+4*CellWidth, layout.ScreenWidth())
	assert.Equal(t, 4*CellHeight, layout.ScreenHeight())
	assert.Equal(t, 3*CellHeight+CrenelHeight, w.SeaPixel())
}

func TestSanitizedConfigKeepsWorldPlayable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellsX = 0
	cfg.CellsY = 1
	cfg.Params.SunburnQuota = -2
	cfg.Params.WindGustScale = 3
	w := NewWithConfig(cfg)
	got := w.Config()
	assert.Equal(t, DefaultCellsX, got.CellsX)
	assert.Equal(t, DefaultCellsY, got.CellsY)
	assert.Zero(t, got.Params.SunburnQuota)
	assert.Equal(t, 1.0, got.Params.WindGustScale)
}

func TestSameSeedSameSession(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellsX = 4
	cfg.CellsY = 4
	cfg.Params.TimeToRain = 1
	cfg.Params.WindEventRate = 1
	script := []Input{
		{GetSand: true}, {Dump: true}, {Right: true}, {Right: true}, {GetWater: true},
		{GetSand: true}, {Dump: true}, {Left: true}, {}, {ToggleWind: true},
	}
	run := func() ([]uint8, []Raindrop, Weather) {
		w := NewWithConfig(cfg)
		w.Start()
		for i := 0; i < 300; i++ {
			w.Step(frame, script[i%len(script)])
		}
		v := w.View()
		return v.Particles, v.Drops, v.Weather
	}
	p1, d1, w1 := run()
	p2, d2, w2 := run()
	assert.Equal(t, p1, p2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, w1, w2)
}

func TestStepConservesParticlesWithoutActions(t *testing.T) {
	cfg := calmConfig(4, 4)
	cfg.Params.WindEventRate = 1
	w := startedWorld(t, cfg)
	w.particles.fillRect(10, 20, 60, 30, func(Particle) Particle { return DrySand })
	w.particles.fillRect(70, 10, 20, 40, func(Particle) Particle { return DampSand })
	before := w.particles.Count()

	w.stepN(240, Input{})
	assert.Equal(t, before, w.particles.Count())
	assert.Positive(t, w.Stats().Passes)
}

func TestTideWetsSandAtTheWaterline(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.particles.fillRect(0, 80, w.layout.ParticlesX(), 16, func(Particle) Particle { return DrySand })
	w.weather.SeaLevel = 0.75
	seaPx := w.SeaPixel()
	require.Equal(t, 96, seaPx)

	w.Step(frame, Input{})
	for y := 80; y < 96; y++ {
		for x := 0; x < w.layout.ParticlesX(); x++ {
			want := DrySand
			if y >= seaPx-CrenelHeight {
				want = DampSand
			}
			require.Equal(t, want, w.particles.At(x, y), "particle (%d,%d)", x, y)
		}
	}
}

func TestToggles(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.Step(frame, Input{ToggleRain: true, ToggleTide: true, ToggleDebug: true})
	v := w.View()
	assert.True(t, v.Weather.Raining)
	assert.True(t, v.Weather.SeaRising)
	assert.True(t, v.Debug)

	w.Step(frame, Input{ToggleWind: true})
	assert.True(t, w.weather.Wind)
	assert.NotZero(t, w.weather.WindVelocity)
	w.Step(frame, Input{ToggleWind: true, ToggleDebug: true})
	assert.False(t, w.weather.Wind)
	assert.False(t, w.View().Debug)
}

func TestViewIsACopy(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.buildDamp(1, 2)
	w.structures.Place(1, 2)
	v := w.View()
	v.Particles[0] = uint8(DampSand)
	v.Cells[0] = FullDry
	v.Ladders[0].CX = 2
	assert.Equal(t, Empty, w.particles.At(0, 0))
	assert.Equal(t, NonFull, w.cells.At(0, 0))
	assert.True(t, w.structures.HasLadder(1, 2))
	assert.Equal(t, FullDamp, v.Cell(1, 2))
	assert.Equal(t, NonFull, v.Cell(5, 5))
}

func TestSessionEventsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithConfig(calmConfig(3, 3))
	w.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	w.Step(frame, Input{Confirm: true})
	w.weather.SeaLevel = 0.1
	w.Step(frame, Input{})
	out := buf.String()
	assert.Contains(t, out, "to=normal")
	assert.Contains(t, out, "to=drowning")

	w.SetLogger(nil)
	w.Step(frame, Input{Confirm: true})
	assert.NotContains(t, buf.String(), "to=menu")
}

func TestParametersSnapshot(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	snap := w.Parameters()
	require.NotEmpty(t, snap.Groups)

	p, ok := snap.Lookup("sunburn_quota")
	require.True(t, ok)
	assert.Equal(t, "5", p.Value)

	p, ok = snap.Lookup("particles")
	require.True(t, ok)
	assert.Equal(t, "0", p.Value)

	names := make([]string, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, "World,Sun,Rain,Wind,Tide,Session", strings.Join(names, ","))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beach.yaml")
	data := "cells_x: 5\nseed: 42\nparams:\n  sunburn_time: 2.5\n  time_to_tide: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.CellsX)
	assert.Equal(t, DefaultCellsY, cfg.CellsY)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2.5, cfg.Params.SunburnTime)
	assert.Equal(t, 10.0, cfg.Params.TimeToTide)
	assert.Equal(t, DefaultConfig().Params.RainRate, cfg.Params.RainRate)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cells_x: [1, 2"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"cells_x":         "6",
		"cells_y":         "1",
		"seed":            "9",
		"sunburn_quota":   "2",
		"wind_speed":      "0.5",
		"sea_rise_rate":   "-1",
		"time_to_rain":    "oops",
		"wind_gust_scale": "0.1",
	})
	d := DefaultConfig()
	assert.Equal(t, 6, cfg.CellsX)
	assert.Equal(t, d.CellsY, cfg.CellsY)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 2, cfg.Params.SunburnQuota)
	assert.Equal(t, 0.5, cfg.Params.WindSpeed)
	assert.Equal(t, d.Params.SeaRiseRate, cfg.Params.SeaRiseRate)
	assert.Equal(t, d.Params.TimeToRain, cfg.Params.TimeToRain)
	assert.Equal(t, 0.1, cfg.Params.WindGustScale)
	assert.Equal(t, d, FromMap(nil))
}

func TestConfigRejectsNonFiniteAndNegativeRates(t *testing.T) {
	d := DefaultConfig()
	cfg := FromMap(map[string]string{
		"particle_move_rate": "inf",
		"rain_rate":          "NaN",
		"sea_rise_rate":      "-0.5",
		"wind_speed":         "0.75",
	})
	assert.Equal(t, d.Params.ParticleMoveRate, cfg.Params.ParticleMoveRate)
	assert.Equal(t, d.Params.RainRate, cfg.Params.RainRate)
	assert.Equal(t, d.Params.SeaRiseRate, cfg.Params.SeaRiseRate)
	assert.Equal(t, 0.75, cfg.Params.WindSpeed)

	path := filepath.Join(t.TempDir(), "beach.yaml")
	data := "params:\n  particle_move_rate: .inf\n  sunburn_event_rate: .nan\n  sea_rise_rate: -0.01\n  time_to_tide: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, d.Params.ParticleMoveRate, loaded.Params.ParticleMoveRate)
	assert.Equal(t, d.Params.SunburnEventRate, loaded.Params.SunburnEventRate)
	assert.Equal(t, d.Params.SeaRiseRate, loaded.Params.SeaRiseRate)
	assert.Zero(t, loaded.Params.TimeToTide)

	world := startedWorld(t, loaded)
	level := world.weather.SeaLevel
	world.stepN(60, Input{})
	assert.Less(t, world.weather.SeaLevel, level, "the sea should rise at the default rate")
}
