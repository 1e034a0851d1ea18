package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	require.Len(t, g.Cells(), 6)

	g.Set(2, 1, 7)
	assert.Equal(t, uint8(7), g.At(2, 1))
	assert.Equal(t, uint8(7), g.Cells()[g.Index(2, 1)])

	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)
	assert.Equal(t, uint8(0), g.At(3, 0))
	assert.Equal(t, uint8(0), g.At(0, -1))
	assert.Equal(t, 1, g.Count())

	g.Swap(2, 1, 0, 0)
	assert.Equal(t, uint8(7), g.At(0, 0))
	assert.Equal(t, uint8(0), g.At(2, 1))

	g.Clear()
	assert.Zero(t, g.Count())

	tiny := NewByteGrid(0, -4)
	assert.Equal(t, 1, tiny.W)
	assert.Equal(t, 1, tiny.H)
}

func TestRateAccumulatorFiresPerWholeUnit(t *testing.T) {
	a := NewRateAccumulator(4)
	assert.Equal(t, 0, a.Tick(0.125))
	assert.Equal(t, 1, a.Tick(0.125))
	assert.Equal(t, 3, a.Tick(0.875))
	assert.InDelta(t, 0.5, a.Charge, 1e-9)

	total := 0
	for i := 0; i < 600; i++ {
		total += a.Tick(1.0 / 60.0)
	}
	assert.InDelta(t, 40, total, 1)

	a.Reset()
	assert.Zero(t, a.Charge)
	assert.Equal(t, 0, a.Tick(-1))

	off := NewRateAccumulator(0)
	assert.Equal(t, 0, off.Tick(100))
}

func TestRateAccumulatorIgnoresNonFiniteRates(t *testing.T) {
	for _, rate := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		a := NewRateAccumulator(rate)
		assert.Equal(t, 0, a.Tick(1.0/60.0), "rate %v", rate)
		assert.Zero(t, a.Charge, "rate %v", rate)
	}

	fast := NewRateAccumulator(1e9)
	assert.Equal(t, 1000000000, fast.Tick(1))
	assert.Zero(t, fast.Charge)
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(10)
	assert.InDelta(t, 0.1, fs.Step(), 1e-9)

	now := time.Unix(1000, 0)
	require.True(t, fs.shouldStepAt(now), "the first call always steps")
	assert.False(t, fs.shouldStepAt(now.Add(50*time.Millisecond)))
	assert.True(t, fs.shouldStepAt(now.Add(100*time.Millisecond)))
	assert.False(t, fs.shouldStepAt(now.Add(150*time.Millisecond)))

	fs.SetTPS(0)
	assert.InDelta(t, 1.0/60.0, fs.Step(), 1e-6)
}

func TestRNGIsDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
		s := a.Sign()
		require.Equal(t, s, b.Sign())
		require.Contains(t, []int{-1, 1}, s)
		n := a.IntN(5)
		require.Equal(t, n, b.IntN(5))
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 5)
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("n", "N", 3), BoolParam("on", "On", true)}},
		{Name: "B", Params: []Parameter{FloatParam("rate", "Rate", 0.25), Int64Param("seed", "Seed", -9)}},
	}}
	p, ok := snap.Lookup("rate")
	require.True(t, ok)
	assert.Equal(t, "0.25", p.Value)
	assert.Equal(t, ParamTypeFloat, p.Type)

	p, ok = snap.Lookup("on")
	require.True(t, ok)
	assert.Equal(t, "true", p.Value)

	p, _ = snap.Lookup("seed")
	assert.Equal(t, "-9", p.Value)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}
