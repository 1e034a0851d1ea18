package beach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIntent(t *testing.T) {
	all := PlayerContext{CanGetSand: true, CanGetWater: true, CanGetWood: true, CanDump: true}
	cases := []struct {
		name   string
		ctx    PlayerContext
		bucket Bucket
		in     Input
		want   Action
	}{
		{"nothing pressed", all, BucketEmpty, Input{}, Idle},
		{"sand into empty bucket", all, BucketEmpty, Input{GetSand: true}, GettingSand},
		{"sand into water", all, BucketWater, Input{GetSand: true}, GettingDampSand},
		{"water into sand", all, BucketSand, Input{GetWater: true}, GettingDampSand},
		{"water into wood", all, BucketWood, Input{GetWater: true}, GettingWater},
		{"wood", all, BucketSand, Input{GetWood: true}, GettingWood},
		{"pour sand", all, BucketSand, Input{Dump: true}, PouringSand},
		{"pour water", all, BucketWater, Input{Dump: true}, PouringWater},
		{"pour damp sand", all, BucketDampSand, Input{Dump: true}, PouringDampSand},
		{"set ladder", all, BucketWood, Input{Dump: true}, SettingLadder},
		{"dump empty bucket", all, BucketEmpty, Input{Dump: true}, Idle},
		{"later key wins", all, BucketEmpty, Input{GetSand: true, GetWood: true}, GettingWood},
		{"dump wins over get", all, BucketSand, Input{GetWater: true, Dump: true}, PouringSand},
		{"no water nearby", PlayerContext{CanGetSand: true}, BucketEmpty, Input{GetWater: true}, Idle},
		{"falling blocks sand", PlayerContext{}, BucketEmpty, Input{GetSand: true}, Idle},
		{"gated dump falls back", PlayerContext{CanGetSand: true}, BucketSand, Input{GetSand: true, Dump: true}, GettingSand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveIntent(tc.ctx, tc.bucket, tc.in))
		})
	}
}

func TestPlayerDrowns(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.player.Bucket = BucketSand
	top := w.player.Y - PlayerHeight + 1
	w.weather.SeaLevel = top / float64(w.layout.ScreenHeight())
	w.Step(frame, Input{})
	require.Equal(t, Drowning, w.State())

	x := w.player.X
	w.stepN(10, Input{Left: true, GetWater: true, Dump: true})
	assert.Equal(t, x, w.player.X, "input is ignored while drowning")
	assert.Equal(t, BucketSand, w.player.Bucket)
	assert.Greater(t, w.player.Y, top+PlayerHeight-1, "the player sinks")
	assert.Equal(t, Idle, w.View().Player.Action)

	w.Step(frame, Input{Confirm: true})
	assert.Equal(t, Menu, w.State())
	w.Step(frame, Input{Confirm: true})
	assert.Equal(t, Normal, w.State())
	assert.Equal(t, BucketEmpty, w.player.Bucket, "a fresh session starts empty-handed")
}

func TestMenuIgnoresEverythingButConfirm(t *testing.T) {
	w := NewWithConfig(calmConfig(3, 3))
	require.Equal(t, Menu, w.State())
	x := w.player.X
	w.stepN(30, Input{Right: true, ToggleRain: true})
	assert.Equal(t, Menu, w.State())
	assert.Equal(t, x, w.player.X)
	assert.False(t, w.weather.Raining)
	w.Step(frame, Input{Confirm: true})
	assert.Equal(t, Normal, w.State())
}

func TestPlayerWalksAndIsClamped(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	x := w.player.X
	w.stepN(30, Input{Right: true})
	assert.InDelta(t, x+PlayerSpeedX*30*frame, w.player.X, 1e-6)

	w.stepN(600, Input{Left: true})
	assert.Equal(t, -float64(PlayerWidth)/2, w.player.X)
	w.stepN(600, Input{Right: true})
	assert.Equal(t, float64(w.layout.ScreenWidth()-PlayerWidth), w.player.X)

	y := w.player.Y
	w.stepN(30, Input{Up: true})
	assert.Equal(t, y, w.player.Y, "no ladder, no climbing")
}

func TestPouringBuildsCells(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	// Damp neighbours keep the dry cell from slumping at its edges.
	w.buildDamp(0, 2)
	w.buildDamp(2, 2)
	w.Step(frame, Input{GetSand: true})
	require.Equal(t, BucketSand, w.player.Bucket)
	assert.Equal(t, GettingSand, w.View().Player.Action)

	w.Step(frame, Input{Dump: true})
	assert.Equal(t, BucketEmpty, w.player.Bucket)
	assert.Equal(t, FullDry, w.cells.At(1, 2))
	assert.Equal(t, 3*CellWidth*CellHeight, w.particles.Count())

	w.Step(frame, Input{GetSand: true})
	w.Step(frame, Input{Dump: true})
	assert.Equal(t, BucketSand, w.player.Bucket, "a full cell refuses more sand")
	assert.False(t, w.ctx.CanDump)

	w.player.Bucket = BucketWater
	w.Step(frame, Input{Dump: true})
	assert.Equal(t, BucketEmpty, w.player.Bucket)
	assert.Equal(t, FullDamp, w.cells.At(1, 2))
	dry, damp := w.particles.Census()
	assert.Zero(t, dry)
	assert.Equal(t, 3*CellWidth*CellHeight, damp)
}

func TestPouringDampSand(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.buildDamp(0, 2)
	w.buildDamp(2, 2)
	w.player.Bucket = BucketDampSand
	w.Step(frame, Input{Dump: true})
	assert.Equal(t, BucketEmpty, w.player.Bucket)
	assert.Equal(t, FullDamp, w.cells.At(1, 2))

	w.player.Bucket = BucketDampSand
	w.Step(frame, Input{Dump: true})
	assert.Equal(t, BucketDampSand, w.player.Bucket, "a damp cell refuses damp sand")
}

func TestGettingWaterNeedsTheSea(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.Step(frame, Input{GetWater: true})
	require.True(t, w.ctx.NearWater, "the beach floor is at the water's edge")
	assert.Equal(t, BucketWater, w.player.Bucket)

	w.Step(frame, Input{GetSand: true})
	assert.Equal(t, BucketDampSand, w.player.Bucket)

	w.buildDampRow(2)
	w.player.Bucket = BucketEmpty
	w.player.Y = 2*CellHeight - 1
	w.Step(frame, Input{GetWater: true})
	assert.False(t, w.ctx.NearWater)
	assert.False(t, w.ctx.Falling)
	assert.Equal(t, BucketEmpty, w.player.Bucket)
}

func TestWoodFromTreeAndLadders(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.player.X = 0
	w.Step(frame, Input{})
	require.True(t, w.ctx.NearTree)
	require.False(t, w.ctx.InBounds)

	w.Step(frame, Input{GetWood: true})
	require.Equal(t, BucketWood, w.player.Bucket)
	assert.Empty(t, w.structures.Loose, "the tree is an unlimited source")

	// Swapping wood for sand drops the wood as a loose ladder.
	w.player.X = 60
	w.Step(frame, Input{GetSand: true})
	assert.Equal(t, BucketSand, w.player.Bucket)
	require.Len(t, w.structures.Loose, 1)

	w.stepN(30, Input{})
	require.False(t, w.ctx.NearTree)
	require.GreaterOrEqual(t, w.ctx.NearLoose, 0)
	w.Step(frame, Input{GetWood: true})
	assert.Equal(t, BucketWood, w.player.Bucket)
	assert.Empty(t, w.structures.Loose, "picking up a loose ladder removes it")
}

func TestSettingLadders(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.player.Bucket = BucketWood
	w.Step(frame, Input{Dump: true})
	assert.Equal(t, BucketEmpty, w.player.Bucket)
	assert.Empty(t, w.structures.Ladders)
	assert.Len(t, w.structures.Loose, 1, "wood set on an open cell falls loose")

	w.structures.Clear()
	w.buildDampRow(2)
	w.player.Bucket = BucketWood
	w.Step(frame, Input{Dump: true})
	assert.Equal(t, []Ladder{{CX: 1, CY: 2}}, w.structures.Ladders)
	assert.Empty(t, w.structures.Loose)
	assert.True(t, w.ctx.NearUpLadder)

	w.player.Bucket = BucketWood
	w.Step(frame, Input{Dump: true})
	assert.Len(t, w.structures.Ladders, 1)
	assert.Len(t, w.structures.Loose, 1, "a second ladder on the same cell falls loose")
}

func TestClimbingOntoCastle(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.buildDampRow(2)
	w.structures.Place(1, 2)
	w.Step(frame, Input{})
	require.True(t, w.ctx.NearUpLadder)

	w.stepN(90, Input{Up: true})
	w.stepN(10, Input{})

	ctx := w.View().Context
	assert.Equal(t, 1, ctx.CY)
	assert.True(t, ctx.OnCellFloor)
	assert.False(t, ctx.Falling)
	assert.True(t, ctx.NearDownLadder)
	assert.GreaterOrEqual(t, w.player.Y, 63.0)
	assert.Less(t, w.player.Y, 64.0)

	w.stepN(60, Input{Down: true})
	assert.Equal(t, 2, w.ctx.CY, "the ladder leads back down")
}

func TestFallingPlayerLandsOnCastle(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.buildDampRow(2)
	w.player.Y = CellHeight + 2
	w.Step(frame, Input{})
	require.True(t, w.ctx.Falling)
	require.False(t, w.ctx.CanGetSand)

	w.stepN(30, Input{})
	assert.False(t, w.ctx.Falling)
	assert.Equal(t, float64(2*CellHeight-1), w.player.Y)
}

func TestWinningAndRestart(t *testing.T) {
	w := startedWorld(t, calmConfig(3, 3))
	w.buildDampRow(2)
	w.buildDampRow(1)
	w.player.Y = CellHeight - 1
	w.Step(frame, Input{})
	require.Equal(t, Won, w.State())

	w.Step(frame, Input{GetSand: true})
	assert.Equal(t, BucketEmpty, w.player.Bucket)
	w.Step(frame, Input{Confirm: true})
	assert.Equal(t, Menu, w.State())
}
