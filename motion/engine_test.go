package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/physics"
	"github.com/lixenwraith/drift-clock/vmath"
)

var (
	viewport800 = core.Size2{Width: 800, Height: 600}
	clock200    = core.Size2{Width: 200, Height: 100}
)

func TestNew_Defaults(t *testing.T) {
	e := New(Config{Speed: 0.5}, nil)

	_, ok := e.Position()
	assert.False(t, ok, "position unset before first advance")
	assert.Equal(t, core.Vector2{DX: 1, DY: 1}, e.Direction())
	assert.Equal(t, core.Vector2{DX: 5, DY: 5}, e.Velocity())
	assert.Equal(t, DefaultColor, e.Color())
	assert.Equal(t, PolicyHue, e.Policy().Name())
	assert.Zero(t, e.Bans().Len())
}

func TestAdvance_UnmeasuredFreezesAtCenter(t *testing.T) {
	policy := &countingPolicy{}
	e := New(Config{Speed: 1, Policy: policy}, nil)
	e.SetVelocity(core.Vector2{DX: -37, DY: 91})

	for i := 0; i < 10; i++ {
		snap := e.Advance(viewport800, 0, core.Size2{Width: 0, Height: 80})
		require.Equal(t, core.Point2{X: 400, Y: 300}, snap.Position)
		require.False(t, snap.Collided)
	}
	assert.Equal(t, core.Vector2{DX: -37, DY: 91}, e.Velocity(), "velocity untouched")
	assert.Zero(t, policy.picks, "no color change while unmeasured")

	// Reserved width shifts the usable center
	snap := e.Advance(viewport800, 200, core.Size2{})
	assert.Equal(t, core.Point2{X: 300, Y: 300}, snap.Position)
}

func TestAdvance_StartsFromCenter(t *testing.T) {
	e := New(Config{Speed: 0.5}, nil)
	snap := e.Advance(viewport800, 0, clock200)
	assert.Equal(t, core.Point2{X: 405, Y: 305}, snap.Position)
	assert.False(t, snap.Collided)
}

func TestAdvance_RightWallScenario(t *testing.T) {
	policy := &countingPolicy{}
	e := New(Config{Speed: 0.5, Policy: policy}, nil)
	e.Teleport(core.Point2{X: 695, Y: 300})
	e.SetVelocity(core.Vector2{DX: 12, DY: 0})
	before := e.Color()

	snap := e.Advance(viewport800, 0, clock200)

	assert.Equal(t, 700.0, snap.Position.X)
	assert.Equal(t, 300.0, snap.Position.Y)
	assert.Equal(t, -1.0, e.Direction().DX)
	assert.True(t, snap.Collided)
	assert.Equal(t, AxisX, snap.Axes)
	assert.Equal(t, 1, policy.picks)
	assert.NotEqual(t, before, snap.Color)
	// Velocity re-derived from heading and configured speed
	assert.Equal(t, core.Vector2{DX: -5, DY: 5}, e.Velocity())
}

func TestAdvance_LeftWallFlipsPositive(t *testing.T) {
	e := New(Config{Speed: 1}, nil)
	e.Teleport(core.Point2{X: 105, Y: 300})
	e.SetVelocity(core.Vector2{DX: -10, DY: 0})

	snap := e.Advance(viewport800, 0, clock200)
	assert.Equal(t, 100.0, snap.Position.X)
	assert.Equal(t, 1.0, e.Direction().DX)
	assert.True(t, snap.Collided)
}

func TestAdvance_CornerHitSingleColorChange(t *testing.T) {
	policy := &countingPolicy{}
	e := New(Config{Speed: 1, Policy: policy}, nil)
	e.Teleport(core.Point2{X: 695, Y: 545})

	snap := e.Advance(viewport800, 0, clock200)

	assert.Equal(t, core.Point2{X: 700, Y: 550}, snap.Position)
	assert.Equal(t, AxisX|AxisY, snap.Axes)
	assert.Equal(t, core.Vector2{DX: -1, DY: -1}, e.Direction())
	assert.Equal(t, 1, policy.picks)
}

func TestAdvance_AxesIndependent(t *testing.T) {
	e := New(Config{Speed: 1}, nil)
	e.Teleport(core.Point2{X: 400, Y: 545})

	snap := e.Advance(viewport800, 0, clock200)
	assert.Equal(t, AxisY, snap.Axes)
	assert.Equal(t, core.Vector2{DX: 1, DY: -1}, e.Direction())
	assert.Equal(t, 410.0, snap.Position.X)
}

func TestAdvance_ReservedWidthMovesRightWall(t *testing.T) {
	e := New(Config{Speed: 1}, nil)
	e.Teleport(core.Point2{X: 495, Y: 300})

	snap := e.Advance(viewport800, 300, clock200)
	// usable width 500, right wall at 400
	assert.Equal(t, 400.0, snap.Position.X)
	assert.True(t, snap.Collided)
}

func TestAdvance_ReservedWiderThanViewport(t *testing.T) {
	policy := &countingPolicy{}
	e := New(Config{Speed: 1, Policy: policy}, nil)

	for i := 0; i < 20; i++ {
		snap := e.Advance(viewport800, 1200, clock200)
		require.Equal(t, 100.0, snap.Position.X, "collapsed axis pins to center")
		require.False(t, math.IsNaN(snap.Position.Y))
	}
	assert.Zero(t, policy.picks, "collapsed axis never collides")
}

func TestAdvance_BoundaryContainment(t *testing.T) {
	rng := vmath.NewFastRand(2024)
	profiles := []physics.BoundsProfile{physics.BoundsExact, physics.BoundsPadded}

	for trial := 0; trial < 200; trial++ {
		profile := profiles[trial%len(profiles)]
		vp := core.Size2{Width: 50 + rng.Float64()*1500, Height: 50 + rng.Float64()*1000}
		clock := core.Size2{Width: 1 + rng.Float64()*400, Height: 1 + rng.Float64()*200}
		reserved := rng.Float64() * 400

		e := New(Config{Speed: rng.Float64(), Bounds: profile}, vmath.NewFastRand(uint64(trial)+1))
		e.SetVelocity(core.Vector2{DX: (rng.Float64() - 0.5) * 80, DY: (rng.Float64() - 0.5) * 80})

		usable := core.Size2{
			Width:  max(vp.Width-reserved, profile.MinLength(clock.Width)),
			Height: max(vp.Height, profile.MinLength(clock.Height)),
		}
		spanX := profile.SpanFor(usable.Width, clock.Width)
		spanY := profile.SpanFor(usable.Height, clock.Height)

		for tick := 0; tick < 300; tick++ {
			snap := e.Advance(vp, reserved, clock)
			require.GreaterOrEqual(t, snap.Position.X, spanX.Min, "trial %d tick %d", trial, tick)
			require.LessOrEqual(t, snap.Position.X, spanX.Max, "trial %d tick %d", trial, tick)
			require.GreaterOrEqual(t, snap.Position.Y, spanY.Min, "trial %d tick %d", trial, tick)
			require.LessOrEqual(t, snap.Position.Y, spanY.Max, "trial %d tick %d", trial, tick)
		}
	}
}

func TestAdvance_ShrinkingViewportReclamps(t *testing.T) {
	e := New(Config{Speed: 0}, nil)
	e.Teleport(core.Point2{X: 700, Y: 300})

	snap := e.Advance(core.Size2{Width: 400, Height: 600}, 0, clock200)
	assert.Equal(t, 300.0, snap.Position.X)
	assert.True(t, snap.Collided, "pushed back inside counts as a hit")

	snap = e.Advance(core.Size2{Width: 400, Height: 600}, 0, clock200)
	assert.False(t, snap.Collided, "resting on the wall does not retrigger")
}

func TestAdvance_PaddedProfileNudgesInward(t *testing.T) {
	e := New(Config{Speed: 1, Bounds: physics.BoundsPadded}, nil)
	e.Teleport(core.Point2{X: 690, Y: 300})

	snap := e.Advance(viewport800, 0, clock200)
	assert.Equal(t, 696.5, snap.Position.X)
	assert.True(t, snap.Collided)

	snap = e.Advance(viewport800, 0, clock200)
	assert.False(t, snap.Collided)
	assert.Equal(t, 686.5, snap.Position.X)
}

func TestSetSpeed_PreservesSign(t *testing.T) {
	headings := []core.Vector2{{DX: 1, DY: 1}, {DX: -1, DY: 1}, {DX: 1, DY: -1}, {DX: -1, DY: -1}}
	for _, h := range headings {
		for _, s := range []float64{0, 0.1, 0.5, 1} {
			e := New(Config{Speed: 0.5}, nil)
			e.SetVelocity(vmath.ScaleVector(h, 3))

			e.SetSpeed(s)
			require.Equal(t, h, e.Direction())
			require.InDelta(t, 10*s, math.Abs(e.Velocity().DX), 1e-9)
			require.InDelta(t, 10*s, math.Abs(e.Velocity().DY), 1e-9)
			if s > 0 {
				require.Equal(t, h, vmath.SignVector(e.Velocity()))
			}
		}
	}
}

func TestSetSpeed_ZeroKeepsHeading(t *testing.T) {
	e := New(Config{Speed: 1}, nil)
	e.SetVelocity(core.Vector2{DX: -10, DY: 10})
	e.SetSpeed(0)
	e.SetSpeed(0.3)
	assert.Equal(t, core.Vector2{DX: -3, DY: 3}, e.Velocity())
}

func TestSetSpeed_Clamps(t *testing.T) {
	e := New(Config{}, nil)
	e.SetSpeed(4)
	assert.Equal(t, 1.0, e.Speed())
	e.SetSpeed(-2)
	assert.Equal(t, 0.0, e.Speed())
	assert.Equal(t, core.Vector2{DX: 1, DY: 1}, e.Direction())
}

func TestBanCurrentColor(t *testing.T) {
	start := ColorFromHSV(0.26, 0.8, 0.8)
	// Every draw lands near the banned 0.3, so the search exhausts and accepts
	rng := &scriptedRand{floats: []float64{0.31}}
	e := New(Config{Color: &start}, rng)

	assert.True(t, e.BanCurrentColor())
	assert.Equal(t, []float64{0.3}, e.Bans().Hues())
	assert.InDelta(t, 0.31, e.Color().Hue, 1e-9)
	assert.Equal(t, 22, rng.floatCalls, "20 hue attempts plus saturation and value")

	// Current hue 0.31 rounds to the same entry
	assert.False(t, e.BanCurrentColor())
	assert.Equal(t, 1, e.Bans().Len())
}

func TestBanCurrentColor_RerollsAvoidingBan(t *testing.T) {
	start := ColorFromHSV(0.6, 0.8, 0.8)
	rng := &scriptedRand{floats: []float64{0.62, 0.58, 0.1, 0.5, 0.5}}
	e := New(Config{Color: &start}, rng)

	e.BanCurrentColor()
	assert.InDelta(t, 0.1, e.Color().Hue, 1e-9)
}

func TestSetters(t *testing.T) {
	e := New(Config{}, nil)
	e.SetPolicy(nil)
	assert.Equal(t, PolicyHue, e.Policy().Name())
	e.SetPolicy(DefaultPalette)
	assert.Equal(t, PolicyPalette, e.Policy().Name())

	bans := ParseHueBanList("0.5")
	e.SetBans(bans)
	assert.Same(t, bans, e.Bans())
	e.SetBans(nil)
	assert.NotNil(t, e.Bans())

	e.Advance(viewport800, 0, clock200)
	assert.Equal(t, clock200, e.MeasuredSize())
}
