// Package motion advances the clock across the viewport one tick at a time,
// bouncing it off the edges and recoloring it on every collision.
//
// The engine is owned by a single goroutine (the tick loop); no method blocks
// and none returns an error. Out-of-range inputs are clamped or defaulted.
package motion

import (
	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/parameter"
	"github.com/lixenwraith/drift-clock/physics"
	"github.com/lixenwraith/drift-clock/vmath"
)

// Axis is a bit set of axes that hit a wall during one tick
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
)

// Snapshot is the immutable result of one Advance call
type Snapshot struct {
	Position core.Point2
	Color    Color
	Collided bool
	Axes     Axis
}

// Config seeds a new engine
type Config struct {
	Speed  float64               // Speed scalar in [0,1]
	Policy ColorPolicy           // Defaults to DefaultHue
	Bounds physics.BoundsProfile // Defaults to physics.BoundsExact
	Bans   *HueBanList           // Shared with the settings owner, may be nil
	Color  *Color                // Initial color, defaults to DefaultColor
}

// Engine owns the clock's position, velocity, heading and color
type Engine struct {
	position    core.Point2
	hasPosition bool

	// direction holds only signs; magnitude lives in velocity
	direction core.Vector2
	velocity  core.Vector2
	speed     float64

	color    Color
	measured core.Size2

	policy ColorPolicy
	bounds physics.BoundsProfile
	bans   *HueBanList
	rng    RandSource
}

// New creates an engine heading (+1,+1) with no recorded position
func New(cfg Config, rng RandSource) *Engine {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	e := &Engine{
		direction: core.Vector2{DX: 1, DY: 1},
		color:     DefaultColor,
		policy:    cfg.Policy,
		bounds:    cfg.Bounds,
		bans:      cfg.Bans,
		rng:       rng,
	}
	if e.policy == nil {
		e.policy = DefaultHue
	}
	if e.bans == nil {
		e.bans = &HueBanList{}
	}
	if cfg.Color != nil {
		e.color = *cfg.Color
	}
	e.SetSpeed(cfg.Speed)
	return e
}

// SetSpeed sets both axis magnitudes to BaseSpeed*scalar, keeping the heading
func (e *Engine) SetSpeed(scalar float64) {
	e.speed = vmath.Clamp(scalar, parameter.MoveSpeedMin, parameter.MoveSpeedMax)
	e.applySpeed()
}

func (e *Engine) applySpeed() {
	e.velocity = vmath.ScaleVector(e.direction, parameter.BaseSpeed*e.speed)
}

// SetVelocity overrides velocity and derives the heading from its signs
// A zero component keeps the current heading on that axis
func (e *Engine) SetVelocity(v core.Vector2) {
	if v.DX != 0 {
		e.direction.DX = vmath.Sign(v.DX)
	}
	if v.DY != 0 {
		e.direction.DY = vmath.Sign(v.DY)
	}
	e.velocity = v
}

// Teleport records a position without integrating
func (e *Engine) Teleport(p core.Point2) {
	e.position = p
	e.hasPosition = true
}

// SetPolicy swaps the color policy used on the next collision
func (e *Engine) SetPolicy(p ColorPolicy) {
	if p != nil {
		e.policy = p
	}
}

// SetBounds swaps the bounds profile used on the next tick
func (e *Engine) SetBounds(b physics.BoundsProfile) {
	e.bounds = b
}

// SetBans replaces the shared ban list
func (e *Engine) SetBans(b *HueBanList) {
	if b == nil {
		b = &HueBanList{}
	}
	e.bans = b
}

// Advance integrates one tick inside the usable area and resolves wall collisions.
// reservedWidth is the width of any side panel covering the right edge.
func (e *Engine) Advance(viewport core.Size2, reservedWidth float64, clockSize core.Size2) Snapshot {
	e.measured = clockSize
	usable := e.usableArea(viewport, reservedWidth, clockSize)
	center := usable.Center()

	// Unmeasured clock: freeze at center, no physics
	if !clockSize.Measured() {
		e.Teleport(center)
		return e.snapshot(0)
	}

	current := center
	if e.hasPosition {
		current = e.position
	}
	next := current.Add(e.velocity)

	spanX := e.bounds.SpanFor(usable.Width, clockSize.Width)
	spanY := e.bounds.SpanFor(usable.Height, clockSize.Height)

	var axes Axis
	x, dirX, hitX := e.bounds.Reflect(next.X, e.velocity.DX, e.direction.DX, spanX)
	y, dirY, hitY := e.bounds.Reflect(next.Y, e.velocity.DY, e.direction.DY, spanY)
	if hitX {
		axes |= AxisX
	}
	if hitY {
		axes |= AxisY
	}
	e.direction = core.Vector2{DX: dirX, DY: dirY}

	// A corner hit is still a single color change
	if axes != 0 {
		e.applySpeed()
		e.color = e.policy.Pick(e.rng, e.bans)
	}

	e.Teleport(core.Point2{X: x, Y: y})
	return e.snapshot(axes)
}

// usableArea subtracts the reserved panel width and keeps each extent at least
// as large as the clock so bounds never invert
func (e *Engine) usableArea(viewport core.Size2, reservedWidth float64, clockSize core.Size2) core.Size2 {
	reservedWidth = max(reservedWidth, 0)
	return core.Size2{
		Width:  max(viewport.Width-reservedWidth, e.bounds.MinLength(clockSize.Width), 0),
		Height: max(viewport.Height, e.bounds.MinLength(clockSize.Height), 0),
	}
}

// BanCurrentColor bans the current hue and immediately draws a replacement.
// Returns true if the hue was newly added.
func (e *Engine) BanCurrentColor() bool {
	added := e.bans.Add(e.color.Hue)
	e.color = e.policy.Pick(e.rng, e.bans)
	return added
}

// Snapshot returns the current state without advancing
func (e *Engine) Snapshot() Snapshot {
	return e.snapshot(0)
}

func (e *Engine) snapshot(axes Axis) Snapshot {
	return Snapshot{
		Position: e.position,
		Color:    e.color,
		Collided: axes != 0,
		Axes:     axes,
	}
}

// Position returns the recorded position, false before the first Advance
func (e *Engine) Position() (core.Point2, bool) { return e.position, e.hasPosition }

func (e *Engine) Velocity() core.Vector2  { return e.velocity }
func (e *Engine) Direction() core.Vector2 { return e.direction }
func (e *Engine) Speed() float64          { return e.speed }
func (e *Engine) Color() Color            { return e.color }
func (e *Engine) Bans() *HueBanList       { return e.bans }
func (e *Engine) Policy() ColorPolicy     { return e.policy }

// MeasuredSize returns the clock size passed to the last Advance
func (e *Engine) MeasuredSize() core.Size2 { return e.measured }
