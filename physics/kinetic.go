package physics

import "github.com/lixenwraith/drift-clock/parameter"

// Span is the valid range for a body's center along one axis
type Span struct {
	Min, Max float64
}

// Center returns the midpoint of the span
func (s Span) Center() float64 {
	return (s.Min + s.Max) / 2
}

// BoundsProfile defines how walls are derived from a body's rendered extent
// Profiles are pre-defined as package variables
type BoundsProfile struct {
	Margin float64 // Padding added to the body extent before computing walls
	Nudge  float64 // Inward offset applied to a clamped coordinate
}

// BoundsExact places walls at the body's rendered edge and clamps onto them
var BoundsExact = BoundsProfile{}

// BoundsPadded pads the body and nudges clamped coordinates inward so the
// next tick starts strictly inside the span
var BoundsPadded = BoundsProfile{
	Margin: parameter.BoundsMargin,
	Nudge:  parameter.BoundsNudge,
}

// SpanFor returns the center range of a body of size extent inside [0, length]
func (p BoundsProfile) SpanFor(length, extent float64) Span {
	half := (extent + p.Margin) / 2
	return Span{Min: half, Max: length - half}
}

// MinLength is the smallest container length that keeps the span non-inverted
func (p BoundsProfile) MinLength(extent float64) float64 {
	return extent + p.Margin
}

// Collapsed reports whether the span leaves no room to move after nudging
func (p BoundsProfile) Collapsed(s Span) bool {
	return s.Max-s.Min <= 2*p.Nudge
}

// Reflect resolves one axis against its span.
// next is the tentative coordinate, vel the axis velocity and dir the current
// heading sign. Returns the committed coordinate, new heading sign and whether
// the wall was hit. A body at rest on a wall is clamped without counting a hit.
func (p BoundsProfile) Reflect(next, vel, dir float64, s Span) (pos, newDir float64, hit bool) {
	if p.Collapsed(s) {
		return s.Center(), dir, false
	}
	if next <= s.Min {
		return s.Min + p.Nudge, 1, next < s.Min || vel != 0
	}
	if next >= s.Max {
		return s.Max - p.Nudge, -1, next > s.Max || vel != 0
	}
	return next, dir, false
}
