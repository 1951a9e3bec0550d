package core

// Vector2 is a velocity or heading in engine units per tick
type Vector2 struct {
	DX, DY float64
}

// Size2 is a width/height pair in engine units
// Width == 0 marks a size that has not been measured yet
type Size2 struct {
	Width, Height float64
}

// Measured reports whether the size carries a real measurement
func (s Size2) Measured() bool {
	return s.Width > 0
}

// Point2 is the clock center in viewport coordinates
type Point2 struct {
	X, Y float64
}

// Add returns p translated by v
func (p Point2) Add(v Vector2) Point2 {
	return Point2{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Center returns the center point of a size anchored at the origin
func (s Size2) Center() Point2 {
	return Point2{X: s.Width / 2, Y: s.Height / 2}
}
