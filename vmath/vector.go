package vmath

import "github.com/lixenwraith/drift-clock/core"

// SignVector reduces a vector to its per-axis signs (each -1 or +1)
func SignVector(v core.Vector2) core.Vector2 {
	return core.Vector2{DX: Sign(v.DX), DY: Sign(v.DY)}
}

// ScaleVector multiplies both axes by factor
func ScaleVector(v core.Vector2, factor float64) core.Vector2 {
	return core.Vector2{DX: v.DX * factor, DY: v.DY * factor}
}
