// Package render lays out the clock text as glyph rasters and draws frames
// on a tcell screen.
package render

import (
	"math"

	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/parameter"
)

// Metrics converts between terminal cells and engine units
type Metrics struct {
	UnitsX, UnitsY float64
}

// DefaultMetrics uses the cell aspect ratio of a typical terminal font
var DefaultMetrics = Metrics{UnitsX: parameter.CellUnitsX, UnitsY: parameter.CellUnitsY}

// Size converts a cell extent to engine units
func (m Metrics) Size(cols, rows int) core.Size2 {
	return core.Size2{Width: float64(cols) * m.UnitsX, Height: float64(rows) * m.UnitsY}
}

// Width converts a column count to horizontal engine units
func (m Metrics) Width(cols int) float64 {
	return float64(cols) * m.UnitsX
}

// Cell maps an engine position to the nearest cell
func (m Metrics) Cell(p core.Point2) (x, y int) {
	return int(math.Round(p.X / m.UnitsX)), int(math.Round(p.Y / m.UnitsY))
}
