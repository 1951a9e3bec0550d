package render

import (
	"math"

	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/font"
	"github.com/lixenwraith/drift-clock/parameter"
	"github.com/lixenwraith/drift-clock/timefmt"
)

// LayoutStyle controls how the display strings are arranged
type LayoutStyle struct {
	Face      font.Face
	Scale     int     // Main time glyph scale
	AMPMScale float64 // AM/PM scale relative to Scale
	AMPMSide  timefmt.AMPMSide
	ShowZone  bool
}

// Part is a raster placed at a cell offset inside the clock box
type Part struct {
	X, Y   int
	Raster font.Raster
	Dim    bool
}

// ClockLayout is the arranged clock, sized in cells
type ClockLayout struct {
	Parts         []Part
	Width, Height int
}

// Layout arranges AM/PM, main time and the optional zone line.
// An AM/PM label whose scaled size would drop below one pixel falls back to plain text.
func Layout(d timefmt.Display, style LayoutStyle) ClockLayout {
	face := style.Face
	if face == nil {
		face = font.Block
	}
	scale := max(style.Scale, 1)

	main := font.Rasterize(face, d.MainTime, scale)

	var ampm font.Raster
	if d.AMPM != "" {
		s := int(math.Round(float64(scale) * style.AMPMScale))
		if s < 1 || face.Style().Text {
			ampm = font.Rasterize(font.Plain, d.AMPM, 1)
		} else {
			ampm = font.Rasterize(face, d.AMPM, s)
		}
	}

	var l ClockLayout
	rowWidth := main.Width
	mainX, ampmX := 0, 0
	if !ampm.Empty() {
		rowWidth += ampm.Width + parameter.AMPMGap
		if style.AMPMSide == timefmt.AMPMLeading {
			mainX = ampm.Width + parameter.AMPMGap
		} else {
			ampmX = main.Width + parameter.AMPMGap
		}
	}
	rowHeight := max(main.Height, ampm.Height)

	l.Width, l.Height = rowWidth, rowHeight

	var zone font.Raster
	if style.ShowZone && d.TimeZone != "" {
		zone = font.Rasterize(font.Plain, d.TimeZone, 1)
		l.Width = max(l.Width, zone.Width)
		l.Height = rowHeight + parameter.ClockLineGap + zone.Height
	}

	// Center the time row over a wider zone line
	rowX := (l.Width - rowWidth) / 2
	if !main.Empty() {
		l.Parts = append(l.Parts, Part{X: rowX + mainX, Raster: main})
	}
	if !ampm.Empty() {
		l.Parts = append(l.Parts, Part{X: rowX + ampmX, Raster: ampm})
	}
	if !zone.Empty() {
		l.Parts = append(l.Parts, Part{
			X:      (l.Width - zone.Width) / 2,
			Y:      rowHeight + parameter.ClockLineGap,
			Raster: zone,
			Dim:    true,
		})
	}
	return l
}

// Measure returns the bounding box in engine units, the size fed to motion
func (l ClockLayout) Measure(m Metrics) core.Size2 {
	return m.Size(l.Width, l.Height)
}
