package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift-clock/core"
)

// UI colors
var (
	RgbBackground  = core.RGBBlack
	RgbPanel       = core.RGB{R: 24, G: 24, B: 28}
	RgbPanelBorder = core.RGB{R: 70, G: 70, B: 80}
	RgbPanelText   = core.RGB{R: 200, G: 200, B: 200}
	RgbPanelTitle  = core.RGB{R: 255, G: 255, B: 255}
	RgbPanelMuted  = core.RGB{R: 120, G: 120, B: 130}
	RgbPanelCursor = core.RGB{R: 60, G: 90, B: 140}
	RgbPanelActive = core.RGB{R: 120, G: 200, B: 120}
	RgbDebugText   = core.RGBGray
	zoneDimFactor  = 0.7
)

// Color converts an RGB value to a true-color tcell color
func Color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style returns a style with foreground fg over background bg
func Style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}
