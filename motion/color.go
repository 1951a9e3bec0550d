package motion

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/parameter"
	"github.com/lixenwraith/drift-clock/vmath"
)

// RandSource is the injected randomness used for color draws
// *vmath.FastRand satisfies it
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// Color is a display color together with the hue it was drawn from
type Color struct {
	RGB  core.RGB
	Hue  float64 // [0,1)
	Name string  // Palette name, empty for free hue draws
}

// ColorFromRGB derives the hue of an explicit color
func ColorFromRGB(name string, rgb core.RGB) Color {
	c := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	h, _, _ := c.Hsv()
	return Color{RGB: rgb, Hue: vmath.Wrap01(h / 360), Name: name}
}

// ColorFromHSV builds a color from hue in [0,1) and saturation/value in [0,1]
func ColorFromHSV(hue, sat, val float64) Color {
	hue = vmath.Wrap01(hue)
	r, g, b := colorful.Hsv(hue*360, sat, val).Clamped().RGB255()
	return Color{RGB: core.RGB{R: r, G: g, B: b}, Hue: hue}
}

// DefaultColor is the clock color before the first collision
var DefaultColor = ColorFromRGB("white", core.RGBWhite)

// ColorPolicy selects the display color after a collision
type ColorPolicy interface {
	Name() string
	Pick(rng RandSource, bans *HueBanList) Color
}

// PolicyByName resolves a configured policy name, unknown names return false
func PolicyByName(name string) (ColorPolicy, bool) {
	switch name {
	case PolicyPalette:
		return DefaultPalette, true
	case PolicyHue:
		return DefaultHue, true
	}
	return nil, false
}

// Policy names as used in settings and flags
const (
	PolicyPalette = "palette"
	PolicyHue     = "hue"
)

// PalettePolicy picks uniformly from a fixed set of named colors.
// The ban list does not apply to palette draws.
type PalettePolicy struct {
	Colors []Color
}

// DefaultPalette holds the named colors, pre-blended at parameter.PaletteOpacity over black
var DefaultPalette = NewPalettePolicy(map[string]core.RGB{
	"red":    {R: 255, G: 59, B: 48},
	"green":  {R: 52, G: 199, B: 89},
	"blue":   {R: 0, G: 122, B: 255},
	"orange": {R: 255, G: 149, B: 0},
	"purple": {R: 175, G: 82, B: 222},
	"cyan":   {R: 50, G: 173, B: 230},
	"pink":   {R: 255, G: 45, B: 85},
	"yellow": {R: 255, G: 204, B: 0},
	"white":  {R: 255, G: 255, B: 255},
}, []string{"red", "green", "blue", "orange", "purple", "cyan", "pink", "yellow", "white"})

// NewPalettePolicy builds a palette in the given name order
func NewPalettePolicy(colors map[string]core.RGB, order []string) *PalettePolicy {
	p := &PalettePolicy{Colors: make([]Color, 0, len(order))}
	for _, name := range order {
		rgb, ok := colors[name]
		if !ok {
			continue
		}
		blended := core.RGBBlack.Blend(rgb, parameter.PaletteOpacity)
		c := ColorFromRGB(name, blended)
		p.Colors = append(p.Colors, c)
	}
	return p
}

func (p *PalettePolicy) Name() string { return PolicyPalette }

func (p *PalettePolicy) Pick(rng RandSource, _ *HueBanList) Color {
	if len(p.Colors) == 0 {
		return DefaultColor
	}
	return p.Colors[rng.Intn(len(p.Colors))]
}

// HuePolicy draws a random hue with bounded saturation and brightness,
// retrying a bounded number of times to avoid banned hues
type HuePolicy struct {
	SatMin, SatMax float64
	ValMin, ValMax float64
	Tolerance      float64
	MaxAttempts    int
}

// DefaultHue is the hue-ban-aware policy with the standard ranges
var DefaultHue = &HuePolicy{
	SatMin:      parameter.HueSaturationMin,
	SatMax:      parameter.HueSaturationMax,
	ValMin:      parameter.HueValueMin,
	ValMax:      parameter.HueValueMax,
	Tolerance:   parameter.HueBanTolerance,
	MaxAttempts: parameter.HueMaxAttempts,
}

func (p *HuePolicy) Name() string { return PolicyHue }

// Pick never loops past MaxAttempts; the final draw is accepted even if banned
func (p *HuePolicy) Pick(rng RandSource, bans *HueBanList) Color {
	attempts := max(p.MaxAttempts, 1)
	var hue float64
	for i := 0; i < attempts; i++ {
		hue = rng.Float64()
		if !bans.Banned(hue, p.Tolerance) {
			break
		}
	}
	sat := vmath.Lerp(p.SatMin, p.SatMax, rng.Float64())
	val := vmath.Lerp(p.ValMin, p.ValMax, rng.Float64())
	return ColorFromHSV(hue, sat, val)
}
