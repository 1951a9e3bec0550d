// Package settings holds the user's clock preferences and persists them as YAML.
package settings

import (
	"math"

	"github.com/lixenwraith/drift-clock/motion"
	"github.com/lixenwraith/drift-clock/parameter"
	"github.com/lixenwraith/drift-clock/physics"
	"github.com/lixenwraith/drift-clock/timefmt"
	"github.com/lixenwraith/drift-clock/vmath"
)

// Bounds profile names
const (
	BoundsExact  = "exact"
	BoundsPadded = "padded"
)

// Zone label styles
const (
	ZoneStyleOffset = "offset"
	ZoneStyleAbbrev = "abbrev"
)

// Settings is the persisted preference set.
// Field names in YAML follow the keys of the original preference store.
type Settings struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	FontSize         float64 `yaml:"font_size"`
	Is24Hour         bool    `yaml:"is_24_hour"`
	ShowAMPM         bool    `yaml:"show_ampm"`
	AMPMSide         string  `yaml:"ampm_side"`
	AMPMScale        float64 `yaml:"ampm_scale"`
	TimeZone         string  `yaml:"time_zone"`
	PadZero          bool    `yaml:"pad_zero"`
	ShowTimeZoneText bool    `yaml:"show_time_zone_text"`
	ZoneStyle        string  `yaml:"zone_style"`
	SelectedFont     string  `yaml:"selected_font"`
	HueBanList       string  `yaml:"hue_ban_list"`
	ColorPolicy      string  `yaml:"color_policy"`
	BoundsPolicy     string  `yaml:"bounds_policy"`
	Sound            bool    `yaml:"sound"`
	ShowDebugInfo    bool    `yaml:"show_debug_info"`
}

// Default returns the first-run preferences
func Default() *Settings {
	return &Settings{
		MoveSpeed:        parameter.MoveSpeedDefault,
		FontSize:         parameter.FontSizeDefault,
		Is24Hour:         false,
		ShowAMPM:         true,
		AMPMSide:         timefmt.AMPMLeading.String(),
		AMPMScale:        parameter.AMPMScaleDefault,
		TimeZone:         timefmt.LocalZoneID(),
		PadZero:          true,
		ShowTimeZoneText: true,
		ZoneStyle:        ZoneStyleOffset,
		SelectedFont:     parameter.DefaultFont,
		ColorPolicy:      motion.PolicyHue,
		BoundsPolicy:     BoundsExact,
	}
}

// Normalize clamps numeric ranges and replaces unknown enum values with defaults
func (s *Settings) Normalize() {
	if math.IsNaN(s.MoveSpeed) {
		s.MoveSpeed = parameter.MoveSpeedDefault
	}
	s.MoveSpeed = vmath.Clamp(s.MoveSpeed, parameter.MoveSpeedMin, parameter.MoveSpeedMax)

	if math.IsNaN(s.FontSize) || s.FontSize == 0 {
		s.FontSize = parameter.FontSizeDefault
	}
	s.FontSize = vmath.Clamp(s.FontSize, parameter.FontSizeMin, parameter.FontSizeMax)

	s.AMPMScale = nearestScale(s.AMPMScale)
	s.AMPMSide = timefmt.ParseAMPMSide(s.AMPMSide).String()

	if s.TimeZone == "" {
		s.TimeZone = timefmt.LocalZoneID()
	}
	if s.ZoneStyle != ZoneStyleAbbrev {
		s.ZoneStyle = ZoneStyleOffset
	}
	if s.SelectedFont == "" {
		s.SelectedFont = parameter.DefaultFont
	}
	if _, ok := motion.PolicyByName(s.ColorPolicy); !ok {
		s.ColorPolicy = motion.PolicyHue
	}
	if s.BoundsPolicy != BoundsPadded {
		s.BoundsPolicy = BoundsExact
	}
	// Canonicalize the ban list (rounding, dedupe, invalid entries dropped)
	s.HueBanList = motion.ParseHueBanList(s.HueBanList).String()
}

func nearestScale(v float64) float64 {
	best := parameter.AMPMScales[0]
	for _, candidate := range parameter.AMPMScales {
		if math.Abs(candidate-v) < math.Abs(best-v) {
			best = candidate
		}
	}
	return best
}

// Flags returns the formatter input for the current preferences
func (s *Settings) Flags() timefmt.FormatFlags {
	return timefmt.FormatFlags{
		Is24Hour:   s.Is24Hour,
		PadZero:    s.PadZero,
		ShowAMPM:   s.ShowAMPM,
		AMPMSide:   timefmt.ParseAMPMSide(s.AMPMSide),
		TimeZoneID: s.TimeZone,
	}
}

// Bans parses the persisted ban list
func (s *Settings) Bans() *motion.HueBanList {
	return motion.ParseHueBanList(s.HueBanList)
}

// SetBans stores the ban list in its persisted form
func (s *Settings) SetBans(b *motion.HueBanList) {
	s.HueBanList = b.String()
}

// Policy resolves the configured color policy
func (s *Settings) Policy() motion.ColorPolicy {
	p, ok := motion.PolicyByName(s.ColorPolicy)
	if !ok {
		return motion.DefaultHue
	}
	return p
}

// Bounds resolves the configured bounds profile
func (s *Settings) Bounds() physics.BoundsProfile {
	if s.BoundsPolicy == BoundsPadded {
		return physics.BoundsPadded
	}
	return physics.BoundsExact
}

// GlyphScale maps the point size onto an integer glyph multiplier (at least 1)
func (s *Settings) GlyphScale() int {
	return max(1, int(math.Round(s.FontSize/parameter.FontSizePerScale)))
}

// Clone returns an independent copy
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}
