package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/motion"
	"github.com/lixenwraith/drift-clock/parameter"
	"github.com/lixenwraith/drift-clock/settings"
	"github.com/lixenwraith/drift-clock/timefmt"
	"github.com/lixenwraith/drift-clock/vmath"
)

// settingRow is one adjustable line of the settings panel
type settingRow struct {
	group  string
	label  string
	value  func(s *settings.Settings) string
	adjust func(p *SettingsPanel, s *settings.Settings, delta int)
}

// SettingsPanel is the cursor state of the settings side panel
type SettingsPanel struct {
	cursor int
	zones  []string
	fonts  func() []string
}

// fallbackZoneCycle is offered until the zone scan finishes
var fallbackZoneCycle = []string{"Local", "UTC"}

// NewSettingsPanel creates a panel; fonts lists the selectable face names
func NewSettingsPanel(fonts func() []string) *SettingsPanel {
	return &SettingsPanel{fonts: fonts}
}

// SetZones replaces the selectable zone identifiers
func (p *SettingsPanel) SetZones(zones []string) {
	p.zones = zones
}

// Cursor returns the selected row index
func (p *SettingsPanel) Cursor() int { return p.cursor }

// Label returns the label of the selected row
func (p *SettingsPanel) Label() string { return settingRows[p.cursor].label }

// Move shifts the cursor, wrapping at both ends
func (p *SettingsPanel) Move(delta int) {
	n := len(settingRows)
	p.cursor = ((p.cursor+delta)%n + n) % n
}

// Adjust applies delta (-1 or +1) to the selected row
func (p *SettingsPanel) Adjust(s *settings.Settings, delta int) {
	settingRows[p.cursor].adjust(p, s, delta)
	s.Normalize()
}

// Content builds the panel as grouped cards
func (p *SettingsPanel) Content(s *settings.Settings) *core.PanelContent {
	content := &core.PanelContent{Title: "Settings"}
	var card core.PanelCard
	for i, row := range settingRows {
		if row.group != card.Title {
			if card.Title != "" {
				content.Items = append(content.Items, card)
			}
			card = core.PanelCard{Title: row.group}
		}
		card.Entries = append(card.Entries, core.CardEntry{
			Key:      row.label,
			Value:    row.value(s),
			Selected: i == p.cursor,
		})
	}
	content.Items = append(content.Items, card)
	return content
}

var settingRows = []settingRow{
	{
		group: "Motion", label: "Speed",
		value: func(s *settings.Settings) string { return fmt.Sprintf("%.2f", s.MoveSpeed) },
		adjust: func(_ *SettingsPanel, s *settings.Settings, d int) {
			s.MoveSpeed = vmath.RoundTo(s.MoveSpeed+float64(d)*parameter.MoveSpeedStep, 2)
		},
	},
	{
		group: "Motion", label: "Color",
		value: func(s *settings.Settings) string { return s.ColorPolicy },
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) {
			s.ColorPolicy = toggle(s.ColorPolicy, motion.PolicyHue, motion.PolicyPalette)
		},
	},
	{
		group: "Motion", label: "Bounds",
		value: func(s *settings.Settings) string { return s.BoundsPolicy },
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) {
			s.BoundsPolicy = toggle(s.BoundsPolicy, settings.BoundsExact, settings.BoundsPadded)
		},
	},
	{
		group: "Motion", label: "Banned hues",
		value: func(s *settings.Settings) string {
			if s.HueBanList == "" {
				return "none"
			}
			return s.HueBanList
		},
		// Any adjustment clears the list
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) {
			s.HueBanList = ""
		},
	},
	{
		group: "Time", label: "24-hour",
		value:  func(s *settings.Settings) string { return onOff(s.Is24Hour) },
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) { s.Is24Hour = !s.Is24Hour },
	},
	{
		group: "Time", label: "Pad zero",
		value:  func(s *settings.Settings) string { return onOff(s.PadZero) },
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) { s.PadZero = !s.PadZero },
	},
	{
		group: "Time", label: "AM/PM",
		value:  func(s *settings.Settings) string { return onOff(s.ShowAMPM) },
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) { s.ShowAMPM = !s.ShowAMPM },
	},
	{
		group: "Time", label: "AM/PM side",
		value: func(s *settings.Settings) string { return s.AMPMSide },
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) {
			s.AMPMSide = toggle(s.AMPMSide, timefmt.AMPMLeading.String(), timefmt.AMPMTrailing.String())
		},
	},
	{
		group: "Time", label: "AM/PM size",
		value: func(s *settings.Settings) string { return scaleLabel(s.AMPMScale) },
		adjust: func(_ *SettingsPanel, s *settings.Settings, d int) {
			s.AMPMScale = cycleFloat(parameter.AMPMScales, s.AMPMScale, d)
		},
	},
	{
		group: "Zone", label: "Time zone",
		value: func(s *settings.Settings) string { return s.TimeZone },
		adjust: func(p *SettingsPanel, s *settings.Settings, d int) {
			zones := p.zones
			if len(zones) == 0 {
				zones = fallbackZoneCycle
			}
			s.TimeZone = cycleString(zones, s.TimeZone, d)
		},
	},
	{
		group: "Zone", label: "Zone text",
		value:  func(s *settings.Settings) string { return onOff(s.ShowTimeZoneText) },
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) { s.ShowTimeZoneText = !s.ShowTimeZoneText },
	},
	{
		group: "Zone", label: "Zone style",
		value: func(s *settings.Settings) string { return s.ZoneStyle },
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) {
			s.ZoneStyle = toggle(s.ZoneStyle, settings.ZoneStyleOffset, settings.ZoneStyleAbbrev)
		},
	},
	{
		group: "Display", label: "Font",
		value: func(s *settings.Settings) string { return s.SelectedFont },
		adjust: func(p *SettingsPanel, s *settings.Settings, d int) {
			if p.fonts != nil {
				s.SelectedFont = cycleString(p.fonts(), s.SelectedFont, d)
			}
		},
	},
	{
		group: "Display", label: "Font size",
		value: func(s *settings.Settings) string { return fmt.Sprintf("%.0f", s.FontSize) },
		adjust: func(_ *SettingsPanel, s *settings.Settings, d int) {
			s.FontSize += float64(d) * parameter.FontSizeStep
		},
	},
	{
		group: "Display", label: "Sound",
		value:  func(s *settings.Settings) string { return onOff(s.Sound) },
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) { s.Sound = !s.Sound },
	},
	{
		group: "Display", label: "Debug info",
		value:  func(s *settings.Settings) string { return onOff(s.ShowDebugInfo) },
		adjust: func(_ *SettingsPanel, s *settings.Settings, _ int) { s.ShowDebugInfo = !s.ShowDebugInfo },
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func toggle(cur, a, b string) string {
	if strings.EqualFold(cur, a) {
		return b
	}
	return a
}

func scaleLabel(v float64) string {
	switch v {
	case 0.25:
		return "1/4"
	case 0.5:
		return "1/2"
	}
	return fmt.Sprintf("%g", v)
}

func cycleFloat(options []float64, cur float64, delta int) float64 {
	idx := 0
	for i, v := range options {
		if v == cur {
			idx = i
		}
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

// cycleString steps through options; an unknown current value starts from the first entry
func cycleString(options []string, cur string, delta int) string {
	if len(options) == 0 {
		return cur
	}
	idx := -1
	for i, v := range options {
		if strings.EqualFold(v, cur) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return options[0]
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

// FontPicker is the cursor state of the font side panel
type FontPicker struct {
	cursor int
}

// Move shifts the cursor within names, clamping at the ends
func (f *FontPicker) Move(delta int, names []string) {
	f.cursor = max(0, min(f.cursor+delta, len(names)-1))
}

// Focus puts the cursor on the active face
func (f *FontPicker) Focus(names []string, active string) {
	for i, n := range names {
		if strings.EqualFold(n, active) {
			f.cursor = i
			return
		}
	}
}

// Selected returns the name under the cursor, empty when names is empty
func (f *FontPicker) Selected(names []string) string {
	if f.cursor < 0 || f.cursor >= len(names) {
		return ""
	}
	return names[f.cursor]
}

// Content renders the picker list
func (f *FontPicker) Content(names []string, active string) *core.PanelContent {
	list := core.PanelList{Lines: names, Selected: f.cursor, Active: -1}
	for i, n := range names {
		if strings.EqualFold(n, active) {
			list.Active = i
		}
	}
	return &core.PanelContent{Title: "Fonts", Items: []core.PanelItem{list}}
}
