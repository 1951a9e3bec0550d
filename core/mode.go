package core

// Mode selects which side panel, if any, owns input
type Mode uint8

const (
	ModeClock Mode = iota
	ModeSettings
	ModeFontPicker
)

// String returns the mode label shown in the debug line
func (m Mode) String() string {
	switch m {
	case ModeSettings:
		return "SETTINGS"
	case ModeFontPicker:
		return "FONTS"
	default:
		return "CLOCK"
	}
}
