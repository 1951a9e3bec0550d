// Package timefmt turns an instant into the clock's display strings.
// Every function is pure apart from the zone cache and never fails; output is
// independent of the host locale.
package timefmt

import (
	"fmt"
	"time"
)

// AMPMSide places the AM/PM label relative to the main time
type AMPMSide uint8

const (
	AMPMLeading AMPMSide = iota
	AMPMTrailing
)

func (s AMPMSide) String() string {
	if s == AMPMTrailing {
		return "Trailing"
	}
	return "Leading"
}

// ParseAMPMSide accepts the persisted names, anything else is Leading
func ParseAMPMSide(s string) AMPMSide {
	if s == "Trailing" || s == "trailing" {
		return AMPMTrailing
	}
	return AMPMLeading
}

// FormatFlags selects how an instant is rendered
type FormatFlags struct {
	Is24Hour   bool
	PadZero    bool
	ShowAMPM   bool
	AMPMSide   AMPMSide
	TimeZoneID string
}

// Display is the formatted output for one instant
type Display struct {
	MainTime string
	AMPM     string
	TimeZone string
}

// paddedWidth is the character count of the zero-padded "HH:MM" form
const paddedWidth = 5

// Format renders t in the zone named by flags.TimeZoneID
func Format(t time.Time, flags FormatFlags) Display {
	local := t.In(ResolveZone(flags.TimeZoneID))
	return Display{
		MainTime: MainTime(local, flags.Is24Hour, flags.PadZero),
		AMPM:     AMPMLabel(local, flags),
		TimeZone: ZoneLabel(flags.TimeZoneID, t),
	}
}

// MainTime formats hour:minute in t's own location.
// An unpadded hour gets a leading space so the width matches the padded form.
func MainTime(t time.Time, is24Hour, padZero bool) string {
	hour := t.Hour()
	if !is24Hour {
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}
	if padZero {
		return fmt.Sprintf("%02d:%02d", hour, t.Minute())
	}
	s := fmt.Sprintf("%d:%02d", hour, t.Minute())
	if len(s) < paddedWidth {
		s = " " + s
	}
	return s
}

// AMPMLabel returns "AM"/"PM" for a 12-hour clock with the label enabled, else ""
func AMPMLabel(t time.Time, flags FormatFlags) string {
	if flags.Is24Hour || !flags.ShowAMPM {
		return ""
	}
	return t.Format("PM")
}

// DebugTimestamp is the millisecond-precision stamp shown by the debug line
func DebugTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.000")
}
