package motion

import (
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/drift-clock/parameter"
	"github.com/lixenwraith/drift-clock/vmath"
)

// HueBanList is the user-curated set of hues excluded from random color draws.
// Hues live in [0,1) and are stored rounded to parameter.HueBanPrecision decimals.
// The zero value is an empty list ready for use.
type HueBanList struct {
	hues []float64
}

// ParseHueBanList reads the persisted comma-separated form, skipping entries
// that are not numbers and collapsing duplicates
func ParseHueBanList(s string) *HueBanList {
	l := &HueBanList{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		h, err := strconv.ParseFloat(field, 64)
		if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
			continue
		}
		l.Add(h)
	}
	return l
}

// String returns the persisted comma-separated form
func (l *HueBanList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(l.hues))
	for i, h := range l.hues {
		parts[i] = strconv.FormatFloat(h, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Add rounds the hue and appends it unless already present, returns true if appended
func (l *HueBanList) Add(hue float64) bool {
	h := canonicalHue(hue)
	for _, existing := range l.hues {
		if math.Abs(existing-h) < 1e-9 {
			return false
		}
	}
	l.hues = append(l.hues, h)
	return true
}

// Banned reports whether hue lies within tolerance of any banned hue on the hue circle
func (l *HueBanList) Banned(hue, tolerance float64) bool {
	if l == nil {
		return false
	}
	for _, h := range l.hues {
		if vmath.CircularDistance(hue, h) <= tolerance {
			return true
		}
	}
	return false
}

// Hues returns a copy of the banned hues in insertion order
func (l *HueBanList) Hues() []float64 {
	if l == nil {
		return nil
	}
	out := make([]float64, len(l.hues))
	copy(out, l.hues)
	return out
}

// Len returns the number of banned hues
func (l *HueBanList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.hues)
}

// Clear removes every ban
func (l *HueBanList) Clear() {
	l.hues = l.hues[:0]
}

func canonicalHue(h float64) float64 {
	return vmath.Wrap01(vmath.RoundTo(vmath.Wrap01(h), parameter.HueBanPrecision))
}
