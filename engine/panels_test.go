package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/settings"
)

func TestSettingsPanel_Content(t *testing.T) {
	p := NewSettingsPanel(nil)
	content := p.Content(settings.Default())
	cards := content.Cards()
	require.Len(t, cards, 4)
	assert.Equal(t, "Motion", cards[0].Title)
	assert.Equal(t, "Speed", cards[0].Entries[0].Key)
	assert.Equal(t, "0.50", cards[0].Entries[0].Value)
	assert.True(t, cards[0].Entries[0].Selected)
}

func TestSettingsPanel_MoveWraps(t *testing.T) {
	p := NewSettingsPanel(nil)
	p.Move(-1)
	assert.Equal(t, len(settingRows)-1, p.Cursor())
	p.Move(1)
	assert.Zero(t, p.Cursor())
}

func TestSettingsPanel_Adjustments(t *testing.T) {
	s := settings.Default()
	p := NewSettingsPanel(func() []string { return []string{"block", "basic"} })

	moveTo := func(label string) {
		for i := 0; i < len(settingRows); i++ {
			if p.Label() == label {
				return
			}
			p.Move(1)
		}
		t.Fatalf("no row %q", label)
	}

	moveTo("Font size")
	p.Adjust(s, 1)
	assert.Equal(t, 90.0, s.FontSize)

	moveTo("AM/PM size")
	p.Adjust(s, 1)
	assert.Equal(t, 0.5, s.AMPMScale)
	p.Adjust(s, -1)
	p.Adjust(s, -1)
	assert.Equal(t, 1.0, s.AMPMScale, "cycles backwards")

	moveTo("Font")
	p.Adjust(s, 1)
	assert.Equal(t, "basic", s.SelectedFont)
	p.Adjust(s, 1)
	assert.Equal(t, "block", s.SelectedFont)

	moveTo("Time zone")
	s.TimeZone = "Asia/Tokyo"
	p.SetZones([]string{"Asia/Tokyo", "Europe/Paris"})
	p.Adjust(s, 1)
	assert.Equal(t, "Europe/Paris", s.TimeZone)

	moveTo("Banned hues")
	s.HueBanList = "0.3,0.5"
	p.Adjust(s, 1)
	assert.Empty(t, s.HueBanList)

	moveTo("Speed")
	p.Adjust(s, 1)
	assert.Equal(t, 0.55, s.MoveSpeed)
}

func TestFontPicker(t *testing.T) {
	names := []string{"block", "basic", "plain"}
	var f FontPicker
	f.Focus(names, "PLAIN")
	assert.Equal(t, "plain", f.Selected(names))

	f.Move(5, names)
	assert.Equal(t, "plain", f.Selected(names), "clamped")
	f.Move(-1, names)
	assert.Equal(t, "basic", f.Selected(names))

	content := f.Content(names, "block")
	require.Len(t, content.Items, 1)
	list := content.Items[0].(core.PanelList)
	assert.Equal(t, 0, list.Active)
	assert.Equal(t, 1, list.Selected)

	assert.Empty(t, f.Selected(nil))
}
