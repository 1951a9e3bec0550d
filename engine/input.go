package engine

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/parameter"
	"github.com/lixenwraith/drift-clock/vmath"
)

// HandleEvent applies one terminal event, returns false when the app should exit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		return a.closeFocused()
	case tcell.KeyUp:
		a.navigate(-1)
	case tcell.KeyDown:
		a.navigate(1)
	case tcell.KeyLeft:
		a.adjust(-1)
	case tcell.KeyRight:
		a.adjust(1)
	case tcell.KeyEnter:
		a.activate()
	case tcell.KeyTab:
		a.cycleFocus()
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case 's', 'S', ',':
		a.toggleSettings()
	case 'f', 'F':
		a.togglePicker()
	case 'b', 'B':
		a.BanCurrentColor()
	case 't', 'T':
		a.settings.Is24Hour = !a.settings.Is24Hour
		a.applySettings()
	case '+', '=':
		a.changeSpeed(parameter.MoveSpeedStep)
	case '-', '_':
		a.changeSpeed(-parameter.MoveSpeedStep)
	case 'k':
		a.navigate(-1)
	case 'j':
		a.navigate(1)
	case 'h':
		a.adjust(-1)
	case 'l':
		a.adjust(1)
	}
	return true
}

func (a *App) changeSpeed(delta float64) {
	s := a.settings
	s.MoveSpeed = vmath.RoundTo(vmath.Clamp(s.MoveSpeed+delta, parameter.MoveSpeedMin, parameter.MoveSpeedMax), 2)
	a.applySettings()
}

func (a *App) toggleSettings() {
	if a.settingsOpen {
		a.settingsOpen = false
		a.refocus()
		return
	}
	a.settingsOpen = true
	a.mode = core.ModeSettings
}

func (a *App) togglePicker() {
	if a.pickerOpen {
		a.pickerOpen = false
		a.refocus()
		return
	}
	a.pickerOpen = true
	a.picker.Focus(a.fonts.Names(), a.settings.SelectedFont)
	a.mode = core.ModeFontPicker
}

// refocus hands input to whichever panel is still open
func (a *App) refocus() {
	switch {
	case a.pickerOpen:
		a.mode = core.ModeFontPicker
	case a.settingsOpen:
		a.mode = core.ModeSettings
	default:
		a.mode = core.ModeClock
	}
}

func (a *App) cycleFocus() {
	switch {
	case a.mode == core.ModeSettings && a.pickerOpen:
		a.mode = core.ModeFontPicker
	case a.mode == core.ModeFontPicker && a.settingsOpen:
		a.mode = core.ModeSettings
	}
}

// closeFocused closes the focused panel; with nothing open it quits
func (a *App) closeFocused() bool {
	switch a.mode {
	case core.ModeSettings:
		a.settingsOpen = false
	case core.ModeFontPicker:
		a.pickerOpen = false
	default:
		return false
	}
	a.refocus()
	return true
}

func (a *App) navigate(delta int) {
	switch a.mode {
	case core.ModeSettings:
		a.settingsView.Move(delta)
	case core.ModeFontPicker:
		a.picker.Move(delta, a.fonts.Names())
	}
}

func (a *App) adjust(delta int) {
	if a.mode != core.ModeSettings {
		return
	}
	a.settingsView.Adjust(a.settings, delta)
	log.Printf("settings: %s changed", a.settingsView.Label())
	a.applySettings()
}

func (a *App) activate() {
	switch a.mode {
	case core.ModeSettings:
		a.adjust(1)
	case core.ModeFontPicker:
		if name := a.picker.Selected(a.fonts.Names()); name != "" {
			a.settings.SelectedFont = name
			a.applySettings()
		}
	}
}
