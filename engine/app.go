// Package engine runs the clock: it formats the time, lays it out, advances
// motion, draws the frame, and applies user input between ticks.
package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift-clock/audio"
	"github.com/lixenwraith/drift-clock/core"
	"github.com/lixenwraith/drift-clock/font"
	"github.com/lixenwraith/drift-clock/motion"
	"github.com/lixenwraith/drift-clock/parameter"
	"github.com/lixenwraith/drift-clock/render"
	"github.com/lixenwraith/drift-clock/settings"
	"github.com/lixenwraith/drift-clock/status"
	"github.com/lixenwraith/drift-clock/timefmt"
)

// Options wires an App; zero fields get working defaults
type Options struct {
	Settings *settings.Settings
	Store    *settings.Store // nil disables persistence
	Rand     motion.RandSource
	Clock    TimeProvider
	Player   audio.Player // nil is silent
	Fonts    *font.Registry
	Metrics  render.Metrics
	Color    *motion.Color // Initial clock color
	Stats    *status.Registry
}

// App owns all clock state; every method must be called from the loop goroutine
type App struct {
	screen   tcell.Screen
	renderer *render.Renderer
	metrics  render.Metrics

	settings *settings.Settings
	store    *settings.Store
	motion   *motion.Engine
	fonts    *font.Registry
	clock    TimeProvider
	player   audio.Player

	mode         core.Mode
	settingsOpen bool
	pickerOpen   bool
	settingsView *SettingsPanel
	picker       *FontPicker

	last   motion.Snapshot
	layout render.ClockLayout

	stats      *status.Registry
	frames     *atomic.Int64
	collisions *atomic.Int64
	bans       *atomic.Int64
	fontCount  *atomic.Int64
	tickMicros *status.AtomicFloat
}

// NewApp builds the clock around an initialized screen
func NewApp(screen tcell.Screen, opts Options) *App {
	if opts.Settings == nil {
		opts.Settings = settings.Default()
	}
	if opts.Clock == nil {
		opts.Clock = NewSystemTimeProvider()
	}
	if opts.Fonts == nil {
		opts.Fonts = font.NewRegistry()
	}
	if opts.Metrics == (render.Metrics{}) {
		opts.Metrics = render.DefaultMetrics
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}

	s := opts.Settings
	a := &App{
		screen:   screen,
		renderer: render.NewRenderer(screen, opts.Metrics),
		metrics:  opts.Metrics,
		settings: s,
		store:    opts.Store,
		fonts:    opts.Fonts,
		clock:    opts.Clock,
		player:   opts.Player,
		picker:   &FontPicker{},

		stats:      opts.Stats,
		frames:     opts.Stats.Ints.Get(status.Frames),
		collisions: opts.Stats.Ints.Get(status.Collisions),
		bans:       opts.Stats.Ints.Get(status.Bans),
		fontCount:  opts.Stats.Ints.Get(status.Fonts),
		tickMicros: opts.Stats.Floats.Get(status.TickMicros),
	}
	a.fontCount.Store(int64(len(a.fonts.Names())))
	a.settingsView = NewSettingsPanel(a.fonts.Names)
	a.motion = motion.New(motion.Config{
		Speed:  s.MoveSpeed,
		Policy: s.Policy(),
		Bounds: s.Bounds(),
		Bans:   s.Bans(),
		Color:  opts.Color,
	}, opts.Rand)
	return a
}

// Motion exposes the motion engine
func (a *App) Motion() *motion.Engine { return a.motion }

// Settings exposes the live preferences
func (a *App) Settings() *settings.Settings { return a.settings }

// Stats exposes the runtime counters
func (a *App) Stats() *status.Registry { return a.stats }

// Mode returns which panel owns input
func (a *App) Mode() core.Mode { return a.mode }

// ReservedColumns is the total width of open side panels in cells
func (a *App) ReservedColumns() int {
	w := 0
	if a.settingsOpen {
		w += parameter.SettingsPanelWidth
	}
	if a.pickerOpen {
		w += parameter.FontPickerWidth
	}
	return w
}

// AddFont registers a discovered face
func (a *App) AddFont(f font.Face) {
	a.fonts.Register(f)
	a.fontCount.Store(int64(len(a.fonts.Names())))
}

// SetZones hands the zone list to the settings panel
func (a *App) SetZones(zones []string) {
	a.settingsView.SetZones(zones)
}

// Tick runs one frame at instant now and returns the motion result
func (a *App) Tick(now time.Time) motion.Snapshot {
	start := time.Now()
	s := a.settings
	display := timefmt.Format(now, s.Flags())
	if s.ZoneStyle == settings.ZoneStyleAbbrev {
		display.TimeZone = timefmt.ZoneAbbrevLabel(s.TimeZone, now)
	}

	a.layout = render.Layout(display, render.LayoutStyle{
		Face:      a.fonts.Lookup(s.SelectedFont),
		Scale:     s.GlyphScale(),
		AMPMScale: s.AMPMScale,
		AMPMSide:  timefmt.ParseAMPMSide(s.AMPMSide),
		ShowZone:  s.ShowTimeZoneText,
	})

	cols, rows := a.renderer.Viewport()
	snap := a.motion.Advance(
		a.metrics.Size(cols, rows),
		a.metrics.Width(a.ReservedColumns()),
		a.layout.Measure(a.metrics),
	)
	if snap.Collided {
		a.collisions.Add(1)
		a.play(core.SoundBounce)
	}
	a.last = snap
	a.frames.Add(1)

	frame := render.Frame{
		Clock:    a.layout,
		Position: snap.Position,
		Color:    snap.Color.RGB,
		Panels:   a.panels(),
	}
	if s.ShowDebugInfo {
		frame.Debug = a.debugLine(now)
	}
	a.renderer.RenderFrame(frame)
	a.tickMicros.Smooth(float64(time.Since(start).Microseconds()), 0.1)
	return snap
}

// panels lists open panels, rightmost first
func (a *App) panels() []render.Panel {
	var out []render.Panel
	if a.settingsOpen {
		out = append(out, render.Panel{
			Content: a.settingsView.Content(a.settings),
			Width:   parameter.SettingsPanelWidth,
		})
	}
	if a.pickerOpen {
		out = append(out, render.Panel{
			Content: a.picker.Content(a.fonts.Names(), a.settings.SelectedFont),
			Width:   parameter.FontPickerWidth,
		})
	}
	return out
}

func (a *App) debugLine(now time.Time) string {
	pos, _ := a.motion.Position()
	vel := a.motion.Velocity()
	return fmt.Sprintf("%s  %s  pos %.0f,%.0f  vel %.1f,%.1f  %s hue %.2f  banned [%s]  %s",
		timefmt.DebugTimestamp(now), a.mode, pos.X, pos.Y, vel.DX, vel.DY,
		a.last.Color.RGB.Hex(), a.last.Color.Hue, a.motion.Bans(), a.stats.Summary())
}

func (a *App) play(sound core.SoundType) {
	if a.player != nil && a.settings.Sound {
		a.player.Play(sound)
	}
}

// applySettings pushes preferences into the motion engine and persists them
func (a *App) applySettings() {
	s := a.settings
	s.Normalize()
	a.motion.SetSpeed(s.MoveSpeed)
	a.motion.SetPolicy(s.Policy())
	a.motion.SetBounds(s.Bounds())
	a.motion.SetBans(s.Bans())
	a.save()
}

func (a *App) save() {
	if a.store == nil {
		return
	}
	if err := a.store.Save(a.settings); err != nil {
		log.Printf("settings: %v", err)
	}
}

// BanCurrentColor bans the on-screen hue, recolors immediately and persists the list
func (a *App) BanCurrentColor() bool {
	if !a.motion.BanCurrentColor() {
		return false
	}
	a.settings.SetBans(a.motion.Bans())
	a.bans.Add(1)
	a.play(core.SoundBan)
	a.save()
	log.Printf("banned hue, list now [%s]", a.settings.HueBanList)
	return true
}

// Run drives the loop until quit, ctx cancellation or the screen closing.
// fontDir is scanned for extra faces in the background.
func (a *App) Run(ctx context.Context, fontDir string) error {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, parameter.EventQueueSize)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { a.screen.ChannelEvents(events, quit) })

	zones := make(chan []string, 1)
	core.Go(func() { zones <- timefmt.KnownZones() })

	fonts := font.Discover(ctx, fontDir)

	a.Tick(a.clock.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}

		case res, ok := <-fonts:
			if !ok {
				fonts = nil
				continue
			}
			if res.Err != nil {
				log.Printf("fonts: %v", res.Err)
				continue
			}
			a.AddFont(res.Face)
			log.Printf("fonts: loaded %q from %s", res.Face.Name(), res.Path)

		case list := <-zones:
			a.SetZones(list)
			zones = nil

		case <-ticker.C:
			a.Tick(a.clock.Now())
		}
	}
}
