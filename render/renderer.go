package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/drift-clock/core"
)

// Panel is a side panel docked to the right edge
type Panel struct {
	Content *core.PanelContent
	Width   int
}

// Frame is everything drawn in one tick
type Frame struct {
	Clock    ClockLayout
	Position core.Point2 // Clock center in engine units
	Color    core.RGB
	Panels   []Panel // First panel docks rightmost
	Debug    string
}

// Renderer draws frames on a terminal screen
type Renderer struct {
	screen  tcell.Screen
	metrics Metrics
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen, metrics Metrics) *Renderer {
	return &Renderer{screen: screen, metrics: metrics}
}

// Metrics returns the cell/unit conversion in use
func (r *Renderer) Metrics() Metrics { return r.metrics }

// Viewport returns the screen size in cells
func (r *Renderer) Viewport() (cols, rows int) {
	return r.screen.Size()
}

// RenderFrame draws f and flushes it to the terminal
func (r *Renderer) RenderFrame(f Frame) {
	bg := Style(RgbPanelText, RgbBackground)
	r.screen.Fill(' ', bg)

	r.drawClock(f)

	cols, rows := r.screen.Size()
	right := cols
	for _, p := range f.Panels {
		if p.Width <= 0 {
			continue
		}
		left := max(right-p.Width, 0)
		r.drawPanel(left, right-left, rows, p.Content)
		right = left
	}

	if f.Debug != "" && rows > 0 {
		r.drawText(0, rows-1, right, f.Debug, Style(RgbDebugText, RgbBackground))
	}

	r.screen.Show()
}

func (r *Renderer) drawClock(f Frame) {
	cols, rows := r.screen.Size()
	bounds := core.Area{Width: cols, Height: rows}
	size := f.Clock.Measure(r.metrics)
	ox, oy := r.metrics.Cell(core.Point2{X: f.Position.X - size.Width/2, Y: f.Position.Y - size.Height/2})

	for _, part := range f.Clock.Parts {
		fg := f.Color
		if part.Dim {
			fg = fg.Scale(zoneDimFactor)
		}
		style := Style(fg, RgbBackground)
		ras := part.Raster
		for y := 0; y < ras.Height; y++ {
			sy := oy + part.Y + y
			for x := 0; x < ras.Width; x++ {
				ch := ras.At(x, y)
				sx := ox + part.X + x
				if ch == 0 || !bounds.Contains(sx, sy) {
					continue
				}
				r.screen.SetContent(sx, sy, ch, nil, style)
			}
		}
	}
}

func (r *Renderer) drawPanel(left, width, rows int, content *core.PanelContent) {
	area := core.Area{X: left, Width: width, Height: rows}
	base := Style(RgbPanelText, RgbPanel)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			r.screen.SetContent(x, y, ' ', nil, base)
		}
		r.screen.SetContent(area.X, y, '│', nil, Style(RgbPanelBorder, RgbPanel))
	}
	if content == nil {
		return
	}

	inner := area.X + 2
	limit := area.Right() - 1
	y := 0
	if content.Title != "" {
		r.drawText(inner, y, limit, content.Title, Style(RgbPanelTitle, RgbPanel).Bold(true))
		y += 2
	}

	for _, item := range content.Items {
		if y >= rows {
			return
		}
		switch it := item.(type) {
		case core.PanelCard:
			y = r.drawCard(inner, limit, y, rows, it)
		case core.PanelList:
			y = r.drawList(inner, limit, y, rows, it)
		}
		y++
	}
}

func (r *Renderer) drawCard(x, limit, y, rows int, card core.PanelCard) int {
	if card.Title != "" {
		r.drawText(x, y, limit, card.Title, Style(RgbPanelMuted, RgbPanel))
		y++
	}
	for _, e := range card.Entries {
		if y >= rows {
			break
		}
		style := Style(RgbPanelText, RgbPanel)
		if e.Selected {
			style = Style(RgbPanelTitle, RgbPanelCursor)
			for cx := x - 1; cx < limit; cx++ {
				r.screen.SetContent(cx, y, ' ', nil, style)
			}
		}
		r.drawText(x, y, limit, e.Key, style)
		vx := max(limit-runewidth.StringWidth(e.Value), x)
		r.drawText(vx, y, limit, e.Value, style)
		y++
	}
	return y
}

func (r *Renderer) drawList(x, limit, y, rows int, list core.PanelList) int {
	visible := rows - y
	if visible <= 0 {
		return y
	}
	start := 0
	if list.Selected >= visible {
		start = list.Selected - visible + 1
	}
	for i := start; i < len(list.Lines) && y < rows; i++ {
		style := Style(RgbPanelText, RgbPanel)
		if i == list.Selected {
			style = Style(RgbPanelTitle, RgbPanelCursor)
			for cx := x - 1; cx < limit; cx++ {
				r.screen.SetContent(cx, y, ' ', nil, style)
			}
		}
		if i == list.Active {
			r.screen.SetContent(x, y, '●', nil, style.Foreground(Color(RgbPanelActive)))
		}
		r.drawText(x+2, y, limit, list.Lines[i], style)
		y++
	}
	return y
}

// drawText writes s from (x, y) and stops before limit, returns the next column
func (r *Renderer) drawText(x, y, limit int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}
