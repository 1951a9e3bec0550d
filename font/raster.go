package font

import (
	"github.com/mattn/go-runewidth"
)

// Block characters used when painting pixels into cells
const (
	RuneFull  = '█'
	RuneUpper = '▀'
	RuneLower = '▄'
)

// Raster is a grid of terminal cells, row-major; zero runes are transparent
type Raster struct {
	Width, Height int
	Cells         []rune
}

// At returns the rune at cell (x, y), zero when outside or empty
func (r Raster) At(x, y int) rune {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return 0
	}
	return r.Cells[y*r.Width+x]
}

// Empty reports whether the raster has no cells
func (r Raster) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

func newRaster(w, h int) Raster {
	return Raster{Width: w, Height: h, Cells: make([]rune, w*h)}
}

// Rasterize renders text with face, each face pixel scaled by scale (minimum 1)
func Rasterize(face Face, text string, scale int) Raster {
	if text == "" {
		return Raster{}
	}
	scale = max(scale, 1)
	style := face.Style()
	if style.Text {
		return rasterizeText(text)
	}

	glyphs := make([]Bitmap, 0, len(text))
	width, height := 0, 0
	for i, r := range []rune(text) {
		g := face.Glyph(r)
		if i > 0 {
			width += style.Spacing
		}
		width += g.Width
		height = max(height, g.Height)
		glyphs = append(glyphs, g)
	}

	// Compose the unscaled pixel grid
	pixels := Bitmap{Width: width, Height: height, Bits: make([]bool, width*height)}
	offset := 0
	for _, g := range glyphs {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.At(x, y) {
					pixels.Bits[y*width+offset+x] = true
				}
			}
		}
		offset += g.Width + style.Spacing
	}

	pw := max(style.PixelWidth, 1) * scale
	rows := height * scale
	out := newRaster(width*pw, rows)
	if style.HalfBlock {
		out = newRaster(width*pw, (rows+1)/2)
	}

	for cy := 0; cy < out.Height; cy++ {
		for cx := 0; cx < out.Width; cx++ {
			px := cx / pw
			var ch rune
			if style.HalfBlock {
				top := pixels.At(px, (cy*2)/scale)
				bottom := cy*2+1 < rows && pixels.At(px, (cy*2+1)/scale)
				switch {
				case top && bottom:
					ch = RuneFull
				case top:
					ch = RuneUpper
				case bottom:
					ch = RuneLower
				}
			} else if pixels.At(px, cy/scale) {
				ch = RuneFull
			}
			out.Cells[cy*out.Width+cx] = ch
		}
	}
	return out
}

// rasterizeText lays runes on one row; wide runes leave a zero continuation cell
func rasterizeText(text string) Raster {
	out := newRaster(runewidth.StringWidth(text), 1)
	x := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		out.Cells[x] = r
		x += w
	}
	return out
}
