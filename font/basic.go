package font

import (
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// maskFace rasterizes glyphs from an x/image font face, drawn with half blocks
type maskFace struct {
	name   string
	face   xfont.Face
	width  int
	height int
	ascent int
}

// Basic is the 7x13 X11 misc-fixed face
var Basic Face = NewMaskFace("basic", basicfont.Face7x13,
	basicfont.Face7x13.Advance, basicfont.Face7x13.Ascent+basicfont.Face7x13.Descent, basicfont.Face7x13.Ascent)

// NewMaskFace wraps any fixed-cell x/image face
func NewMaskFace(name string, face xfont.Face, width, height, ascent int) Face {
	return &maskFace{name: name, face: face, width: width, height: height, ascent: ascent}
}

func (f *maskFace) Name() string { return f.name }

func (f *maskFace) Style() Style {
	return Style{PixelWidth: 1, HalfBlock: true}
}

func (f *maskFace) Glyph(r rune) Bitmap {
	b := Bitmap{Width: f.width, Height: f.height, Bits: make([]bool, f.width*f.height)}

	dot := fixed.P(0, f.ascent)
	dr, mask, maskp, _, ok := f.face.Glyph(dot, r)
	if !ok || mask == nil {
		return b
	}

	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if x < 0 || y < 0 || x >= f.width || y >= f.height {
				continue
			}
			p := image.Pt(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y)
			_, _, _, a := mask.At(p.X, p.Y).RGBA()
			b.Bits[y*f.width+x] = a > 0x7fff
		}
	}
	return b
}
