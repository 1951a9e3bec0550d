package font

// plainFace draws each rune as itself, one cell tall
type plainFace struct{}

// Plain is the text face, also used for labels too small for glyphs
var Plain Face = plainFace{}

func (plainFace) Name() string { return "plain" }

func (plainFace) Style() Style { return Style{Text: true} }

func (plainFace) Glyph(rune) Bitmap {
	return Bitmap{Width: 1, Height: 1, Bits: []bool{true}}
}
