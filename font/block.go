package font

// blockFace is a 3x5 pixel font covering digits, colon, A, P, M and space
type blockFace struct {
	glyphs map[rune]Bitmap
	blank  Bitmap
}

// Block is the default face
var Block Face = newBlockFace()

func newBlockFace() *blockFace {
	return &blockFace{
		blank: ParseBitmap("...", "...", "...", "...", "..."),
		glyphs: map[rune]Bitmap{
			'0': ParseBitmap("###", "#.#", "#.#", "#.#", "###"),
			'1': ParseBitmap(".#.", "##.", ".#.", ".#.", "###"),
			'2': ParseBitmap("###", "..#", "###", "#..", "###"),
			'3': ParseBitmap("###", "..#", "###", "..#", "###"),
			'4': ParseBitmap("#.#", "#.#", "###", "..#", "..#"),
			'5': ParseBitmap("###", "#..", "###", "..#", "###"),
			'6': ParseBitmap("###", "#..", "###", "#.#", "###"),
			'7': ParseBitmap("###", "..#", "..#", "..#", "..#"),
			'8': ParseBitmap("###", "#.#", "###", "#.#", "###"),
			'9': ParseBitmap("###", "#.#", "###", "..#", "###"),
			':': ParseBitmap(".", "#", ".", "#", "."),
			'A': ParseBitmap("###", "#.#", "###", "#.#", "#.#"),
			'P': ParseBitmap("###", "#.#", "###", "#..", "#.."),
			'M': ParseBitmap("#...#", "##.##", "#.#.#", "#...#", "#...#"),
			' ': ParseBitmap("...", "...", "...", "...", "..."),
		},
	}
}

func (f *blockFace) Name() string { return "block" }

func (f *blockFace) Style() Style {
	return Style{PixelWidth: 2, Spacing: 1}
}

func (f *blockFace) Glyph(r rune) Bitmap {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.blank
}
