package font

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileFace is a face decoded from a YAML glyph file
type fileFace struct {
	name   string
	style  Style
	glyphs map[rune]Bitmap
	blank  Bitmap
}

// faceFile is the on-disk layout of a glyph face:
//
//	name: thin
//	pixel_width: 1
//	spacing: 1
//	glyphs:
//	  "0": ["##", "#.#", ...]
type faceFile struct {
	Name       string              `yaml:"name"`
	PixelWidth int                 `yaml:"pixel_width"`
	HalfBlock  bool                `yaml:"half_block"`
	Spacing    int                 `yaml:"spacing"`
	Glyphs     map[string][]string `yaml:"glyphs"`
}

// LoadFile reads a YAML glyph face from path
func LoadFile(path string) (Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML glyph face
func Parse(data []byte) (Face, error) {
	var ff faceFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("failed to parse glyph file: %w", err)
	}

	name := strings.TrimSpace(ff.Name)
	if name == "" {
		return nil, fmt.Errorf("glyph file has no name")
	}
	if len(ff.Glyphs) == 0 {
		return nil, fmt.Errorf("glyph file %q defines no glyphs", name)
	}
	if ff.PixelWidth < 0 || ff.Spacing < 0 {
		return nil, fmt.Errorf("glyph file %q has negative metrics", name)
	}

	face := &fileFace{
		name: name,
		style: Style{
			PixelWidth: max(ff.PixelWidth, 1),
			HalfBlock:  ff.HalfBlock,
			Spacing:    ff.Spacing,
		},
		glyphs: make(map[rune]Bitmap, len(ff.Glyphs)),
	}

	height, width := -1, 0
	for key, rows := range ff.Glyphs {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("glyph file %q: key %q is not a single rune", name, key)
		}
		if height >= 0 && len(rows) != height {
			return nil, fmt.Errorf("glyph file %q: glyph %q has %d rows, want %d", name, key, len(rows), height)
		}
		height = len(rows)
		b := ParseBitmap(rows...)
		width = max(width, b.Width)
		face.glyphs[runes[0]] = b
	}
	face.blank = Bitmap{Width: width, Height: height, Bits: make([]bool, width*height)}
	return face, nil
}

func (f *fileFace) Name() string { return f.name }

func (f *fileFace) Style() Style { return f.style }

func (f *fileFace) Glyph(r rune) Bitmap {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.blank
}
