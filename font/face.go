// Package font provides the glyph faces used to draw the clock large in a
// terminal, and rasterizes strings into cell grids.
package font

import (
	"strings"
	"sync"
)

// Bitmap is a monochrome glyph, row-major
type Bitmap struct {
	Width, Height int
	Bits          []bool
}

// At reports whether the pixel is set; out-of-range pixels are unset
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.Bits[y*b.Width+x]
}

// ParseBitmap builds a bitmap from rows where any non-space, non-'.' rune is set
func ParseBitmap(rows ...string) Bitmap {
	width := 0
	for _, r := range rows {
		width = max(width, len([]rune(r)))
	}
	b := Bitmap{Width: width, Height: len(rows), Bits: make([]bool, width*len(rows))}
	for y, row := range rows {
		for x, ch := range []rune(row) {
			b.Bits[y*width+x] = ch != ' ' && ch != '.'
		}
	}
	return b
}

// Style describes how face pixels map onto terminal cells
type Style struct {
	PixelWidth int  // Cells per pixel horizontally
	HalfBlock  bool // Two pixel rows share one cell using half blocks
	Spacing    int  // Blank pixels between glyphs
	Text       bool // Glyphs are the runes themselves, one cell each
}

// Face is a named glyph set
type Face interface {
	Name() string
	Style() Style
	// Glyph returns the bitmap for r, falling back to a blank glyph of the face's size
	Glyph(r rune) Bitmap
}

// Registry holds the faces available to the settings panel, safe for concurrent use
type Registry struct {
	mu    sync.RWMutex
	faces map[string]Face
	order []string
}

// NewRegistry creates a registry with the built-in faces
func NewRegistry() *Registry {
	r := &Registry{faces: make(map[string]Face)}
	for _, f := range Builtin() {
		r.Register(f)
	}
	return r
}

// Builtin returns the faces compiled into the binary
func Builtin() []Face {
	return []Face{Block, Basic, Plain}
}

// Register adds or replaces a face by name
func (r *Registry) Register(f Face) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := strings.ToLower(f.Name())
	if _, exists := r.faces[name]; !exists {
		r.order = append(r.order, name)
	}
	r.faces[name] = f
}

// Lookup returns the named face, or the block face when unknown
func (r *Registry) Lookup(name string) Face {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.faces[strings.ToLower(name)]; ok {
		return f
	}
	return Block
}

// Has reports whether a face is registered under name
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.faces[strings.ToLower(name)]
	return ok
}

// Names lists registered faces in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
