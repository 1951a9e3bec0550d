package core

// Area represents a rectangular region in terminal cells
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Right returns the first column past the area
func (a Area) Right() int { return a.X + a.Width }

// Bottom returns the first row past the area
func (a Area) Bottom() int { return a.Y + a.Height }

// Contains checks if the cell is within the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.Right() && y >= a.Y && y < a.Bottom()
}
