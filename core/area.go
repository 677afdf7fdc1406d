package core

// Area represents a rectangular region of the board
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions, empty when either is <= 0
}

// Empty reports whether the area covers no cells
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Square returns the (2*radius+1)-sided square centered on c
func Square(c Cell, radius int) Area {
	return Area{
		X:      c.X - radius,
		Y:      c.Y - radius,
		Width:  2*radius + 1,
		Height: 2*radius + 1,
	}
}

// Cells returns every cell of the area in row-major order
func (a Area) Cells() []Cell {
	if a.Empty() {
		return nil
	}
	cells := make([]Cell, 0, a.Width*a.Height)
	for y := a.Y; y < a.Y+a.Height; y++ {
		for x := a.X; x < a.X+a.Width; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}
