package core

import "fmt"

// Cell is an integer grid coordinate
// X grows to the right, Y grows downward (screen coordinates)
type Cell struct {
	X, Y int
}

// C is a shorthand constructor
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring cell one unit away in direction d
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether c lies within [0,width) x [0,height)
func (c Cell) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}
