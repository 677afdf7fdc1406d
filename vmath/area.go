package vmath

import "github.com/lixenwraith/lightcycle/core"

// AreaContains checks if point is within area
func AreaContains(a core.Area, x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// AreaRandomPoint returns a uniformly random cell within area using provided RNG
func AreaRandomPoint(a core.Area, rng *FastRand) core.Cell {
	x := a.X
	y := a.Y
	if a.Width > 1 {
		x += rng.Intn(a.Width)
	}
	if a.Height > 1 {
		y += rng.Intn(a.Height)
	}
	return core.Cell{X: x, Y: y}
}

// AreaClip returns the intersection of a and bounds, empty if they do not overlap
func AreaClip(a, bounds core.Area) core.Area {
	x0 := max(a.X, bounds.X)
	y0 := max(a.Y, bounds.Y)
	x1 := min(a.X+a.Width, bounds.X+bounds.Width)
	y1 := min(a.Y+a.Height, bounds.Y+bounds.Height)
	if x1 <= x0 || y1 <= y0 {
		return core.Area{X: x0, Y: y0}
	}
	return core.Area{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
