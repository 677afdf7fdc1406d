package core

// Direction is one of the four grid headings
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all headings in canonical order
// Bot direction selection enumerates in this order before drawing at random
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit offset of the heading
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
