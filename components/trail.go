// @focus: #vehicle { trail }
package components

import "github.com/lixenwraith/lightcycle/core"

// Trail is the ordered set of cells a vehicle occupies, head first
// Holds at most limit+1 cells: the head plus up to limit body segments
type Trail struct {
	cells []core.Cell
	limit int
}

// NewTrail creates a trail from cells given head first
func NewTrail(limit int, cells ...core.Cell) *Trail {
	t := &Trail{
		cells: make([]core.Cell, 0, limit+1),
		limit: limit,
	}
	t.cells = append(t.cells, cells...)
	return t
}

// Limit returns the maximum number of body segments
func (t *Trail) Limit() int {
	return t.limit
}

func (t *Trail) Len() int {
	return len(t.cells)
}

// Head returns the current position, zero cell for an empty trail
func (t *Trail) Head() core.Cell {
	if len(t.cells) == 0 {
		return core.Cell{}
	}
	return t.cells[0]
}

// Tail returns the oldest segment
func (t *Trail) Tail() core.Cell {
	if len(t.cells) == 0 {
		return core.Cell{}
	}
	return t.cells[len(t.cells)-1]
}

// Cells returns a head-first copy
func (t *Trail) Cells() []core.Cell {
	out := make([]core.Cell, len(t.cells))
	copy(out, t.cells)
	return out
}

// Advance pushes a new head and drops the tail once the bound is exceeded
func (t *Trail) Advance(head core.Cell) {
	t.cells = append(t.cells, core.Cell{})
	copy(t.cells[1:], t.cells[:len(t.cells)-1])
	t.cells[0] = head
	if len(t.cells) > t.limit+1 {
		t.cells = t.cells[:t.limit+1]
	}
}

// Contains reports whether any cell, head included, equals c
func (t *Trail) Contains(c core.Cell) bool {
	for _, cell := range t.cells {
		if cell == c {
			return true
		}
	}
	return false
}

// BodyContains reports whether any non-head segment equals c
// The moving vehicle's own head is about to be replaced, so self-collision ignores it
func (t *Trail) BodyContains(c core.Cell) bool {
	for i := 1; i < len(t.cells); i++ {
		if t.cells[i] == c {
			return true
		}
	}
	return false
}

// RemoveBody deletes every non-head segment at c and returns how many were removed
func (t *Trail) RemoveBody(c core.Cell) int {
	if len(t.cells) < 2 {
		return 0
	}
	kept := t.cells[:1]
	for _, cell := range t.cells[1:] {
		if cell != c {
			kept = append(kept, cell)
		}
	}
	removed := len(t.cells) - len(kept)
	t.cells = kept
	return removed
}

// Regenerate duplicates the tail until the trail is back to limit cells
// Stacked duplicates are expected and render as a single segment
func (t *Trail) Regenerate() {
	if len(t.cells) == 0 {
		return
	}
	tail := t.Tail()
	for len(t.cells) < t.limit {
		t.cells = append(t.cells, tail)
	}
}
