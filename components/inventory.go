// @focus: #powerup { inventory }
package components

// Inventory is a LIFO stack of collected power-ups
// Stored bottom first, so the top is the last element
type Inventory struct {
	items []PowerUp
}

// Push places p on top
func (inv *Inventory) Push(p PowerUp) {
	inv.items = append(inv.items, p)
}

// Pop removes and returns the top power-up
func (inv *Inventory) Pop() (PowerUp, bool) {
	n := len(inv.items)
	if n == 0 {
		return PowerUp{}, false
	}
	p := inv.items[n-1]
	inv.items = inv.items[:n-1]
	return p, true
}

// Peek returns the top power-up without removing it
func (inv *Inventory) Peek() (PowerUp, bool) {
	n := len(inv.items)
	if n == 0 {
		return PowerUp{}, false
	}
	return inv.items[n-1], true
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Rotate sends the top to the bottom so the second item becomes the top
// [P1(top), P2, P3] becomes [P2(top), P3, P1]
func (inv *Inventory) Rotate() {
	n := len(inv.items)
	if n < 2 {
		return
	}
	top := inv.items[n-1]
	copy(inv.items[1:], inv.items[:n-1])
	inv.items[0] = top
}

// Items returns a copy ordered top first
func (inv *Inventory) Items() []PowerUp {
	out := make([]PowerUp, len(inv.items))
	for i, p := range inv.items {
		out[len(inv.items)-1-i] = p
	}
	return out
}
