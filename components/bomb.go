// @focus: #bomb { fuse }
package components

import (
	"time"

	"github.com/lixenwraith/lightcycle/core"
)

// VehicleID identifies a vehicle without holding a reference to it
type VehicleID int

// Bomb is an armed explosive counting down on the board
// Owner is attribution only; the vehicle may be gone by detonation
type Bomb struct {
	Location core.Cell
	Owner    VehicleID
	Elapsed  time.Duration
	Fuse     time.Duration
	Exploded bool
}

// Advance adds dt to the fuse clock and reports whether this call armed the explosion
// Returns true at most once per bomb
func (b *Bomb) Advance(dt time.Duration) bool {
	if b.Exploded {
		return false
	}
	b.Elapsed += dt
	if b.Elapsed >= b.Fuse {
		b.Exploded = true
		return true
	}
	return false
}

// Remaining returns time left until detonation, never negative
func (b *Bomb) Remaining() time.Duration {
	if b.Elapsed >= b.Fuse {
		return 0
	}
	return b.Fuse - b.Elapsed
}
