package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/lightcycle/components"
	"github.com/lixenwraith/lightcycle/constants"
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/events"
	"github.com/lixenwraith/lightcycle/vmath"
)

// Arena is the bounded board: vehicles, power-ups lying on it, and armed bombs
// The vehicle slice is a borrowed view owned by Simulation and refreshed whenever it changes
type Arena struct {
	width, height int

	vehicles []*Vehicle
	powerUps []components.PowerUp
	bombs    []*components.Bomb
}

// NewArena creates an empty board
func NewArena(width, height int) (*Arena, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("arena %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Arena{
		width:  width,
		height: height,
	}, nil
}

func (a *Arena) Width() int {
	return a.width
}

func (a *Arena) Height() int {
	return a.height
}

// Bounds returns the board as an area anchored at the origin
func (a *Arena) Bounds() core.Area {
	return core.Area{Width: a.width, Height: a.height}
}

// SetVehicles replaces the borrowed vehicle view
func (a *Arena) SetVehicles(vehicles []*Vehicle) {
	a.vehicles = vehicles
}

// Vehicles returns the borrowed vehicle view, do not modify
func (a *Arena) Vehicles() []*Vehicle {
	return a.vehicles
}

// PowerUps returns a copy of the power-ups on the board
func (a *Arena) PowerUps() []components.PowerUp {
	out := make([]components.PowerUp, len(a.powerUps))
	copy(out, a.powerUps)
	return out
}

// Bombs returns a copy of the armed bombs
func (a *Arena) Bombs() []components.Bomb {
	out := make([]components.Bomb, len(a.bombs))
	for i, b := range a.bombs {
		out[i] = *b
	}
	return out
}

// ===== COLLISION =====

// Occupied reports whether c is covered by any visible trail
// The mover's own head is excluded since it is about to be replaced
func (a *Arena) Occupied(c core.Cell, mover *Vehicle) bool {
	for _, v := range a.vehicles {
		if !v.IsVisible {
			continue
		}
		if v == mover {
			if v.trail.BodyContains(c) {
				return true
			}
			continue
		}
		if v.trail.Contains(c) {
			return true
		}
	}
	return false
}

// IsSafe reports whether v may move onto c
// A shielded vehicle is always safe, on or off the board
func (a *Arena) IsSafe(v *Vehicle, c core.Cell) bool {
	if v.IsShieldActive {
		return true
	}
	if !vmath.AreaContains(a.Bounds(), c.X, c.Y) {
		return false
	}
	return !a.Occupied(c, v)
}

// ===== POWER-UPS =====

// AddPowerUp places p on the board at p.Location
func (a *Arena) AddPowerUp(p components.PowerUp) {
	a.powerUps = append(a.powerUps, p)
}

// SpawnPowerUp places a power-up of random kind on a random cell
// Cell is drawn before kind
func (a *Arena) SpawnPowerUp(rng *vmath.FastRand) components.PowerUp {
	cell := vmath.AreaRandomPoint(a.Bounds(), rng)
	p := components.PowerUp{
		Kind:     components.PowerKind(rng.Intn(components.PowerKindCount)),
		Location: cell,
	}
	a.AddPowerUp(p)
	return p
}

// TakePowerUpsAt removes and returns every power-up lying on c, in board order
func (a *Arena) TakePowerUpsAt(c core.Cell) []components.PowerUp {
	var taken []components.PowerUp
	kept := a.powerUps[:0]
	for _, p := range a.powerUps {
		if p.Location == c {
			taken = append(taken, p)
			continue
		}
		kept = append(kept, p)
	}
	clear(a.powerUps[len(kept):])
	a.powerUps = kept
	return taken
}

// ===== BOMBS =====

// PlaceBomb arms a bomb at c attributed to owner
func (a *Arena) PlaceBomb(c core.Cell, owner components.VehicleID) *components.Bomb {
	b := &components.Bomb{
		Location: c,
		Owner:    owner,
		Fuse:     constants.BombFuse,
	}
	a.bombs = append(a.bombs, b)
	return b
}

// AdvanceBombs runs every fuse by dt and removes the bombs that went off
// Returned bombs are no longer active; the caller applies their blasts in order
func (a *Arena) AdvanceBombs(dt time.Duration) []components.Bomb {
	var detonated []components.Bomb
	kept := a.bombs[:0]
	for _, b := range a.bombs {
		if b.Advance(dt) {
			detonated = append(detonated, *b)
			continue
		}
		kept = append(kept, b)
	}
	clear(a.bombs[len(kept):])
	a.bombs = kept
	return detonated
}

// Explode applies a bomb blast: every board cell within BombRadius on both axes
// Returns the vehicles destroyed by this blast
func (a *Arena) Explode(center core.Cell) []*Vehicle {
	blast := vmath.AreaClip(core.Square(center, constants.BombRadius), a.Bounds())
	var destroyed []*Vehicle
	for _, c := range blast.Cells() {
		destroyed = append(destroyed, a.DestroyAtLocation(c)...)
	}
	return destroyed
}

// DestroyAtLocation destroys vehicles whose head is on c, cuts trail segments on c,
// and removes power-ups on c
// A cut trail is regrown from its tail so it stays one connected piece
func (a *Arena) DestroyAtLocation(c core.Cell) []*Vehicle {
	var destroyed []*Vehicle
	for _, v := range a.vehicles {
		if v.Head() == c {
			if !v.IsDestroyed {
				v.destroy(events.CauseExplosion)
				destroyed = append(destroyed, v)
			}
			continue
		}
		if v.trail.RemoveBody(c) > 0 {
			v.trail.Regenerate()
		}
	}
	a.TakePowerUpsAt(c)
	return destroyed
}
