package engine

import (
	"time"

	"github.com/lixenwraith/lightcycle/components"
	"github.com/lixenwraith/lightcycle/constants"
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/events"
	"github.com/lixenwraith/lightcycle/vmath"
)

// Vehicle is a light cycle: a trail, fuel, speed, shield, and a power-up stack
//
// Lifecycle: Alive -> Destroyed (visible) -> Destroyed (invisible) after DestroyedGracePeriod
type Vehicle struct {
	ID       components.VehicleID
	IsPlayer bool

	Direction    core.Direction
	Fuel         int
	BaseSpeed    int
	CurrentSpeed int // Sub-steps this tick, synced to BaseSpeed at the end of every tick

	IsDestroyed    bool
	IsVisible      bool
	IsShieldActive bool
	DestroyCause   events.DestroyCause
	DestroyedFor   time.Duration

	MovesSinceFuelDecrease int

	trail     *components.Trail
	inventory components.Inventory
	effects   []components.Effect
}

// NewVehicle creates a vehicle heading dir with a straight trail behind head
// The trail holds min(InitialTrailLength, trailLimit+1) cells
func NewVehicle(id components.VehicleID, isPlayer bool, head core.Cell, dir core.Direction, trailLimit int) *Vehicle {
	n := min(constants.InitialTrailLength, trailLimit+1)
	cells := make([]core.Cell, 0, n)
	back := dir.Opposite()
	c := head
	for i := 0; i < n; i++ {
		cells = append(cells, c)
		c = c.Step(back)
	}

	return &Vehicle{
		ID:           id,
		IsPlayer:     isPlayer,
		Direction:    dir,
		Fuel:         constants.MaxFuel,
		BaseSpeed:    constants.BaseSpeed,
		CurrentSpeed: constants.BaseSpeed,
		IsVisible:    true,
		trail:        components.NewTrail(trailLimit, cells...),
	}
}

func (v *Vehicle) Trail() *components.Trail {
	return v.trail
}

func (v *Vehicle) Head() core.Cell {
	return v.trail.Head()
}

func (v *Vehicle) Inventory() *components.Inventory {
	return &v.inventory
}

// Effects returns a copy of the pending timed effects
func (v *Vehicle) Effects() []components.Effect {
	out := make([]components.Effect, len(v.effects))
	copy(out, v.effects)
	return out
}

// IsAlive reports whether the vehicle can still move
func (v *Vehicle) IsAlive() bool {
	return !v.IsDestroyed
}

func (v *Vehicle) destroy(cause events.DestroyCause) {
	if v.IsDestroyed {
		return
	}
	v.IsDestroyed = true
	v.DestroyCause = cause
	v.DestroyedFor = 0
}

// Move resolves one sub-step against the current arena state
// Returns true if the head advanced; false means the vehicle is (now) destroyed
func (v *Vehicle) Move(a *Arena, rng *vmath.FastRand) bool {
	if !v.IsAlive() {
		return false
	}
	if v.Fuel <= 0 {
		v.destroy(events.CauseFuel)
		return false
	}

	if !v.IsPlayer {
		v.ChooseSafeDirection(a, rng)
	}

	next := v.Head().Step(v.Direction)
	if !a.IsSafe(v, next) {
		if v.IsPlayer {
			v.destroy(events.CauseCollision)
			return false
		}
		// Second and last attempt for bots
		v.ChooseSafeDirection(a, rng)
		next = v.Head().Step(v.Direction)
		if !a.IsSafe(v, next) {
			v.destroy(events.CauseCollision)
			return false
		}
	}

	v.trail.Advance(next)

	if v.IsPlayer {
		v.MovesSinceFuelDecrease++
		if v.MovesSinceFuelDecrease >= constants.FuelMovesPerUnit {
			v.Fuel--
			v.MovesSinceFuelDecrease = 0
		}
	} else {
		v.Fuel = constants.MaxFuel
	}
	return true
}

// ChooseSafeDirection picks uniformly among the headings whose next cell is safe
// Leaves the direction unchanged when every heading is blocked
// One-step lookahead only: a bot can still drive into a dead end
func (v *Vehicle) ChooseSafeDirection(a *Arena, rng *vmath.FastRand) {
	var safe [len(core.Directions)]core.Direction
	n := 0
	head := v.Head()
	for _, d := range core.Directions {
		if a.IsSafe(v, head.Step(d)) {
			safe[n] = d
			n++
		}
	}
	if n == 0 {
		return
	}
	v.Direction = safe[rng.Intn(n)]
}

// UsePower pops the top power-up and applies it
// Destroyed vehicles keep their inventory but can no longer activate it
func (v *Vehicle) UsePower(a *Arena) (components.PowerUp, bool) {
	if v.IsDestroyed {
		return components.PowerUp{}, false
	}
	p, ok := v.inventory.Pop()
	if !ok {
		return components.PowerUp{}, false
	}

	switch p.Kind {
	case components.PowerFuel:
		v.Fuel = min(constants.MaxFuel, v.Fuel+constants.FuelRefill)
	case components.PowerShield:
		v.IsShieldActive = true
		v.effects = append(v.effects, components.Effect{
			Kind:      components.EffectShield,
			Remaining: constants.ShieldDuration,
		})
	case components.PowerHyperSpeed:
		v.BaseSpeed += constants.HyperSpeedBonus
		v.effects = append(v.effects, components.Effect{
			Kind:      components.EffectHyperSpeed,
			Remaining: constants.HyperSpeedDuration,
		})
	case components.PowerBomb:
		a.PlaceBomb(v.Head(), v.ID)
	}
	return p, true
}

// RotatePowers brings the second power-up to the top, the old top goes to the bottom
func (v *Vehicle) RotatePowers() {
	v.inventory.Rotate()
}

// advanceEffects counts down timed effects and reverts each expired one exactly once
// Runs for destroyed vehicles too; reverts are never cancelled
func (v *Vehicle) advanceEffects(dt time.Duration) []components.EffectKind {
	if len(v.effects) == 0 {
		return nil
	}

	var expired []components.EffectKind
	kept := v.effects[:0]
	for _, e := range v.effects {
		if e.Advance(dt) {
			expired = append(expired, e.Kind)
			if e.Kind == components.EffectHyperSpeed {
				v.BaseSpeed -= constants.HyperSpeedBonus
			}
			continue
		}
		kept = append(kept, e)
	}
	v.effects = kept

	// Overlapping shields: stay up while any activation is pending
	shield := false
	for _, e := range v.effects {
		if e.Kind == components.EffectShield {
			shield = true
			break
		}
	}
	for _, k := range expired {
		if k == components.EffectShield {
			v.IsShieldActive = shield
			break
		}
	}
	return expired
}

// advanceGrace counts destroyed time and hides the vehicle once the grace period ends
func (v *Vehicle) advanceGrace(dt time.Duration) {
	if !v.IsDestroyed || !v.IsVisible {
		return
	}
	v.DestroyedFor += dt
	if v.DestroyedFor >= constants.DestroyedGracePeriod {
		v.IsVisible = false
	}
}
