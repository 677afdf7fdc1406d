package events

import (
	"github.com/lixenwraith/lightcycle/components"
	"github.com/lixenwraith/lightcycle/core"
)

// EventType represents the type of game event
type EventType int

const (
	// EventVehicleDestroyed signals a vehicle transition to Destroyed
	// Trigger: fuel exhaustion, fatal collision, bomb blast on the head
	// Payload: *VehicleDestroyedPayload
	EventVehicleDestroyed EventType = iota

	// EventVehicleRemoved signals a destroyed bot was pruned after its grace period
	// Payload: nil
	EventVehicleRemoved

	// EventPowerUpSpawned signals a new power-up on the board
	// Trigger: spawn interval elapsed | Payload: *PowerUpPayload
	EventPowerUpSpawned

	// EventPowerUpCollected signals a pickup into a vehicle inventory
	// Payload: *PowerUpPayload
	EventPowerUpCollected

	// EventPowerActivated signals the top of an inventory was consumed
	// Payload: *PowerUpPayload
	EventPowerActivated

	// EventEffectExpired signals a timed Shield or HyperSpeed revert
	// Payload: *EffectExpiredPayload
	EventEffectExpired

	// EventBombPlaced signals a Bomb power-up armed a bomb at the head
	// Payload: *BombPayload
	EventBombPlaced

	// EventBombExploded signals detonation, emitted before area damage is applied
	// Payload: *BombPayload
	EventBombExploded
)

func (t EventType) String() string {
	switch t {
	case EventVehicleDestroyed:
		return "vehicle_destroyed"
	case EventVehicleRemoved:
		return "vehicle_removed"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventPowerActivated:
		return "power_activated"
	case EventEffectExpired:
		return "effect_expired"
	case EventBombPlaced:
		return "bomb_placed"
	case EventBombExploded:
		return "bomb_exploded"
	}
	return "unknown"
}

// GameEvent is a record of something that happened during a tick
type GameEvent struct {
	Type    EventType
	Tick    uint64
	Vehicle components.VehicleID // -1 when no vehicle is involved
	Cell    core.Cell
	Payload any
}
