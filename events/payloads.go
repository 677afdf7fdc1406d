package events

import "github.com/lixenwraith/lightcycle/components"

// DestroyCause records why a vehicle was destroyed
type DestroyCause int

const (
	CauseFuel DestroyCause = iota
	CauseCollision
	CauseExplosion
)

func (c DestroyCause) String() string {
	switch c {
	case CauseFuel:
		return "fuel"
	case CauseCollision:
		return "collision"
	case CauseExplosion:
		return "explosion"
	}
	return "unknown"
}

// VehicleDestroyedPayload carries the destruction cause
type VehicleDestroyedPayload struct {
	Cause    DestroyCause
	IsPlayer bool
}

// PowerUpPayload carries the power-up involved in spawn, pickup, or activation
type PowerUpPayload struct {
	PowerUp components.PowerUp
}

// EffectExpiredPayload carries the reverted effect kind
type EffectExpiredPayload struct {
	Kind components.EffectKind
}

// BombPayload carries the bomb owner for attribution
type BombPayload struct {
	Owner components.VehicleID
}
