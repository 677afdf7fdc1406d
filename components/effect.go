// @focus: #lifecycle { effect }
package components

import "time"

// EffectKind identifies a timed modifier that must be reverted on expiry
type EffectKind uint8

const (
	EffectShield EffectKind = iota
	EffectHyperSpeed
)

func (k EffectKind) String() string {
	switch k {
	case EffectShield:
		return "shield"
	case EffectHyperSpeed:
		return "hyperspeed"
	}
	return "unknown"
}

// Effect is one activation of a timed modifier
// Decremented by the simulation tick, so expiry is ordered against movement
type Effect struct {
	Kind      EffectKind
	Remaining time.Duration
}

// Advance consumes dt and reports whether the effect has run out
func (e *Effect) Advance(dt time.Duration) bool {
	e.Remaining -= dt
	return e.Remaining <= 0
}
