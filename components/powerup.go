// @focus: #powerup { kind, board }
package components

import "github.com/lixenwraith/lightcycle/core"

// PowerKind identifies a collectible effect
type PowerKind uint8

const (
	PowerFuel PowerKind = iota
	PowerShield
	PowerHyperSpeed
	PowerBomb

	// PowerKindCount is the number of kinds, used for uniform random draws
	PowerKindCount = 4
)

func (k PowerKind) String() string {
	switch k {
	case PowerFuel:
		return "fuel"
	case PowerShield:
		return "shield"
	case PowerHyperSpeed:
		return "hyperspeed"
	case PowerBomb:
		return "bomb"
	}
	return "unknown"
}

// PowerUp is a collectible lying on the board or held in an inventory
// Location is only meaningful while it is on the board
type PowerUp struct {
	Kind     PowerKind
	Location core.Cell
}
