package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightcycle/components"
	"github.com/lixenwraith/lightcycle/engine"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(90, 95, 130)   // Muted slate
	RgbStatusBar  = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbWarning    = tcell.NewRGBColor(255, 60, 60)   // Alert red
	RgbShield     = tcell.NewRGBColor(120, 220, 255) // Ice blue
	RgbBomb       = tcell.NewRGBColor(255, 140, 0)   // Orange
	RgbBombBlink  = tcell.NewRGBColor(255, 255, 200) // Yellow-white flash
	RgbDestroyed  = tcell.NewRGBColor(90, 90, 90)    // Ash gray

	RgbPowerFuel       = tcell.NewRGBColor(80, 255, 120)
	RgbPowerShield     = RgbShield
	RgbPowerHyperSpeed = tcell.NewRGBColor(255, 255, 0)
	RgbPowerBomb       = RgbBomb

	RgbPlayer = tcell.NewRGBColor(0, 200, 255)
	RgbBots   = []tcell.Color{
		tcell.NewRGBColor(255, 80, 80),
		tcell.NewRGBColor(200, 120, 255),
		tcell.NewRGBColor(255, 200, 60),
		tcell.NewRGBColor(120, 255, 200),
	}
)

// VehicleColor returns the trail color of a vehicle, ash gray once destroyed
func VehicleColor(v *engine.Vehicle) tcell.Color {
	if v.IsDestroyed {
		return RgbDestroyed
	}
	if v.IsPlayer {
		return RgbPlayer
	}
	idx := int(v.ID-1) % len(RgbBots)
	if idx < 0 {
		idx = 0
	}
	return RgbBots[idx]
}

// PowerColor returns the board color of a power-up kind
func PowerColor(k components.PowerKind) tcell.Color {
	switch k {
	case components.PowerFuel:
		return RgbPowerFuel
	case components.PowerShield:
		return RgbPowerShield
	case components.PowerHyperSpeed:
		return RgbPowerHyperSpeed
	case components.PowerBomb:
		return RgbPowerBomb
	}
	return RgbStatusBar
}
