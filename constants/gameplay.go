// @focus: #constants { gameplay }
package constants

import "time"

// Trail
const (
	// MaxTrailLength is the number of body segments kept behind the head
	MaxTrailLength = 3

	// InitialTrailLength is the straight starting trail including the head
	InitialTrailLength = 4
)

// Fuel
const (
	// MaxFuel is the fuel ceiling and starting level
	MaxFuel = 100

	// FuelMovesPerUnit is the number of player moves that burn one unit of fuel
	FuelMovesPerUnit = 5

	// FuelRefill is the amount restored by a Fuel power-up
	FuelRefill = 20
)

// Speed
const (
	// BaseSpeed is the starting number of move sub-steps per tick
	BaseSpeed = 1

	// HyperSpeedBonus is added to base speed while HyperSpeed is active
	HyperSpeedBonus = 1
)

// Timed effects and entities
const (
	// ShieldDuration is how long a Shield activation ignores collisions
	ShieldDuration = 7 * time.Second

	// HyperSpeedDuration is how long a HyperSpeed activation lasts
	HyperSpeedDuration = 7 * time.Second

	// BombFuse is the time from placement to detonation
	BombFuse = 3 * time.Second

	// BombRadius is the half-side of the square blast area (9x9 at radius 4)
	BombRadius = 4

	// DestroyedGracePeriod is how long a destroyed vehicle stays visible
	DestroyedGracePeriod = 2 * time.Second

	// PowerUpSpawnInterval is the accumulated tick time between power-up spawns
	PowerUpSpawnInterval = 5 * time.Second
)
