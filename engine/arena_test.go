package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/lightcycle/components"
	"github.com/lixenwraith/lightcycle/constants"
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/events"
	"github.com/lixenwraith/lightcycle/vmath"
)

func TestNewArena_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := NewArena(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewArena(%d,%d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestArenaIsSafe(t *testing.T) {
	mover := NewVehicle(0, true, core.C(5, 5), core.Up, constants.MaxTrailLength)
	other := NewVehicle(1, false, core.C(8, 5), core.Up, constants.MaxTrailLength)
	a := newTestArena(t, 10, 10, mover, other)

	tests := []struct {
		name string
		c    core.Cell
		want bool
	}{
		{"open cell", core.C(5, 4), true},
		{"own head", core.C(5, 5), true},
		{"own body", core.C(5, 6), false},
		{"other head", core.C(8, 5), false},
		{"other body", core.C(8, 7), false},
		{"off board", core.C(-1, 0), false},
		{"past far edge", core.C(10, 9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.IsSafe(mover, tt.c); got != tt.want {
				t.Errorf("IsSafe(%s) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestArena_TakePowerUpsAt(t *testing.T) {
	a := newTestArena(t, 10, 10)
	a.AddPowerUp(components.PowerUp{Kind: components.PowerFuel, Location: core.C(2, 2)})
	a.AddPowerUp(components.PowerUp{Kind: components.PowerBomb, Location: core.C(3, 3)})
	a.AddPowerUp(components.PowerUp{Kind: components.PowerShield, Location: core.C(2, 2)})

	taken := a.TakePowerUpsAt(core.C(2, 2))
	if len(taken) != 2 || taken[0].Kind != components.PowerFuel || taken[1].Kind != components.PowerShield {
		t.Errorf("TakePowerUpsAt = %+v, want fuel then shield", taken)
	}
	left := a.PowerUps()
	if len(left) != 1 || left[0].Kind != components.PowerBomb {
		t.Errorf("Remaining power-ups = %+v, want the bomb only", left)
	}
}

func TestArena_SpawnPowerUpInBounds(t *testing.T) {
	a := newTestArena(t, 7, 5)
	rng := vmath.NewFastRand(11)
	for i := 0; i < 100; i++ {
		p := a.SpawnPowerUp(rng)
		if !p.Location.InBounds(a.Width(), a.Height()) {
			t.Fatalf("Spawned at %s outside the board", p.Location)
		}
		if p.Kind >= components.PowerKindCount {
			t.Fatalf("Spawned invalid kind %d", p.Kind)
		}
	}
	if len(a.PowerUps()) != 100 {
		t.Errorf("PowerUps len = %d, want 100", len(a.PowerUps()))
	}
}

func TestArena_BombTiming(t *testing.T) {
	a := newTestArena(t, 20, 20)
	a.PlaceBomb(core.C(5, 5), PlayerID)

	if got := a.AdvanceBombs(constants.BombFuse - 1); len(got) != 0 {
		t.Fatal("Bomb went off before its fuse")
	}
	if len(a.Bombs()) != 1 {
		t.Fatal("Armed bomb missing from the active list")
	}
	got := a.AdvanceBombs(1)
	if len(got) != 1 || got[0].Location != core.C(5, 5) || !got[0].Exploded {
		t.Fatalf("AdvanceBombs = %+v, want one detonation at (5,5)", got)
	}
	if len(a.Bombs()) != 0 {
		t.Error("Detonated bomb still active")
	}
	if got := a.AdvanceBombs(constants.BombFuse); len(got) != 0 {
		t.Error("Bomb detonated twice")
	}
}

func TestArena_ExplodeRadius(t *testing.T) {
	center := core.C(15, 15)
	// Head on the blast corner, Chebyshev distance 4
	inside := NewVehicle(1, false, core.C(11, 19), core.Down, constants.MaxTrailLength)
	// Head at distance 5, body extending away from the blast
	outside := NewVehicle(2, false, core.C(20, 15), core.Left, constants.MaxTrailLength)
	a := newTestArena(t, 30, 30, inside, outside)
	outsideCells := outside.Trail().Cells()

	a.AddPowerUp(components.PowerUp{Kind: components.PowerFuel, Location: center})
	a.AddPowerUp(components.PowerUp{Kind: components.PowerFuel, Location: core.C(25, 25)})

	destroyed := a.Explode(center)

	if len(destroyed) != 1 || destroyed[0] != inside {
		t.Fatalf("Explode destroyed %d vehicles, want only the one at distance 4", len(destroyed))
	}
	if inside.DestroyCause != events.CauseExplosion {
		t.Errorf("Cause = %s, want explosion", inside.DestroyCause)
	}
	if outside.IsDestroyed {
		t.Error("Vehicle at distance 5 destroyed")
	}
	for i, c := range outside.Trail().Cells() {
		if c != outsideCells[i] {
			t.Errorf("Outside trail changed at %d", i)
		}
	}
	left := a.PowerUps()
	if len(left) != 1 || left[0].Location != core.C(25, 25) {
		t.Errorf("Power-ups after blast = %+v, want only the one outside", left)
	}
}

func TestArena_ExplodeCutsAndRegeneratesTrail(t *testing.T) {
	v := NewVehicle(1, false, core.C(15, 5), core.Up, constants.MaxTrailLength)
	a := newTestArena(t, 30, 30, v)

	// Blast rows 7..15 cover the two oldest segments only
	destroyed := a.Explode(core.C(15, 11))
	if len(destroyed) != 0 {
		t.Fatal("Head outside the blast was destroyed")
	}

	want := []core.Cell{core.C(15, 5), core.C(15, 6), core.C(15, 6)}
	got := v.Trail().Cells()
	if len(got) != len(want) {
		t.Fatalf("Trail len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Trail[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestArena_ExplodeNearEdgeIsClipped(t *testing.T) {
	v := NewVehicle(0, true, core.C(1, 1), core.Right, constants.MaxTrailLength)
	a := newTestArena(t, 10, 10, v)

	destroyed := a.Explode(core.C(0, 0))
	if len(destroyed) != 1 {
		t.Errorf("Explode at corner destroyed %d, want 1", len(destroyed))
	}
}

func TestArena_DestroyAtLocationSkipsDestroyed(t *testing.T) {
	v := NewVehicle(1, false, core.C(4, 4), core.Up, constants.MaxTrailLength)
	a := newTestArena(t, 10, 10, v)
	v.destroy(events.CauseFuel)

	if got := a.DestroyAtLocation(core.C(4, 4)); len(got) != 0 {
		t.Error("Already destroyed vehicle reported again")
	}
	if v.DestroyCause != events.CauseFuel {
		t.Errorf("Cause overwritten to %s", v.DestroyCause)
	}
}
