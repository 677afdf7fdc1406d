package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightcycle/components"
	"github.com/lixenwraith/lightcycle/constants"
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/engine"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSim(t *testing.T) *engine.Simulation {
	t.Helper()
	sim, err := engine.NewSimulation(engine.Config{Width: 20, Height: 10, Bots: 1, Seed: 7})
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	return sim
}

func rowText(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestRenderFrame_BorderAndVehicles(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	sim := newTestSim(t)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(sim, HUD{})

	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, constants.GlyphCornerTL},
		{21, 0, constants.GlyphCornerTR},
		{0, 11, constants.GlyphCornerBL},
		{21, 11, constants.GlyphCornerBR},
	}
	for _, c := range corners {
		if ch, _, _, _ := screen.GetContent(c.x, c.y); ch != c.want {
			t.Errorf("corner (%d,%d) = %q, want %q", c.x, c.y, ch, c.want)
		}
	}

	player := sim.Player()
	hx, hy := ScreenCell(player.Head())
	if ch, _, _, _ := screen.GetContent(hx, hy); ch != constants.GlyphHead {
		t.Errorf("player head glyph = %q, want %q", ch, constants.GlyphHead)
	}
	tx, ty := ScreenCell(player.Trail().Tail())
	if ch, _, _, _ := screen.GetContent(tx, ty); ch != constants.GlyphTrail {
		t.Errorf("player tail glyph = %q, want %q", ch, constants.GlyphTrail)
	}

	_, _, style, _ := screen.GetContent(hx, hy)
	if fg, _, _ := style.Decompose(); fg != RgbPlayer {
		t.Errorf("player head color = %v, want %v", fg, RgbPlayer)
	}
}

func TestRenderFrame_PowerUpsAndBombs(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	sim := newTestSim(t)
	r := NewTerminalRenderer(screen)

	sim.Arena().AddPowerUp(components.PowerUp{Kind: components.PowerShield, Location: core.C(2, 2)})
	sim.Arena().PlaceBomb(core.C(5, 5), engine.PlayerID)

	r.RenderFrame(sim, HUD{})

	x, y := ScreenCell(core.C(2, 2))
	if ch, _, _, _ := screen.GetContent(x, y); ch != constants.GlyphShield {
		t.Errorf("power-up glyph = %q, want %q", ch, constants.GlyphShield)
	}
	x, y = ScreenCell(core.C(5, 5))
	if ch, _, _, _ := screen.GetContent(x, y); ch != constants.GlyphArmedBomb {
		t.Errorf("bomb glyph = %q, want %q", ch, constants.GlyphArmedBomb)
	}
}

func TestRenderFrame_StatusLines(t *testing.T) {
	screen := newTestScreen(t, 80, 20)
	sim := newTestSim(t)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(sim, HUD{Paused: true})

	status := rowText(screen, 12, 80)
	if !strings.Contains(status, "FUEL 100") {
		t.Errorf("status line missing fuel: %q", status)
	}
	if !strings.Contains(status, "BOTS 1/1") {
		t.Errorf("status line missing bot count: %q", status)
	}
	if msg := rowText(screen, 13, 80); !strings.Contains(msg, "PAUSED") {
		t.Errorf("message line = %q, want PAUSED", msg)
	}

	r.RenderFrame(sim, HUD{Message: "bomb exploded"})
	if msg := rowText(screen, 13, 80); !strings.Contains(msg, "bomb exploded") {
		t.Errorf("message line = %q, want event message", msg)
	}
}

func TestRenderFrame_DestroyedPlayerBanner(t *testing.T) {
	screen := newTestScreen(t, 80, 20)
	sim := newTestSim(t)
	r := NewTerminalRenderer(screen)

	sim.Player().Fuel = 0
	sim.Tick(constants.GameUpdateInterval)

	r.RenderFrame(sim, HUD{Paused: true})
	msg := rowText(screen, 13, 80)
	if !strings.Contains(msg, "DESTROYED") || !strings.Contains(msg, "fuel") {
		t.Errorf("message line = %q, want destroyed banner with cause", msg)
	}

	hx, hy := ScreenCell(sim.Player().Head())
	_, _, style, _ := screen.GetContent(hx, hy)
	if fg, _, _ := style.Decompose(); fg != RgbDestroyed {
		t.Errorf("destroyed head color = %v, want %v", fg, RgbDestroyed)
	}
}

func TestStatusLine_InventoryTopFirst(t *testing.T) {
	sim := newTestSim(t)
	inv := sim.Player().Inventory()
	inv.Push(components.PowerUp{Kind: components.PowerFuel})
	inv.Push(components.PowerUp{Kind: components.PowerBomb})

	line := StatusLine(sim)
	if !strings.Contains(line, "INV [B F]") {
		t.Errorf("StatusLine = %q, want inventory [B F]", line)
	}
}

func TestRenderFrame_TooSmall(t *testing.T) {
	screen := newTestScreen(t, 15, 8)
	sim := newTestSim(t)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(sim, HUD{})

	if msg := rowText(screen, 0, 15); !strings.HasPrefix(msg, "terminal too sm") {
		t.Errorf("first row = %q, want size warning", msg)
	}
	w, h := RequiredSize(sim.Arena())
	if w != 22 || h != 14 {
		t.Errorf("RequiredSize = %dx%d, want 22x14", w, h)
	}
}

func TestRenderFrame_BlastMarkers(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	sim := newTestSim(t)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(sim, HUD{Blasts: []core.Cell{core.C(0, 0)}})

	x, y := ScreenCell(core.C(4, 4))
	if ch, _, _, _ := screen.GetContent(x, y); ch != constants.GlyphBlastMarker {
		t.Errorf("blast edge glyph = %q, want %q", ch, constants.GlyphBlastMarker)
	}
	x, y = ScreenCell(core.C(5, 0))
	if ch, _, _, _ := screen.GetContent(x, y); ch == constants.GlyphBlastMarker {
		t.Error("blast marker drawn outside the radius")
	}
}
