package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightcycle/components"
	"github.com/lixenwraith/lightcycle/constants"
	"github.com/lixenwraith/lightcycle/core"
	"github.com/lixenwraith/lightcycle/engine"
	"github.com/lixenwraith/lightcycle/vmath"
)

// bombBlinkWindow is the final stretch of the fuse during which the bomb glyph flashes
const bombBlinkWindow = time.Second

// HUD carries presentation state that is not part of the simulation
type HUD struct {
	Paused  bool
	Message string
	Blasts  []core.Cell // Centers of recent explosions, drawn as a fading blast area
}

// TerminalRenderer draws the arena inside a border with a two-line status area below
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// ScreenCell maps an arena cell to its screen position
func ScreenCell(c core.Cell) (x, y int) {
	return c.X + constants.BorderWidth, c.Y + constants.BorderWidth
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(sim *engine.Simulation, hud HUD) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	arena := sim.Arena()
	if !r.fits(arena) {
		w, h := RequiredSize(arena)
		r.drawText(0, 0, fmt.Sprintf("terminal too small, need %dx%d", w, h), defaultStyle.Foreground(RgbWarning))
		r.screen.Show()
		return
	}

	r.drawBorder(arena.Width(), arena.Height(), defaultStyle)
	r.drawBlasts(arena, hud.Blasts, defaultStyle)
	r.drawPowerUps(arena, defaultStyle)
	r.drawBombs(arena, defaultStyle)
	r.drawVehicles(arena, defaultStyle)
	r.drawStatusBar(sim, hud, defaultStyle)

	r.screen.Show()
}

// RequiredSize returns the terminal size needed for the arena, border, and status lines
func RequiredSize(arena *engine.Arena) (width, height int) {
	return arena.Width() + 2*constants.BorderWidth, arena.Height() + 2*constants.BorderWidth + constants.HUDHeight
}

func (r *TerminalRenderer) fits(arena *engine.Arena) bool {
	w, h := r.screen.Size()
	needW, needH := RequiredSize(arena)
	return w >= needW && h >= needH
}

// drawBorder frames the board
func (r *TerminalRenderer) drawBorder(width, height int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	right := width + 1
	bottom := height + 1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, constants.GlyphBorderH, nil, style)
		r.screen.SetContent(x, bottom, constants.GlyphBorderH, nil, style)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, constants.GlyphBorderV, nil, style)
		r.screen.SetContent(right, y, constants.GlyphBorderV, nil, style)
	}
	r.screen.SetContent(0, 0, constants.GlyphCornerTL, nil, style)
	r.screen.SetContent(right, 0, constants.GlyphCornerTR, nil, style)
	r.screen.SetContent(0, bottom, constants.GlyphCornerBL, nil, style)
	r.screen.SetContent(right, bottom, constants.GlyphCornerBR, nil, style)
}

// setArenaCell draws inside the board only, off-board cells (shielded vehicles) are clipped
func (r *TerminalRenderer) setArenaCell(arena *engine.Arena, c core.Cell, ch rune, style tcell.Style) {
	if !c.InBounds(arena.Width(), arena.Height()) {
		return
	}
	x, y := ScreenCell(c)
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawBlasts marks the clipped blast square of each recent explosion
func (r *TerminalRenderer) drawBlasts(arena *engine.Arena, centers []core.Cell, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBomb)
	for _, center := range centers {
		blast := vmath.AreaClip(core.Square(center, constants.BombRadius), arena.Bounds())
		for _, c := range blast.Cells() {
			r.setArenaCell(arena, c, constants.GlyphBlastMarker, style)
		}
	}
}

func (r *TerminalRenderer) drawPowerUps(arena *engine.Arena, defaultStyle tcell.Style) {
	for _, p := range arena.PowerUps() {
		style := defaultStyle.Foreground(PowerColor(p.Kind)).Bold(true)
		r.setArenaCell(arena, p.Location, PowerGlyph(p.Kind), style)
	}
}

func (r *TerminalRenderer) drawBombs(arena *engine.Arena, defaultStyle tcell.Style) {
	for _, b := range arena.Bombs() {
		color := RgbBomb
		remaining := b.Remaining()
		if remaining < bombBlinkWindow && (remaining/(100*time.Millisecond))%2 == 0 {
			color = RgbBombBlink
		}
		r.setArenaCell(arena, b.Location, constants.GlyphArmedBomb, defaultStyle.Foreground(color).Bold(true))
	}
}

// drawVehicles draws bodies tail to head so the head wins on stacked cells
func (r *TerminalRenderer) drawVehicles(arena *engine.Arena, defaultStyle tcell.Style) {
	for _, v := range arena.Vehicles() {
		if !v.IsVisible {
			continue
		}
		style := defaultStyle.Foreground(VehicleColor(v))
		cells := v.Trail().Cells()
		for i := len(cells) - 1; i >= 1; i-- {
			r.setArenaCell(arena, cells[i], constants.GlyphTrail, style)
		}
		if len(cells) == 0 {
			continue
		}
		headStyle := style
		if v.IsShieldActive && !v.IsDestroyed {
			headStyle = defaultStyle.Foreground(RgbShield).Bold(true)
		}
		r.setArenaCell(arena, cells[0], constants.GlyphHead, headStyle)
	}
}

// drawStatusBar draws player readouts and the message line under the border
func (r *TerminalRenderer) drawStatusBar(sim *engine.Simulation, hud HUD, defaultStyle tcell.Style) {
	statusY := sim.Arena().Height() + 2*constants.BorderWidth
	style := defaultStyle.Foreground(RgbStatusBar)

	player := sim.Player()
	if player == nil {
		return
	}
	r.drawText(0, statusY, StatusLine(sim), style)

	var msg string
	msgStyle := style
	switch {
	case player.IsDestroyed:
		msg = fmt.Sprintf("DESTROYED (%s) - r to restart, q to quit", player.DestroyCause)
		msgStyle = defaultStyle.Foreground(RgbWarning).Bold(true)
	case hud.Paused:
		msg = "PAUSED - p to resume"
		msgStyle = style.Bold(true)
	default:
		msg = hud.Message
	}
	r.drawText(0, statusY+1, msg, msgStyle)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// StatusLine formats the player readout: fuel, speed, shield, inventory top first, bots, tick
func StatusLine(sim *engine.Simulation) string {
	player := sim.Player()
	if player == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "FUEL %3d  SPD %d", player.Fuel, player.BaseSpeed)
	if player.IsShieldActive {
		var left time.Duration
		for _, e := range player.Effects() {
			if e.Kind == components.EffectShield && e.Remaining > left {
				left = e.Remaining
			}
		}
		fmt.Fprintf(&b, "  SHIELD %.1fs", left.Seconds())
	}

	b.WriteString("  INV [")
	for i, p := range player.Inventory().Items() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(PowerGlyph(p.Kind))
	}
	b.WriteByte(']')

	alive := 0
	bots := 0
	for _, v := range sim.Vehicles() {
		if v.IsPlayer {
			continue
		}
		bots++
		if !v.IsDestroyed {
			alive++
		}
	}
	fmt.Fprintf(&b, "  BOTS %d/%d  T %d  SEED %d", alive, bots, sim.TickCount(), sim.Seed())
	return b.String()
}

// PowerGlyph returns the board glyph of a power-up kind
func PowerGlyph(k components.PowerKind) rune {
	switch k {
	case components.PowerFuel:
		return constants.GlyphFuel
	case components.PowerShield:
		return constants.GlyphShield
	case components.PowerHyperSpeed:
		return constants.GlyphHyperSpeed
	case components.PowerBomb:
		return constants.GlyphBomb
	}
	return '?'
}
