package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lightcycle/core"
)

// Controller is the simulation input surface driven by key presses
type Controller interface {
	SetPlayerDirection(d core.Direction)
	ActivatePlayerPower()
	RotatePlayerPowers()
}

// Action tells the frame loop what to do after an event
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionRestart
	ActionResize
)

// Handler translates terminal events into simulation commands
type Handler struct {
	target Controller
}

// NewHandler creates a handler forwarding to target
func NewHandler(target Controller) *Handler {
	return &Handler{target: target}
}

// SetTarget swaps the controlled simulation, used on restart
func (h *Handler) SetTarget(target Controller) {
	h.target = target
}

// HandleEvent processes a tcell event and returns the loop action
func (h *Handler) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

func (h *Handler) handleKeyEvent(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return ActionQuit
	case tcell.KeyUp:
		h.target.SetPlayerDirection(core.Up)
	case tcell.KeyDown:
		h.target.SetPlayerDirection(core.Down)
	case tcell.KeyLeft:
		h.target.SetPlayerDirection(core.Left)
	case tcell.KeyRight:
		h.target.SetPlayerDirection(core.Right)
	case tcell.KeyTab:
		h.target.RotatePlayerPowers()
	case tcell.KeyRune:
		return h.handleRune(ev.Rune())
	}
	return ActionNone
}

// handleRune maps WASD and hjkl to directions, plus action keys
func (h *Handler) handleRune(r rune) Action {
	switch r {
	case 'w', 'k':
		h.target.SetPlayerDirection(core.Up)
	case 's', 'j':
		h.target.SetPlayerDirection(core.Down)
	case 'a', 'h':
		h.target.SetPlayerDirection(core.Left)
	case 'd', 'l':
		h.target.SetPlayerDirection(core.Right)
	case ' ':
		h.target.ActivatePlayerPower()
	case 'e':
		h.target.RotatePlayerPowers()
	case 'p':
		return ActionPause
	case 'r':
		return ActionRestart
	case 'q':
		return ActionQuit
	}
	return ActionNone
}
