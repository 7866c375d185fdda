package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/rats/torus"
)

// FireHold is how long a fire key stays held after its last press.
// Terminals report no key releases, so auto-repeat keeps the trigger down.
const FireHold = 300 * time.Millisecond

const allDirections = torus.Up | torus.Down | torus.Left | torus.Right

// Controller receives intents; *engine.Session satisfies it
type Controller interface {
	StartMoving(dir torus.Direction)
	StopMoving(dir torus.Direction)
	StartFiring(dir torus.Direction)
	StopFiring(dir torus.Direction)
	Pause()
	Quit()
	Restart()
	ToggleDiagnostics()
}

// InputHandler turns terminal events into session intents
type InputHandler struct {
	ctrl      Controller
	keys      *KeyTable
	firing    bool
	fireUntil time.Time
	onResize  func(width, height int)
}

// NewInputHandler creates a handler with the default key table
func NewInputHandler(ctrl Controller) *InputHandler {
	return &InputHandler{ctrl: ctrl, keys: DefaultKeyTable()}
}

// OnResize registers a callback for terminal resize events
func (h *InputHandler) OnResize(fn func(width, height int)) {
	h.onResize = fn
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		if h.onResize != nil {
			w, hgt := ev.Size()
			h.onResize(w, hgt)
		}
	}
	return true
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	entry := h.keys.Lookup(ev)
	switch entry.Intent {
	case IntentQuit:
		h.ctrl.Quit()
		log.Debug("quit requested")
		return false
	case IntentPause:
		h.ctrl.Pause()
	case IntentRestart:
		h.ctrl.Restart()
	case IntentDiagnostics:
		h.ctrl.ToggleDiagnostics()
	case IntentMove:
		h.ctrl.StopMoving(allDirections)
		h.ctrl.StartMoving(entry.Dir)
	case IntentStop:
		h.ctrl.StopMoving(allDirections)
	case IntentFire:
		// a second key inside the hold window chords a diagonal; the opposite key replaces
		h.ctrl.StopFiring(entry.Dir.Inverse())
		h.ctrl.StartFiring(entry.Dir)
		h.firing = true
		h.fireUntil = ev.When().Add(FireHold)
	}
	return true
}

// Tick releases the fire trigger once the hold window has passed
func (h *InputHandler) Tick(now time.Time) {
	if h.firing && !now.Before(h.fireUntil) {
		h.ctrl.StopFiring(allDirections)
		h.firing = false
	}
}

// Firing reports whether a fire key is considered held
func (h *InputHandler) Firing() bool { return h.firing }
