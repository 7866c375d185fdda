package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rats/torus"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Dir    torus.Direction // for IntentMove and IntentFire
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyF1:     {Intent: IntentDiagnostics},

			tcell.KeyUp:    {IntentMove, torus.Up},
			tcell.KeyDown:  {IntentMove, torus.Down},
			tcell.KeyLeft:  {IntentMove, torus.Left},
			tcell.KeyRight: {IntentMove, torus.Right},
			tcell.KeyHome:  {IntentMove, torus.UpLeft},
			tcell.KeyPgUp:  {IntentMove, torus.UpRight},
			tcell.KeyEnd:   {IntentMove, torus.DownLeft},
			tcell.KeyPgDn:  {IntentMove, torus.DownRight},
		},
		Runes: map[rune]KeyEntry{
			'Q': {Intent: IntentQuit},
			'p': {Intent: IntentPause},
			'r': {Intent: IntentRestart},
			'i': {Intent: IntentDiagnostics},

			'k': {IntentMove, torus.Up},
			'j': {IntentMove, torus.Down},
			'h': {IntentMove, torus.Left},
			'l': {IntentMove, torus.Right},
			'y': {IntentMove, torus.UpLeft},
			'u': {IntentMove, torus.UpRight},
			'b': {IntentMove, torus.DownLeft},
			'n': {IntentMove, torus.DownRight},
			' ': {Intent: IntentStop},

			'w': {IntentFire, torus.Up},
			's': {IntentFire, torus.Down},
			'a': {IntentFire, torus.Left},
			'd': {IntentFire, torus.Right},
		},
	}
}

// Lookup resolves a key event to its entry; unknown keys map to IntentNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
