package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Esc, Ctrl+C, Ctrl+Q, Q
	IntentPause       // p
	IntentRestart     // r
	IntentDiagnostics // F1, i

	// Player intents
	IntentMove // arrows, hjkl, yubn
	IntentStop // space
	IntentFire // w, a, s, d
)

var intentNames = [...]string{"none", "quit", "pause", "restart", "diagnostics", "move", "stop", "fire"}

func (i IntentType) String() string {
	if int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}
