package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundGunshot        SoundType = iota // Player fires
	SoundImpact                          // Player takes damage
	SoundShortExplosion                  // Rat, brat or bullet destroyed
	SoundLongExplosion                   // Factory or player destroyed
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"gunshot", "impact", "short_explosion", "long_explosion"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundPlayer receives sound effect requests from the simulation.
// Implementations must not block; playback failures are the player's concern.
type SoundPlayer interface {
	Play(sound SoundType)
}

// NopSound discards every request
type NopSound struct{}

func (NopSound) Play(SoundType) {}

// SoundRecorder counts requests, for tests and diagnostics
type SoundRecorder struct {
	Played []SoundType
}

func (r *SoundRecorder) Play(sound SoundType) {
	r.Played = append(r.Played, sound)
}

// Count returns how many times sound was requested
func (r *SoundRecorder) Count(sound SoundType) int {
	n := 0
	for _, s := range r.Played {
		if s == sound {
			n++
		}
	}
	return n
}
