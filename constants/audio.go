package constants

import "time"

// Gunshot Sound Timing
const (
	GunshotSoundDuration = 90 * time.Millisecond
	GunshotSoundAttack   = 2 * time.Millisecond
	GunshotSoundRelease  = 80 * time.Millisecond
)

// Impact Sound Timing
const (
	ImpactSoundDuration = 120 * time.Millisecond
	ImpactSoundAttack   = 3 * time.Millisecond
	ImpactSoundRelease  = 100 * time.Millisecond
)

// Explosion Sound Timing
const (
	ShortExplosionDuration = 350 * time.Millisecond
	ShortExplosionAttack   = 5 * time.Millisecond
	ShortExplosionRelease  = 320 * time.Millisecond

	LongExplosionDuration = 1200 * time.Millisecond
	LongExplosionAttack   = 10 * time.Millisecond
	LongExplosionRelease  = 1100 * time.Millisecond
)
