package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/rats/constants"
	"github.com/lixenwraith/rats/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally gliding towards an end frequency
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch moves linearly from freq to endFreq
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or negative volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, s core.SoundType) float64 {
	v, ok := cfg.EffectVolumes[s]
	if !ok {
		v = 1.0
	}
	return v * cfg.MasterVolume
}

// CreateGunshotSound generates a sharp falling crack
func CreateGunshotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.GunshotSoundDuration

	crack := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d,
		constants.GunshotSoundAttack, constants.GunshotSoundRelease, rate)
	body := NewEnvelope(NewSweep(900, 200, d, WaveSquare, rate), d,
		constants.GunshotSoundAttack, constants.GunshotSoundRelease, rate)

	mixed := beep.Mix(newVolume(crack, 0.6), newVolume(body, 0.3))
	return newVolume(mixed, effectVolume(cfg, core.SoundGunshot))
}

// CreateImpactSound generates a low thud for player damage
func CreateImpactSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ImpactSoundDuration

	osc := NewSweep(160, 60, d, WaveSaw, rate)
	shaped := NewEnvelope(osc, d, constants.ImpactSoundAttack, constants.ImpactSoundRelease, rate)
	return newVolume(shaped, effectVolume(cfg, core.SoundImpact))
}

// CreateShortExplosionSound generates a brief noise burst
func CreateShortExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ShortExplosionDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	shaped := NewEnvelope(noise, d, constants.ShortExplosionAttack, constants.ShortExplosionRelease, rate)
	return newVolume(shaped, effectVolume(cfg, core.SoundShortExplosion))
}

// CreateLongExplosionSound generates a rumbling blast with a sub-bass drop
func CreateLongExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.LongExplosionDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d,
		constants.LongExplosionAttack, constants.LongExplosionRelease, rate)
	rumble := NewEnvelope(NewSweep(90, 30, d, WaveSine, rate), d,
		constants.LongExplosionAttack, constants.LongExplosionRelease, rate)

	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.5))
	return newVolume(mixed, effectVolume(cfg, core.SoundLongExplosion))
}

// SoundEffect returns a fresh streamer for the given sound, or nil for unknown types
func SoundEffect(sound core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch sound {
	case core.SoundGunshot:
		return CreateGunshotSound(cfg)
	case core.SoundImpact:
		return CreateImpactSound(cfg)
	case core.SoundShortExplosion:
		return CreateShortExplosionSound(cfg)
	case core.SoundLongExplosion:
		return CreateLongExplosionSound(cfg)
	default:
		return nil
	}
}

// soundDuration is the nominal length of each effect
func soundDuration(sound core.SoundType) time.Duration {
	switch sound {
	case core.SoundGunshot:
		return constants.GunshotSoundDuration
	case core.SoundImpact:
		return constants.ImpactSoundDuration
	case core.SoundShortExplosion:
		return constants.ShortExplosionDuration
	case core.SoundLongExplosion:
		return constants.LongExplosionDuration
	default:
		return 0
	}
}
