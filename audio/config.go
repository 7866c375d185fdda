package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/rats/core"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns the settings used when no environment overrides exist
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundGunshot:        0.6,
			core.SoundImpact:         0.8,
			core.SoundShortExplosion: 0.7,
			core.SoundLongExplosion:  1.0,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("RATS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 scaled to 0.0-1.0
	if volume := os.Getenv("RATS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// JSON object keyed by sound name, e.g. {"gunshot":0.3}
	if effectVols := os.Getenv("RATS_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("RATS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
