package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/rats/core"
)

// maxVoices caps simultaneous effects; excess requests are dropped
const maxVoices = 16

// SoundManager plays simulation sound effects through the system speaker.
// It satisfies core.SoundPlayer and silently drops requests until initialized.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [core.SoundTypeCount]int
	dropped     int
}

// NewSoundManager creates a manager; nil cfg selects the environment configuration
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = LoadAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer. A disabled config is
// not an error; the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	sampleRate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true

	log.WithFields(log.Fields{
		"sample_rate": sm.cfg.SampleRate,
		"volume":      sm.cfg.MasterVolume,
	}).Info("audio initialized")
	return nil
}

// Play queues sound on the mixer without blocking the caller
func (sm *SoundManager) Play(sound core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sound < 0 || sound >= core.SoundTypeCount {
		return
	}

	s := SoundEffect(sound, sm.cfg)
	if s == nil {
		return
	}
	rate := beep.SampleRate(sm.cfg.SampleRate)

	speaker.Lock()
	if sm.mixer.Len() >= maxVoices {
		speaker.Unlock()
		sm.dropped++
		return
	}
	sm.mixer.Add(beep.Take(rate.N(soundDuration(sound)), s))
	speaker.Unlock()
	sm.played[sound]++
}

// Played returns how many times sound reached the mixer
func (sm *SoundManager) Played(sound core.SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[sound]
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences all voices and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false

	log.WithField("dropped", sm.dropped).Debug("audio closed")
}
