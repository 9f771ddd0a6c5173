package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/snake/constants"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SoundManager plays item feedback through the system speaker
// Every method is a silent no-op until Initialize succeeds, so the game runs without audio
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		rate:  beep.SampleRate(constants.AudioSampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer; safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferWindow)); err != nil {
		return errors.Wrap(err, "[SoundManager.Initialize] speaker init")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Beep plays a sine tone at freq for d, mixed over anything already playing
func (sm *SoundManager) Beep(freq float64, d time.Duration) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	tone, err := Tone(sm.rate, freq, d)
	if err != nil {
		log.WithError(err).Debug("beep skipped")
		return
	}

	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
}

// SetMuted toggles output without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Cleanup drops pending sounds and closes the speaker
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
}
