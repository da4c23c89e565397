package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tilt-snake/constants"
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: constants.DefaultVolume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Note: beep doesn't provide a Close() method for speaker,
	// but clearing all streamers ensures no audio artifacts
	sm.mixer.Clear()
	sm.initialized = false
}

// SetVolume sets the master gain applied to subsequent tones, clamped to [0, 1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	sm.volume = v
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether playback is muted
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.muted
}

// PlayStart plays the rising two-note round chirp
func (sm *SoundManager) PlayStart() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	chirp := beep.Seq(
		beep.Take(sampleRate.N(constants.StartToneDuration), NewToneGenerator(sampleRate, constants.StartToneLowHz, sm.volume)),
		beep.Silence(sampleRate.N(constants.StartTonePause)),
		beep.Take(sampleRate.N(constants.StartToneDuration), NewToneGenerator(sampleRate, constants.StartToneHighHz, sm.volume)),
	)
	sm.mixer.Add(chirp)
}

// PlayEat plays a short blip
func (sm *SoundManager) PlayEat() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	blip := beep.Take(sampleRate.N(constants.EatToneDuration), NewToneGenerator(sampleRate, constants.EatToneHz, sm.volume))
	sm.mixer.Add(blip)
}

// PlayGameOver plays the descending three-tone sequence and returns only
// after the final tone has finished. With the speaker unavailable or muted
// it returns immediately.
func (sm *SoundManager) PlayGameOver() {
	sm.mu.Lock()
	if !sm.initialized || sm.muted {
		sm.mu.Unlock()
		return
	}

	done := make(chan struct{})
	seq := beep.Seq(
		beep.Take(sampleRate.N(constants.GameOverToneDuration), NewToneGenerator(sampleRate, constants.GameOverHighHz, sm.volume)),
		beep.Silence(sampleRate.N(constants.GameOverTonePause)),
		beep.Take(sampleRate.N(constants.GameOverToneDuration), NewToneGenerator(sampleRate, constants.GameOverMidHz, sm.volume)),
		beep.Silence(sampleRate.N(constants.GameOverTonePause)),
		beep.Take(sampleRate.N(constants.GameOverToneDuration), NewToneGenerator(sampleRate, constants.GameOverLowHz, sm.volume)),
		beep.Callback(func() { close(done) }),
	)
	sm.mixer.Add(seq)
	sm.mu.Unlock()

	<-done
}
