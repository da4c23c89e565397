package constants

import "time"

// Eat Blip
const (
	EatToneHz       = 880
	EatToneDuration = 50 * time.Millisecond
)

// Start Chirp
const (
	StartToneLowHz    = 440
	StartToneHighHz   = 660
	StartToneDuration = 80 * time.Millisecond
	StartTonePause    = 20 * time.Millisecond
)

// Game Over Sequence
const (
	// Three descending tones with fixed pauses; playback blocks until the
	// last tone finishes
	GameOverHighHz       = 600
	GameOverMidHz        = 500
	GameOverLowHz        = 400
	GameOverToneDuration = 200 * time.Millisecond
	GameOverTonePause    = 100 * time.Millisecond
)

// Mixer
const (
	// DefaultVolume is the master gain applied to generated tones
	DefaultVolume = 0.5

	// SpeakerBufferDuration determines playback latency
	SpeakerBufferDuration = 100 * time.Millisecond
)
