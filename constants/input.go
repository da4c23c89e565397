package constants

import "time"

// Tilt Filter
const (
	// SmoothingAlpha weights the smoothing filter toward history; higher
	// values mean more lag and less jitter
	SmoothingAlpha = 0.80

	// DeadZone is the per-axis magnitude below which no intent is read
	DeadZone = 0.08

	// TriggerThreshold is the dominant-axis magnitude that emits a direction
	TriggerThreshold = 0.18
)

// Calibration
const (
	// CalibrationSamples is the number of at-rest readings averaged into the
	// sensor bias at startup
	CalibrationSamples = 50

	// CalibrationInterval is the delay between calibration readings
	CalibrationInterval = 10 * time.Millisecond
)

// Simulator Input
const (
	// KeyStickHold is how long a key press keeps the emulated stick deflected
	KeyStickHold = 150 * time.Millisecond

	// MouseTiltRadius is the pointer distance, in grid pixels, that maps to a
	// full-scale tilt reading
	MouseTiltRadius = 6.0
)
