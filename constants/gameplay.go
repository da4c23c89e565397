package constants

import "time"

// Grid Geometry
const (
	// GridWidth is the number of pixel columns on the matrix
	GridWidth = 8

	// GridHeight is the number of pixel rows on the matrix
	GridHeight = 8

	// GridCapacity is the total cell count and the hard bound on snake length
	GridCapacity = GridWidth * GridHeight
)

// Snake Spawn
const (
	// SpawnLength is the body length placed by a reset
	SpawnLength = 3

	// SpawnHeadX and SpawnHeadY position the head after a reset; the body
	// extends leftward, opposite the initial heading
	SpawnHeadX = 3
	SpawnHeadY = 4
)

// Step Cadence
const (
	// StartStepInterval is the time between simulation steps on a fresh run
	StartStepInterval = 300 * time.Millisecond

	// MinStepInterval is the cadence floor; eating apples never pushes the
	// interval below this
	MinStepInterval = 90 * time.Millisecond

	// StepSpeedup is subtracted from the step interval per apple eaten
	StepSpeedup = 12 * time.Millisecond
)

// Reset Debounce
const (
	// ResetPerSecond caps how often the reset trigger is honored
	ResetPerSecond = 2

	// ResetBurst is the reset limiter burst size
	ResetBurst = 1
)
