package constants

import "time"

// Frame Pacing
const (
	// FrameInterval is the simulator poll/render tick, decoupled from the
	// simulation step cadence
	FrameInterval = 16 * time.Millisecond

	// FirmwarePollInterval paces the firmware control loop
	FirmwarePollInterval = 10 * time.Millisecond
)

// Terminal Layout
const (
	// CellsPerPixel is how many terminal columns render one grid pixel;
	// two columns approximate a square pixel
	CellsPerPixel = 2

	// Title is drawn above the simulator grid
	Title = " TILT-SNAKE "
)
