package terminal

import (
	"sync"

	"github.com/lixenwraith/tilt-snake/input"
)

// MouseTilt synthesizes a tilt sensor from the pointer: the offset from the
// board center is the tilt vector. It reads centered until the first pointer
// event arrives, so startup calibration sees a resting device.
type MouseTilt struct {
	mu   sync.Mutex
	x, y float64
}

// NewMouseTilt creates a pointer-driven tilt source
func NewMouseTilt() *MouseTilt {
	return &MouseTilt{}
}

// Init reports the source ready; there is no device to probe
func (m *MouseTilt) Init() error {
	return nil
}

// Move updates the tilt vector, clamping each axis to [-1, 1]
func (m *MouseTilt) Move(x, y float64) {
	m.mu.Lock()
	m.x = clampAxis(x)
	m.y = clampAxis(y)
	m.mu.Unlock()
}

// Read returns the current tilt vector
func (m *MouseTilt) Read() input.Sample {
	m.mu.Lock()
	defer m.mu.Unlock()

	return input.Sample{X: m.x, Y: m.y}
}

func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
