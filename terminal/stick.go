package terminal

import (
	"sync"
	"time"

	"github.com/lixenwraith/tilt-snake/core"
	"github.com/lixenwraith/tilt-snake/engine"
	"github.com/lixenwraith/tilt-snake/input"
)

// KeyStick synthesizes a self-centering stick from key presses. A press
// deflects the stick fully toward the pressed direction for a short hold
// window, after which it snaps back to center. The clock is injected so the
// window can be tested without sleeping.
type KeyStick struct {
	mu    sync.Mutex
	clock engine.TimeProvider
	hold  time.Duration
	x, y  float64
	until time.Time
}

// NewKeyStick creates a key-driven stick with the given hold window
func NewKeyStick(clock engine.TimeProvider, hold time.Duration) *KeyStick {
	return &KeyStick{
		clock: clock,
		hold:  hold,
	}
}

// Init reports the stick ready; there is no device to probe
func (k *KeyStick) Init() error {
	return nil
}

// Press deflects the stick toward the given direction
func (k *KeyStick) Press(d core.Direction) {
	delta := d.Delta()

	k.mu.Lock()
	k.x = float64(delta.X)
	k.y = float64(delta.Y)
	k.until = k.clock.Now().Add(k.hold)
	k.mu.Unlock()
}

// Read returns the current deflection, centered once the hold expires
func (k *KeyStick) Read() input.Sample {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.clock.Now().After(k.until) {
		return input.Sample{}
	}
	return input.Sample{X: k.x, Y: k.y}
}
