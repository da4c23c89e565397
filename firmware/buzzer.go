//go:build tinygo

package firmware

import (
	"machine"
	"time"

	"github.com/lixenwraith/tilt-snake/constants"
)

// Buzzer bit-bangs square waves on a piezo pin. Every tone blocks for its
// full duration; there is no mixer on bare metal.
type Buzzer struct {
	pin machine.Pin
}

// NewBuzzer configures the speaker pin
func NewBuzzer(pin machine.Pin) *Buzzer {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &Buzzer{pin: pin}
}

// PlayStart plays the rising two-note round chirp
func (b *Buzzer) PlayStart() {
	b.tone(constants.StartToneLowHz, constants.StartToneDuration, constants.StartTonePause)
	b.tone(constants.StartToneHighHz, constants.StartToneDuration, 0)
}

// PlayEat plays a short blip
func (b *Buzzer) PlayEat() {
	b.tone(constants.EatToneHz, constants.EatToneDuration, 0)
}

// PlayGameOver plays the descending three-tone sequence and returns after
// the last tone finishes
func (b *Buzzer) PlayGameOver() {
	b.tone(constants.GameOverHighHz, constants.GameOverToneDuration, constants.GameOverTonePause)
	b.tone(constants.GameOverMidHz, constants.GameOverToneDuration, constants.GameOverTonePause)
	b.tone(constants.GameOverLowHz, constants.GameOverToneDuration, 0)
}

// tone drives the pin as a square wave at the given frequency, then waits
// out the post delay
func (b *Buzzer) tone(freq uint, duration, post time.Duration) {
	if freq == 0 || duration <= 0 {
		time.Sleep(post)
		return
	}

	// Half cycle period; input is in Hz
	period := time.Duration(1000000/(2*freq)) * time.Microsecond

	start := time.Now()
	for time.Since(start) < duration {
		b.pin.High()
		time.Sleep(period)
		b.pin.Low()
		time.Sleep(period)
	}
	b.pin.Low()

	time.Sleep(post)
}
