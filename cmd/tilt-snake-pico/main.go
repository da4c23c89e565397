//go:build tinygo

package main

import (
	"machine"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/tilt-snake/constants"
	"github.com/lixenwraith/tilt-snake/engine"
	"github.com/lixenwraith/tilt-snake/firmware"
	"github.com/lixenwraith/tilt-snake/input"
)

const (
	PIN_NEOPIXEL machine.Pin = machine.GP15
	PIN_SPEAKER  machine.Pin = machine.GP16
	PIN_BUTTON   machine.Pin = machine.GP19
)

const (
	PIN_X machine.Pin = machine.GP26
	PIN_Y machine.Pin = machine.GP27
)

// Matrix wiring
const (
	matrixSerpentine = true
	matrixBrightness = 0.25
)

func main() {
	// Set up the hardware or fail
	display, err := firmware.NewNeoPixelDisplay(PIN_NEOPIXEL,
		constants.GridWidth, constants.GridHeight, matrixSerpentine, matrixBrightness)
	if err != nil {
		failLoop()
	}

	buzzer := firmware.NewBuzzer(PIN_SPEAKER)

	PIN_BUTTON.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	eng := engine.New(display, buzzer, rng, engine.DefaultConfig())
	clock := engine.NewMonotonicTimeProvider()

	// A dead stick is not fatal: the snake keeps its heading and the reset
	// button still works
	var driver *input.Driver
	stick := firmware.NewJoystick(PIN_X, PIN_Y)
	if err := stick.Init(); err == nil {
		// The stick must rest through calibration, so it runs before the
		// first round starts
		filter := input.NewTiltFilter(stick, input.DefaultTiltConfig())
		filter.Calibrate(constants.CalibrationSamples, constants.CalibrationInterval)
		driver = input.NewDriver(filter, eng)
	}

	resetLimiter := rate.NewLimiter(rate.Limit(constants.ResetPerSecond), constants.ResetBurst)

	eng.Reset(clock.Now())

	for {
		if PIN_BUTTON.Get() && resetLimiter.Allow() {
			eng.Reset(clock.Now())
		}

		if driver != nil {
			driver.Poll()
		}
		eng.Update(clock.Now())

		time.Sleep(constants.FirmwarePollInterval)
	}
}

func failLoop() {
	// Signal hardware failure on the on-board LED
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(time.Millisecond * 100)
		led.High()
		time.Sleep(time.Millisecond * 100)
	}
}
