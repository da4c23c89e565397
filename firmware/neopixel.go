//go:build tinygo

package firmware

import (
	"image/color"
	"machine"
	"runtime/interrupt"

	"tinygo.org/x/drivers/ws2812"

	"github.com/lixenwraith/tilt-snake/core"
)

// colorGameOver paints the cross shown when a round ends
var colorGameOver = core.RGB{R: 220, G: 20, B: 20}

// NeoPixelDisplay drives a WS2812 LED matrix as the game board. Pixels are
// staged in a frame and pushed out in one strip write on Present, with
// interrupts held off during the write because the WS2812 wire protocol
// cannot tolerate timing gaps.
type NeoPixelDisplay struct {
	dev        ws2812.Device
	frame      *core.Frame
	leds       []color.RGBA
	serpentine bool
	brightness float64
}

// NewNeoPixelDisplay configures the data pin and probes the strip with a
// dark frame. A wiring fault surfaces here instead of during play.
func NewNeoPixelDisplay(pin machine.Pin, width, height int, serpentine bool, brightness float64) (*NeoPixelDisplay, error) {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	d := &NeoPixelDisplay{
		dev:        ws2812.New(pin),
		frame:      core.NewFrame(width, height),
		leds:       make([]color.RGBA, width*height),
		serpentine: serpentine,
		brightness: brightness,
	}
	if err := d.flush(); err != nil {
		return nil, err
	}
	return d, nil
}

// Clear resets the frame to black
func (d *NeoPixelDisplay) Clear() {
	d.frame.Fill(core.RGBBlack)
}

// SetPixel stages one board pixel; out-of-range writes are dropped
func (d *NeoPixelDisplay) SetPixel(x, y int, c core.RGB) {
	d.frame.Set(x, y, c)
}

// Present pushes the staged frame to the strip. Write faults after a good
// probe are transient glitches and the next frame overwrites them, so the
// error is dropped here.
func (d *NeoPixelDisplay) Present() {
	d.flush()
}

// DrawGameOver replaces the board with the end-of-round cross and pushes it
func (d *NeoPixelDisplay) DrawGameOver() {
	d.frame.Fill(core.RGBBlack)
	d.frame.DrawCross(colorGameOver)
	d.flush()
}

func (d *NeoPixelDisplay) flush() error {
	for y := 0; y < d.frame.Height(); y++ {
		for x := 0; x < d.frame.Width(); x++ {
			c, _ := d.frame.At(x, y)
			scaled := c.Scale(d.brightness)
			d.leds[d.index(x, y)] = color.RGBA{R: scaled.R, G: scaled.G, B: scaled.B, A: 255}
		}
	}

	var err error
	critical(func() { err = d.dev.WriteColors(d.leds) })
	return err
}

// index maps a board coordinate to its position on the strip. Serpentine
// matrices run odd rows right to left.
func (d *NeoPixelDisplay) index(x, y int) int {
	if d.serpentine && y%2 == 1 {
		return y*d.frame.Width() + (d.frame.Width() - 1 - x)
	}
	return y*d.frame.Width() + x
}

func critical(f func()) {
	state := interrupt.Disable()
	f()
	interrupt.Restore(state)
}
