//go:build tinygo

package firmware

import (
	"fmt"
	"machine"

	"github.com/lixenwraith/tilt-snake/input"
)

// Joystick reads a two-axis analog stick through the on-chip ADC
type Joystick struct {
	x machine.ADC
	y machine.ADC
}

// NewJoystick creates a joystick on the given analog pins
func NewJoystick(xPin, yPin machine.Pin) *Joystick {
	return &Joystick{
		x: machine.ADC{Pin: xPin},
		y: machine.ADC{Pin: yPin},
	}
}

// Init configures both ADC channels
func (j *Joystick) Init() error {
	machine.InitADC()
	if err := j.x.Configure(machine.ADCConfig{}); err != nil {
		return fmt.Errorf("joystick x axis: %w", err)
	}
	if err := j.y.Configure(machine.ADCConfig{}); err != nil {
		return fmt.Errorf("joystick y axis: %w", err)
	}
	return nil
}

// Read returns the stick deflection normalized to [-1, 1] per axis.
// A centred stick reads about 32767 on the 16-bit ADC scale.
func (j *Joystick) Read() input.Sample {
	return input.Sample{
		X: normalize(j.x.Get()),
		Y: normalize(j.y.Get()),
	}
}

func normalize(v uint16) float64 {
	return (float64(v) - 32768) / 32768
}
