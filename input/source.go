package input

// Sample is one raw 2-axis reading in the signal's working unit, nominally
// [-1, 1] per axis for a full-scale deflection.
type Sample struct {
	X, Y float64
}

// SampleSource produces raw axis samples from a physical or emulated device.
// Read never blocks. Init is called once at startup; a failure there is the
// device-missing signal, distinct from a centered reading, and the caller may
// keep running without autonomous heading input.
type SampleSource interface {
	Init() error
	Read() Sample
}

// AxisMapping corrects for the physical mounting of the sensor. Which raw
// sign means which grid direction is a property of assembly, not logic, so
// it stays configurable. The identity mapping reads +X as right and +Y as
// down, matching matrix row order.
type AxisMapping struct {
	InvertX  bool
	InvertY  bool
	SwapAxes bool
}

// Apply transforms a sample from the sensor frame into the grid frame
func (m AxisMapping) Apply(s Sample) Sample {
	if m.SwapAxes {
		s.X, s.Y = s.Y, s.X
	}
	if m.InvertX {
		s.X = -s.X
	}
	if m.InvertY {
		s.Y = -s.Y
	}
	return s
}
