package input

import (
	"math"
	"time"

	"github.com/lixenwraith/tilt-snake/constants"
	"github.com/lixenwraith/tilt-snake/core"
)

// Config tunes the direction filter pipeline
type Config struct {
	// Alpha weights the exponential smoothing toward history. Zero disables
	// smoothing entirely; each sample then stands on its own.
	Alpha float64

	// DeadZone is the per-axis magnitude treated as no intent
	DeadZone float64

	// Trigger is the dominant-axis magnitude that emits a direction
	Trigger float64

	// Mapping converts sensor axes into grid axes
	Mapping AxisMapping
}

// DefaultTiltConfig returns the tuning for tilt-style sensors, which need
// smoothing against settle wobble and a startup calibration.
func DefaultTiltConfig() Config {
	return Config{
		Alpha:    constants.SmoothingAlpha,
		DeadZone: constants.DeadZone,
		Trigger:  constants.TriggerThreshold,
	}
}

// DefaultStickConfig returns the tuning for self-centering sticks: the raw
// delta is the filtered value and no bias calibration is wanted.
func DefaultStickConfig() Config {
	return Config{
		Alpha:    0,
		DeadZone: constants.DeadZone,
		Trigger:  constants.TriggerThreshold,
	}
}

// Filter turns a continuous noisy 2-axis signal into a stable grid
// direction: bias subtraction, exponential smoothing, dead zone, dominant
// axis selection, then a trigger threshold with reversal suppression. The
// smoothed state lives for the whole run and is never reset by game resets.
type Filter struct {
	src SampleSource
	cfg Config

	// Calibration bias, fixed after Calibrate
	offsetX, offsetY float64

	// Smoothed axis state
	filteredX, filteredY float64
}

// NewTiltFilter creates a filter for a tilt-style source. Call Calibrate
// before the first ReadDirection.
func NewTiltFilter(src SampleSource, cfg Config) *Filter {
	return &Filter{src: src, cfg: cfg}
}

// NewStickFilter creates a filter for a self-centering source. Smoothing is
// forced off; the rest of the pipeline is identical.
func NewStickFilter(src SampleSource, cfg Config) *Filter {
	cfg.Alpha = 0
	return &Filter{src: src, cfg: cfg}
}

// Calibrate averages samples readings taken interval apart while the device
// rests, and fixes the result as the per-axis bias. It blocks the caller for
// the whole collection; this is a one-time startup cost, so no direction
// reading exists before it returns. The bias never changes afterwards.
func (f *Filter) Calibrate(samples int, interval time.Duration) {
	if samples <= 0 {
		return
	}

	var sumX, sumY float64
	for i := 0; i < samples; i++ {
		s := f.src.Read()
		sumX += s.X
		sumY += s.Y
		time.Sleep(interval)
	}
	f.offsetX = sumX / float64(samples)
	f.offsetY = sumY / float64(samples)
}

// ReadDirection consumes one sample and returns the heading the player
// intends, or current when no intent clears the pipeline. It always returns
// a valid direction, never blocks, and settles to a stable answer for a
// static signal.
func (f *Filter) ReadDirection(current core.Direction) core.Direction {
	raw := f.src.Read()
	d := f.cfg.Mapping.Apply(Sample{X: raw.X - f.offsetX, Y: raw.Y - f.offsetY})

	f.filteredX = f.filteredX*f.cfg.Alpha + d.X*(1-f.cfg.Alpha)
	f.filteredY = f.filteredY*f.cfg.Alpha + d.Y*(1-f.cfg.Alpha)

	ax := math.Abs(f.filteredX)
	ay := math.Abs(f.filteredY)
	if ax < f.cfg.DeadZone && ay < f.cfg.DeadZone {
		return current
	}

	// The larger magnitude picks the travel axis, so diagonal tilts never
	// register. Ties go to the X axis.
	if ax >= ay {
		if f.filteredX >= f.cfg.Trigger && !core.DirectionRight.IsOpposite(current) {
			return core.DirectionRight
		}
		if f.filteredX <= -f.cfg.Trigger && !core.DirectionLeft.IsOpposite(current) {
			return core.DirectionLeft
		}
	} else {
		if f.filteredY >= f.cfg.Trigger && !core.DirectionDown.IsOpposite(current) {
			return core.DirectionDown
		}
		if f.filteredY <= -f.cfg.Trigger && !core.DirectionUp.IsOpposite(current) {
			return core.DirectionUp
		}
	}
	return current
}
