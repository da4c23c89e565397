package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/tilt-snake/constants"
	"github.com/lixenwraith/tilt-snake/core"
)

// Config holds the cadence tuning for a run
type Config struct {
	StartInterval time.Duration // Step interval on a fresh run
	MinInterval   time.Duration // Cadence floor
	Speedup       time.Duration // Interval reduction per apple
}

// DefaultConfig returns the standard cadence tuning
func DefaultConfig() Config {
	return Config{
		StartInterval: constants.StartStepInterval,
		MinInterval:   constants.MinStepInterval,
		Speedup:       constants.StepSpeedup,
	}
}

// Engine owns the snake, the apple, and the step clock. It advances the
// simulation on a fixed cadence decoupled from the caller's poll rate and
// drives the render and sound ports. All state is mutated on the caller's
// stack; the engine is single threaded.
type Engine struct {
	renderer Renderer
	sounder  Sounder
	rng      *rand.Rand
	cfg      Config

	// Arena-backed body, head at index 0. Movement shifts in place, no
	// allocation in the step path.
	body   [constants.GridCapacity]core.Point
	length int
	apple  core.Point

	direction core.Direction
	pending   core.Direction

	stepInterval time.Duration
	lastStep     time.Time

	over bool
}

// New creates an engine wired to its output ports. The rand source drives
// apple placement; pass a seeded source for deterministic behavior.
func New(renderer Renderer, sounder Sounder, rng *rand.Rand, cfg Config) *Engine {
	return &Engine{
		renderer: renderer,
		sounder:  sounder,
		rng:      rng,
		cfg:      cfg,
	}
}

// Reset starts a fresh run unconditionally: heading right, spawn-length
// snake at the fixed start position, fresh apple, step clock anchored to
// now. Plays the start chirp.
func (e *Engine) Reset(now time.Time) {
	e.over = false
	e.direction = core.DirectionRight
	e.pending = core.DirectionRight
	e.stepInterval = e.cfg.StartInterval
	e.lastStep = now

	e.length = constants.SpawnLength
	for i := 0; i < e.length; i++ {
		e.body[i] = core.Point{X: constants.SpawnHeadX - i, Y: constants.SpawnHeadY}
	}

	e.placeApple()
	e.sounder.PlayStart()
}

// SetPendingDirection records the latest desired heading. It takes effect on
// the next simulation step, and only if it is not a direct reversal of the
// heading current at that moment.
func (e *Engine) SetPendingDirection(d core.Direction) {
	e.pending = d
}

// Direction returns the heading the snake is currently traveling
func (e *Engine) Direction() core.Direction {
	return e.direction
}

// Over reports whether the run has ended
func (e *Engine) Over() bool {
	return e.over
}

// Length returns the current body length
func (e *Engine) Length() int {
	return e.length
}

// StepInterval returns the current time between simulation steps
func (e *Engine) StepInterval() time.Duration {
	return e.stepInterval
}

// Update advances the engine to now. After game over it only redraws the
// terminal state. While running it executes at most one simulation step per
// call, when the step interval has elapsed. The render port is driven
// exactly once per call on every path.
func (e *Engine) Update(now time.Time) {
	if e.over {
		e.renderer.DrawGameOver()
		return
	}

	if now.Sub(e.lastStep) >= e.stepInterval {
		e.step()
		e.lastStep = now
		if e.over {
			// The step already drew the terminal state
			return
		}
	}

	e.draw()
}

// step executes one discrete simulation step
func (e *Engine) step() {
	// Reversal requests are dropped here, not queued
	if !e.pending.IsOpposite(e.direction) {
		e.direction = e.pending
	}

	next := e.body[0].Add(e.direction.Delta())

	if next.X < 0 || next.X >= constants.GridWidth || next.Y < 0 || next.Y >= constants.GridHeight {
		e.triggerGameOver()
		return
	}

	ate := next == e.apple
	willGrow := ate && e.length < constants.GridCapacity

	// Self collision with tail exclusion: on a non-growing move the tail
	// vacates its cell this step, so it is not an obstacle. On a growing
	// move the tail stays put and must be checked too.
	occupied := e.length
	if !willGrow {
		occupied--
	}
	for i := 0; i < occupied; i++ {
		if e.body[i] == next {
			e.triggerGameOver()
			return
		}
	}

	if willGrow {
		// The shift below fills the extra slot from the old tail instead of
		// dropping it
		e.length++
	}

	for i := e.length - 1; i > 0; i-- {
		e.body[i] = e.body[i-1]
	}
	e.body[0] = next

	if ate {
		e.sounder.PlayEat()
		e.placeApple()
		e.stepInterval -= e.cfg.Speedup
		if e.stepInterval < e.cfg.MinInterval {
			e.stepInterval = e.cfg.MinInterval
		}
	}
}

// placeApple chooses a uniformly random free cell by rejection sampling.
// Growth is capped at grid capacity, so when any cell is free this
// terminates; on a full board the apple stays where it is.
func (e *Engine) placeApple() {
	if e.length >= constants.GridCapacity {
		return
	}
	for {
		p := core.Point{
			X: e.rng.Intn(constants.GridWidth),
			Y: e.rng.Intn(constants.GridHeight),
		}
		if !e.occupies(p) {
			e.apple = p
			return
		}
	}
}

// occupies reports whether any body cell sits on p
func (e *Engine) occupies(p core.Point) bool {
	for i := 0; i < e.length; i++ {
		if e.body[i] == p {
			return true
		}
	}
	return false
}

// triggerGameOver enters the terminal state and performs its side effects:
// the cross pattern on the display and the blocking descending tone
// sequence. The engine stays in this state until Reset.
func (e *Engine) triggerGameOver() {
	e.over = true
	e.renderer.DrawGameOver()
	e.sounder.PlayGameOver()
}
