package engine

import "github.com/lixenwraith/tilt-snake/core"

// Renderer is the display side of the engine's output. The engine drives it
// exactly once per Update call. Out-of-range pixel writes are silently
// ignored, never surfaced as errors.
type Renderer interface {
	// Clear resets the working frame to black
	Clear()

	// SetPixel writes one grid pixel; coordinates outside the grid are a no-op
	SetPixel(x, y int, c core.RGB)

	// Present pushes the working frame to the device
	Present()

	// DrawGameOver shows the terminal state, a diagonal red cross
	DrawGameOver()
}

// Sounder is the audio side of the engine's output. PlayGameOver blocks for
// the full tone sequence; the other cues return as quickly as the platform
// allows.
type Sounder interface {
	PlayStart()
	PlayEat()
	PlayGameOver()
}
