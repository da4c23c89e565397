package engine

import "github.com/lixenwraith/tilt-snake/core"

// Grid palette, shared by every display backend
var (
	ColorHead  = core.RGB{80, 255, 80} // Bright green head
	ColorBody  = core.RGB{0, 150, 0}   // Darker green body
	ColorApple = core.RGB{255, 40, 0}  // Red apple
)

// draw pushes the live game state through the render port: body first, then
// the head over it, then the apple.
func (e *Engine) draw() {
	e.renderer.Clear()
	for i := 1; i < e.length; i++ {
		e.renderer.SetPixel(e.body[i].X, e.body[i].Y, ColorBody)
	}
	e.renderer.SetPixel(e.body[0].X, e.body[0].Y, ColorHead)
	e.renderer.SetPixel(e.apple.X, e.apple.Y, ColorApple)
	e.renderer.Present()
}
