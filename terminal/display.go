package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilt-snake/constants"
	"github.com/lixenwraith/tilt-snake/core"
)

// Chrome colors around the board
var (
	RgbBorder = tcell.NewRGBColor(90, 90, 110)
	RgbTitle  = tcell.NewRGBColor(120, 220, 120)
	RgbStatus = tcell.NewRGBColor(170, 170, 170)
	RgbNotice = tcell.NewRGBColor(230, 200, 80)
)

// colorGameOver paints the cross shown when a round ends
var colorGameOver = core.RGB{R: 220, G: 20, B: 20}

// Display renders the pixel frame as colored terminal cells, two columns
// per pixel so cells come out roughly square. The board is centered on
// every present, so resizes need no extra bookkeeping.
type Display struct {
	screen tcell.Screen
	frame  *core.Frame
	status string
	notice string
}

// NewDisplay creates a display on an initialized screen
func NewDisplay(screen tcell.Screen) *Display {
	return &Display{
		screen: screen,
		frame:  core.NewFrame(constants.GridWidth, constants.GridHeight),
	}
}

// Clear resets the frame to black
func (d *Display) Clear() {
	d.frame.Fill(core.RGBBlack)
}

// SetPixel stages one board pixel; out-of-range writes are dropped
func (d *Display) SetPixel(x, y int, c core.RGB) {
	d.frame.Set(x, y, c)
}

// Present flushes the staged frame to the terminal
func (d *Display) Present() {
	d.render()
}

// DrawGameOver replaces the board with the end-of-round cross and flushes it
func (d *Display) DrawGameOver() {
	d.frame.Fill(core.RGBBlack)
	d.frame.DrawCross(colorGameOver)
	d.render()
}

// SetStatus sets the line drawn under the board
func (d *Display) SetStatus(s string) {
	d.status = s
}

// SetNotice sets the highlighted line under the status, empty to hide
func (d *Display) SetNotice(s string) {
	d.notice = s
}

// TiltAt converts a pointer position into a tilt vector relative to the
// board center. A pointer constants.MouseTiltRadius rows from center means
// full deflection; callers clamp.
func (d *Display) TiltAt(mx, my int) (float64, float64) {
	originX, originY := d.origin()
	cx := float64(originX + 1 + d.frame.Width()*constants.CellsPerPixel/2)
	cy := float64(originY + 1 + d.frame.Height()/2)

	dx := (float64(mx) - cx) / (constants.MouseTiltRadius * constants.CellsPerPixel)
	dy := (float64(my) - cy) / constants.MouseTiltRadius
	return dx, dy
}

func (d *Display) origin() (int, int) {
	w, h := d.screen.Size()
	originX := (w - d.boxWidth()) / 2
	originY := (h - d.boxHeight()) / 2
	if originX < 0 {
		originX = 0
	}
	if originY < 0 {
		originY = 0
	}
	return originX, originY
}

func (d *Display) boxWidth() int {
	return d.frame.Width()*constants.CellsPerPixel + 2
}

func (d *Display) boxHeight() int {
	return d.frame.Height() + 2
}

func (d *Display) render() {
	d.screen.Clear()
	defaultStyle := tcell.StyleDefault
	originX, originY := d.origin()

	d.drawBorder(originX, originY, defaultStyle)

	// Board pixels as background-colored blanks
	for y := 0; y < d.frame.Height(); y++ {
		for x := 0; x < d.frame.Width(); x++ {
			c, _ := d.frame.At(x, y)
			style := defaultStyle.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			for i := 0; i < constants.CellsPerPixel; i++ {
				d.screen.SetContent(originX+1+x*constants.CellsPerPixel+i, originY+1+y, ' ', nil, style)
			}
		}
	}

	d.drawText(originX+1, originY+d.boxHeight(), d.status, defaultStyle.Foreground(RgbStatus))
	if d.notice != "" {
		d.drawText(originX+1, originY+d.boxHeight()+1, d.notice, defaultStyle.Foreground(RgbNotice))
	}

	d.screen.Show()
}

func (d *Display) drawBorder(originX, originY int, defaultStyle tcell.Style) {
	borderStyle := defaultStyle.Foreground(RgbBorder)
	right := originX + d.boxWidth() - 1
	bottom := originY + d.boxHeight() - 1

	d.screen.SetContent(originX, originY, '┌', nil, borderStyle)
	d.screen.SetContent(right, originY, '┐', nil, borderStyle)
	d.screen.SetContent(originX, bottom, '└', nil, borderStyle)
	d.screen.SetContent(right, bottom, '┘', nil, borderStyle)

	for x := originX + 1; x < right; x++ {
		d.screen.SetContent(x, originY, '─', nil, borderStyle)
		d.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := originY + 1; y < bottom; y++ {
		d.screen.SetContent(originX, y, '│', nil, borderStyle)
		d.screen.SetContent(right, y, '│', nil, borderStyle)
	}

	// Title sits in the top border
	titleX := originX + (d.boxWidth()-len(constants.Title))/2
	d.drawText(titleX, originY, constants.Title, defaultStyle.Foreground(RgbTitle))
}

func (d *Display) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		d.screen.SetContent(x+i, y, ch, nil, style)
	}
}
