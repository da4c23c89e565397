package core

// Frame is a 2D pixel buffer shared by the display backends. Writes outside
// the frame are silently dropped so internal geometry bugs cannot take the
// device down at the render boundary.
type Frame struct {
	width  int
	height int
	pixels []RGB
}

// NewFrame creates a frame with the given dimensions, cleared to black
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pixels: make([]RGB, width*height),
	}
}

// Width returns the frame width
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height
func (f *Frame) Height() int {
	return f.height
}

// Set writes one pixel and reports whether the coordinate was in range
func (f *Frame) Set(x, y int, c RGB) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	f.pixels[y*f.width+x] = c
	return true
}

// At returns the pixel at the given position
func (f *Frame) At(x, y int) (RGB, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return RGB{}, false
	}
	return f.pixels[y*f.width+x], true
}

// Fill sets every pixel to the given color
func (f *Frame) Fill(c RGB) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// DrawCross paints both diagonals, the terminal game-over pattern
func (f *Frame) DrawCross(c RGB) {
	n := f.width
	if f.height < n {
		n = f.height
	}
	for i := 0; i < n; i++ {
		f.Set(i, i, c)
		f.Set(f.width-1-i, i, c)
	}
}
