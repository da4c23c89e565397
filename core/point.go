package core

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Add returns the point offset by another point
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}
