package core

// Direction is a grid-aligned movement heading. The grid has no diagonal
// movement, so exactly four values exist. The zero value is invalid.
type Direction uint8

const (
	DirectionUp Direction = iota + 1
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Opposite returns the 180-degree reversal of the direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return 0
}

// IsOpposite reports whether other is the exact reversal of d
func (d Direction) IsOpposite(other Direction) bool {
	return d != 0 && d.Opposite() == other
}

// Delta returns the unit offset one step along the direction.
// Y grows downward, matching screen and matrix row order.
func (d Direction) Delta() Point {
	switch d {
	case DirectionUp:
		return Point{0, -1}
	case DirectionDown:
		return Point{0, 1}
	case DirectionLeft:
		return Point{-1, 0}
	case DirectionRight:
		return Point{1, 0}
	}
	return Point{}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	case DirectionLeft:
		return "LEFT"
	case DirectionRight:
		return "RIGHT"
	}
	return "NONE"
}
