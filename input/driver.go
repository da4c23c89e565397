package input

import "github.com/lixenwraith/tilt-snake/core"

// HeadingPort receives direction intents. The game engine satisfies it.
type HeadingPort interface {
	// Direction returns the heading applied on the last step
	Direction() core.Direction

	// SetPendingDirection records the heading to apply on the next step
	SetPendingDirection(d core.Direction)
}

// Driver polls a filter and forwards fresh intents to the heading port.
// Unchanged readings are not forwarded, so a queued turn survives until
// the next step consumes it.
type Driver struct {
	filter *Filter
	port   HeadingPort
}

// NewDriver binds a filter to a heading port
func NewDriver(filter *Filter, port HeadingPort) *Driver {
	return &Driver{filter: filter, port: port}
}

// Poll runs one filter read against the port's applied heading
func (d *Driver) Poll() {
	current := d.port.Direction()
	next := d.filter.ReadDirection(current)
	if next != current {
		d.port.SetPendingDirection(next)
	}
}
