package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilt-snake/core"
)

// Action is a non-steering control request from the keyboard
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionPause
	ActionMute
)

// DecodeAction maps control keys to actions
func DecodeAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		case 'r', 'R':
			return ActionReset
		case 'p', 'P', ' ':
			return ActionPause
		case 'm', 'M':
			return ActionMute
		}
	}
	return ActionNone
}

// DecodeDirection maps arrow keys and vi movement keys to grid directions
func DecodeDirection(ev *tcell.EventKey) (core.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.DirectionUp, true
	case tcell.KeyDown:
		return core.DirectionDown, true
	case tcell.KeyLeft:
		return core.DirectionLeft, true
	case tcell.KeyRight:
		return core.DirectionRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return core.DirectionUp, true
		case 'j':
			return core.DirectionDown, true
		case 'h':
			return core.DirectionLeft, true
		case 'l':
			return core.DirectionRight, true
		}
	}
	return 0, false
}
