package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilt-snake/core"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestDecodeAction(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"escape quits", keyEvent(tcell.KeyEscape, 0), ActionQuit},
		{"ctrl-c quits", keyEvent(tcell.KeyCtrlC, 0), ActionQuit},
		{"q quits", keyEvent(tcell.KeyRune, 'q'), ActionQuit},
		{"r resets", keyEvent(tcell.KeyRune, 'r'), ActionReset},
		{"R resets", keyEvent(tcell.KeyRune, 'R'), ActionReset},
		{"p pauses", keyEvent(tcell.KeyRune, 'p'), ActionPause},
		{"space pauses", keyEvent(tcell.KeyRune, ' '), ActionPause},
		{"m mutes", keyEvent(tcell.KeyRune, 'm'), ActionMute},
		{"plain rune ignored", keyEvent(tcell.KeyRune, 'x'), ActionNone},
		{"arrow not an action", keyEvent(tcell.KeyUp, 0), ActionNone},
	}

	for _, tc := range cases {
		if got := DecodeAction(tc.ev); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDecodeDirection(t *testing.T) {
	cases := []struct {
		name   string
		ev     *tcell.EventKey
		want   core.Direction
		wantOk bool
	}{
		{"arrow up", keyEvent(tcell.KeyUp, 0), core.DirectionUp, true},
		{"arrow down", keyEvent(tcell.KeyDown, 0), core.DirectionDown, true},
		{"arrow left", keyEvent(tcell.KeyLeft, 0), core.DirectionLeft, true},
		{"arrow right", keyEvent(tcell.KeyRight, 0), core.DirectionRight, true},
		{"vi k", keyEvent(tcell.KeyRune, 'k'), core.DirectionUp, true},
		{"vi j", keyEvent(tcell.KeyRune, 'j'), core.DirectionDown, true},
		{"vi h", keyEvent(tcell.KeyRune, 'h'), core.DirectionLeft, true},
		{"vi l", keyEvent(tcell.KeyRune, 'l'), core.DirectionRight, true},
		{"unbound rune", keyEvent(tcell.KeyRune, 'z'), 0, false},
		{"control key", keyEvent(tcell.KeyEscape, 0), 0, false},
	}

	for _, tc := range cases {
		got, ok := DecodeDirection(tc.ev)
		if got != tc.want || ok != tc.wantOk {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tc.name, got, ok, tc.want, tc.wantOk)
		}
	}
}
