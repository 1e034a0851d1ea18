package tty

import (
	"time"

	"beach-weather/internal/sims/beach"

	"github.com/gdamore/tcell/v2"
)

// DefaultHold is how long an arrow stays held after its last key event.
// Terminals report no key releases, only auto-repeated presses.
const DefaultHold = 150 * time.Millisecond

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	numDirs
)

// Keys turns terminal key presses into beach Inputs, emulating held arrows.
type Keys struct {
	Hold time.Duration

	last  [numDirs]time.Time
	edges beach.Input
}

// NewKeys returns a mapper with the default hold time.
func NewKeys() *Keys {
	return &Keys{Hold: DefaultHold}
}

// Press records a key event at now and reports whether it asks to quit.
func (k *Keys) Press(key tcell.Key, r rune, now time.Time) (quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		k.hold(dirLeft, dirRight, now)
	case tcell.KeyRight:
		k.hold(dirRight, dirLeft, now)
	case tcell.KeyUp:
		k.hold(dirUp, dirDown, now)
	case tcell.KeyDown:
		k.hold(dirDown, dirUp, now)
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return true
		case 's', 'S':
			k.edges.GetSand = true
		case 'a', 'A':
			k.edges.GetWater = true
		case 'w', 'W':
			k.edges.GetWood = true
		case 'd', 'D':
			k.edges.Dump = true
		case 'r', 'R':
			k.edges.ToggleRain = true
		case 'b', 'B':
			k.edges.ToggleWind = true
		case 't', 'T':
			k.edges.ToggleTide = true
		case 'g', 'G':
			k.edges.ToggleDebug = true
		case 'f', 'F':
			k.edges.Confirm = true
		}
	}
	return false
}

// hold marks d as pressed and releases its opposite.
func (k *Keys) hold(d, opposite direction, now time.Time) {
	k.last[d] = now
	k.last[opposite] = time.Time{}
}

func (k *Keys) held(d direction, now time.Time) bool {
	t := k.last[d]
	return !t.IsZero() && now.Sub(t) < k.Hold
}

// Input returns the control state at now and clears the one-shot presses.
func (k *Keys) Input(now time.Time) beach.Input {
	in := k.edges
	k.edges = beach.Input{}
	in.Left = k.held(dirLeft, now)
	in.Right = k.held(dirRight, now)
	in.Up = k.held(dirUp, now)
	in.Down = k.held(dirDown, now)
	return in
}
