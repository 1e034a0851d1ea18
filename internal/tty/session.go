package tty

import (
	"image/color"
	"time"

	"beach-weather/internal/sims/beach"

	"github.com/gdamore/tcell/v2"
)

// Session drives a World from terminal events and paints it to a screen.
// All methods must be called from one goroutine.
type Session struct {
	screen tcell.Screen
	world  *beach.World
	keys   *Keys
	dt     float64
}

// NewSession wires world to screen, stepping dt seconds per tick.
func NewSession(screen tcell.Screen, world *beach.World, dt float64) *Session {
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	return &Session{screen: screen, world: world, keys: NewKeys(), dt: dt}
}

// Keys exposes the key mapper.
func (s *Session) Keys() *Keys { return s.keys }

// HandleEvent applies a terminal event and reports whether the session
// should keep running.
func (s *Session) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if s.keys.Press(ev.Key(), ev.Rune(), now) {
			return false
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// Tick advances the world one step and redraws.
func (s *Session) Tick(now time.Time) {
	s.world.Step(s.dt, s.keys.Input(now))
	s.Draw()
}

// Draw paints the current view.
func (s *Session) Draw() {
	cols, rows := s.screen.Size()
	Paint(s.screen, Rasterize(s.world.View(), cols, rows))
	s.screen.Show()
}

// Paint copies f onto screen.
func Paint(screen tcell.Screen, f Frame) {
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			g := f.At(col, row)
			style := tcell.StyleDefault.Foreground(tcellColor(g.FG)).Background(tcellColor(g.BG))
			screen.SetContent(col, row, g.Rune, nil, style)
		}
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
