package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// Screen composites into a render.Buffer and presents it on a tcell screen
type Screen struct {
	screen    tcell.Screen
	buf       *render.Buffer
	transform colour.Transform
	base      tcell.Style
}

// NewScreen wraps an initialised tcell screen
func NewScreen(s tcell.Screen, t colour.Transform) *Screen {
	w, h := s.Size()
	return &Screen{
		screen:    s,
		buf:       render.NewBuffer(geom.NewSize(uint32(max(w, 0)), uint32(max(h, 0)))),
		transform: colour.OrIdentity(t),
		base:      tcell.StyleDefault,
	}
}

// OpenScreen creates and initialises the terminal screen
func OpenScreen(t colour.Transform) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initialising screen: %w", err)
	}
	return NewScreen(s, t), nil
}

// Close restores the terminal
func (s *Screen) Close() {
	s.screen.Fini()
}

// Tcell returns the underlying screen for event polling
func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

// Size returns the current drawing size
func (s *Screen) Size() geom.Size {
	return s.buf.Size()
}

// SetBase sets the style of untouched cells and of unset style fields
func (s *Screen) SetBase(st tcell.Style) {
	s.base = st
}

// Resize adopts the terminal's current size and forces a full repaint
func (s *Screen) Resize() {
	w, h := s.screen.Size()
	s.buf.Resize(geom.NewSize(uint32(max(w, 0)), uint32(max(h, 0))))
	s.screen.Sync()
}

// Render draws v over the whole screen and shows the result
func Render[T any](s *Screen, v render.View[T], data T) {
	s.buf.Clear()
	render.Draw(v, data, s.buf, s.buf.Size(), s.transform)
	s.flush()
}

// flush writes render buffer to terminal
func (s *Screen) flush() {
	size := s.buf.Size()
	for y := 0; y < int(size.H); y++ {
		for x := 0; x < int(size.W); x++ {
			c, ok := s.buf.Get(geom.NewCoord(x, y))
			if !ok {
				s.screen.SetContent(x, y, ' ', nil, s.base)
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.screen.SetContent(x, y, r, nil, TcellStyle(s.base, c.Style))
		}
	}
	s.screen.Show()
}
