package decorator

import "fmt"

// VerticalScrollLimits are the content and viewport heights seen on the last render
type VerticalScrollLimits struct {
	ContentHeight  int
	ViewportHeight int
}

// MaxScroll returns the largest useful offset, never negative
func (l VerticalScrollLimits) MaxScroll() int {
	return max(0, l.ContentHeight-l.ViewportHeight)
}

// ScrollCommand is a user-level scroll request
type ScrollCommand uint8

const (
	ScrollLineUp ScrollCommand = iota
	ScrollLineDown
	ScrollPageUp
	ScrollPageDown
	ScrollToTop
	ScrollToBottom
)

var scrollCommandNames = [...]string{
	ScrollLineUp:   "line-up",
	ScrollLineDown: "line-down",
	ScrollPageUp:   "page-up",
	ScrollPageDown: "page-down",
	ScrollToTop:    "top",
	ScrollToBottom: "bottom",
}

// String implements fmt.Stringer
func (c ScrollCommand) String() string {
	if int(c) < len(scrollCommandNames) {
		return scrollCommandNames[c]
	}
	return fmt.Sprintf("ScrollCommand(%d)", c)
}

// VerticalScrollState tracks scroll position for a VerticalScroll
// Offset is owned by commands; Limits are rewritten by every render
type VerticalScrollState struct {
	Offset int // First visible content row
	Limits VerticalScrollLimits
}

// NewVerticalScrollState creates state scrolled to the top
func NewVerticalScrollState() *VerticalScrollState {
	return &VerticalScrollState{}
}

// --- Scroll manipulation ---

// ScrollBy adjusts offset by delta, clamping to [0, MaxScroll]
func (s *VerticalScrollState) ScrollBy(delta int) {
	s.ScrollTo(s.Offset + delta)
}

// ScrollTo sets offset to a specific position, clamped
func (s *VerticalScrollState) ScrollTo(pos int) {
	s.Offset = clampScroll(pos, s.Limits.MaxScroll())
}

// Apply performs cmd
func (s *VerticalScrollState) Apply(cmd ScrollCommand) {
	switch cmd {
	case ScrollLineUp:
		s.LineUp()
	case ScrollLineDown:
		s.LineDown()
	case ScrollPageUp:
		s.PageUp()
	case ScrollPageDown:
		s.PageDown()
	case ScrollToTop:
		s.ToTop()
	case ScrollToBottom:
		s.ToBottom()
	}
}

// LineUp scrolls up one row
func (s *VerticalScrollState) LineUp() { s.ScrollBy(-1) }

// LineDown scrolls down one row
func (s *VerticalScrollState) LineDown() { s.ScrollBy(1) }

// PageUp scrolls up by the viewport height
func (s *VerticalScrollState) PageUp() { s.ScrollBy(-pageDelta(s.Limits.ViewportHeight)) }

// PageDown scrolls down by the viewport height
func (s *VerticalScrollState) PageDown() { s.ScrollBy(pageDelta(s.Limits.ViewportHeight)) }

// ToTop scrolls to the first row
func (s *VerticalScrollState) ToTop() { s.Offset = 0 }

// ToBottom scrolls so the last content row is at the bottom of the viewport
func (s *VerticalScrollState) ToBottom() { s.Offset = s.Limits.MaxScroll() }

// --- Position queries ---

// MaxScroll returns the largest offset from the last render
func (s *VerticalScrollState) MaxScroll() int {
	return s.Limits.MaxScroll()
}

// AtTop returns true if scrolled to top
func (s *VerticalScrollState) AtTop() bool {
	return s.Offset <= 0
}

// AtBottom returns true if scrolled to bottom
func (s *VerticalScrollState) AtBottom() bool {
	return s.Offset >= s.Limits.MaxScroll()
}

// Percent returns scroll position as 0-100 percentage
func (s *VerticalScrollState) Percent() int {
	maxScroll := s.Limits.MaxScroll()
	if maxScroll <= 0 {
		return 0
	}
	return min(100, max(0, s.Offset*100/maxScroll))
}

// pageDelta returns the page scroll amount, at least one row
func pageDelta(visible int) int {
	return max(1, visible)
}

func clampScroll(scroll, maxScroll int) int {
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}
