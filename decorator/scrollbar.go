package decorator

import (
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// VerticalScrollbar draws a track with a proportional thumb in one column
type VerticalScrollbar struct {
	Style render.Style
	Track rune
	Thumb rune
	// Idle fills the column when there is nothing to scroll
	Idle rune
}

// NewVerticalScrollbar returns the default shaded scrollbar
func NewVerticalScrollbar(style render.Style) *VerticalScrollbar {
	return &VerticalScrollbar{
		Style: style,
		Track: '░',
		Thumb: '█',
		Idle:  '│',
	}
}

// thumb returns the thumb start row and height for a track of trackH rows
func thumb(offset, visible, total, trackH int) (start, height int) {
	height = max(1, min(trackH, visible*trackH/total))
	maxScroll := total - visible
	if maxScroll > 0 {
		start = offset * (trackH - height) / maxScroll
	}
	start = max(0, min(start, trackH-height))
	return start, height
}

// draw renders the scrollbar in column x over trackH rows
func (sb *VerticalScrollbar) draw(x, trackH int, limits VerticalScrollLimits, offset int, ctx render.Context, f render.Frame) {
	set := func(y int, r rune) {
		render.SetCellRelative(f, geom.NewCoord(x, y), render.DepthOverlay, render.NewCell(r, sb.Style), ctx)
	}

	total, visible := limits.ContentHeight, limits.ViewportHeight
	if total <= visible || trackH < 3 {
		for y := 0; y < trackH; y++ {
			set(y, sb.Idle)
		}
		return
	}

	start, height := thumb(offset, visible, total, trackH)
	for y := 0; y < trackH; y++ {
		if y >= start && y < start+height {
			set(y, sb.Thumb)
		} else {
			set(y, sb.Track)
		}
	}
}
