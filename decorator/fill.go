package decorator

import (
	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// FillBackground paints a background colour behind the area its child occupies
type FillBackground[T any] struct {
	Child  render.View[T]
	Colour colour.RGB
}

// NewFillBackground wraps v with background c
func NewFillBackground[T any](v render.View[T], c colour.RGB) FillBackground[T] {
	return FillBackground[T]{Child: v, Colour: c}
}

// View implements render.View
func (fb FillBackground[T]) View(data T, ctx render.Context, f render.Frame) {
	size := render.VisibleBounds(fb.Child, data, ctx)
	blank := render.NewCell(' ', render.NewStyle().WithBg(fb.Colour))
	for y := 0; y < int(size.H); y++ {
		for x := 0; x < int(size.W); x++ {
			render.SetCellRelative(f, geom.NewCoord(x, y), render.DepthBackground, blank, ctx)
		}
	}
	fb.Child.View(data, ctx, f)
}
