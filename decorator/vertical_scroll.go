package decorator

import (
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// VerticalScroll shows a window onto a child of arbitrary height
// The child is laid out at the viewport width with unbounded height and shifted up by the
// state's offset; the limits in State are recomputed on every render
type VerticalScroll[T any] struct {
	Child     render.View[T]
	State     *VerticalScrollState
	Scrollbar *VerticalScrollbar
}

// NewVerticalScroll wraps v, scrolled according to state
func NewVerticalScroll[T any](v render.View[T], state *VerticalScrollState) VerticalScroll[T] {
	return VerticalScroll[T]{Child: v, State: state}
}

// WithScrollbar returns the scroll drawing sb in its last column
func (s VerticalScroll[T]) WithScrollbar(sb *VerticalScrollbar) VerticalScroll[T] {
	s.Scrollbar = sb
	return s
}

// View implements render.View
func (s VerticalScroll[T]) View(data T, ctx render.Context, f render.Frame) {
	width := ctx.Size.W
	if s.Scrollbar != nil && width > 0 {
		width--
	}
	childCtx := ctx.
		AddInnerOffset(geom.NewCoord(0, -s.State.Offset)).
		WithSize(geom.NewSize(width, geom.Unbounded))

	viewport := &viewportFrame{
		frame:  f,
		origin: ctx.OuterOffset,
		size:   geom.NewSize(width, ctx.Size.H),
	}
	measure := render.NewMeasureBoundsAndDraw(viewport)
	s.Child.View(data, childCtx, measure)

	// Content height is measured in the child's own coordinates, before scrolling
	content := measure.Bounds(childCtx.OuterOffset.Add(childCtx.InnerOffset))
	s.State.Limits = VerticalScrollLimits{
		ContentHeight:  int(content.H),
		ViewportHeight: int(ctx.Size.H),
	}

	if s.Scrollbar != nil && ctx.Size.W > 0 && ctx.Size.H < geom.Unbounded {
		s.Scrollbar.draw(int(width), int(ctx.Size.H), s.State.Limits, s.State.Offset, ctx, f)
	}
}

// viewportFrame drops absolute writes outside the rectangle at origin of the given size
type viewportFrame struct {
	frame  render.Frame
	origin geom.Coord
	size   geom.Size
}

func (v *viewportFrame) SetCellAbsolute(coord geom.Coord, depth int, cell render.Cell) {
	if !coord.Sub(v.origin).IsValid(v.size) {
		return
	}
	v.frame.SetCellAbsolute(coord, depth, cell)
}
