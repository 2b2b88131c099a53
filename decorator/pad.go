package decorator

import (
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// Pad insets a child by its padding without drawing anything itself
type Pad[T any] struct {
	Child   render.View[T]
	Padding Padding
}

// NewPad wraps v with padding p
func NewPad[T any](v render.View[T], p Padding) Pad[T] {
	return Pad[T]{Child: v, Padding: p}
}

func (p Pad[T]) childContext(ctx render.Context) render.Context {
	return ctx.AddOffset(p.Padding.Offset()).ConstrainSizeBy(p.Padding.Size())
}

// View implements render.View
func (p Pad[T]) View(data T, ctx render.Context, f render.Frame) {
	p.Child.View(data, p.childContext(ctx), f)
}

// VisibleBounds reports the child's visible bounds plus padding on all sides, within ctx.Size
func (p Pad[T]) VisibleBounds(data T, ctx render.Context) geom.Size {
	child := render.VisibleBounds(p.Child, data, p.childContext(ctx))
	return child.Add(p.Padding.Size()).Min(ctx.Size)
}

// ViewReportingIntendedSize reports the child's natural size plus padding on all sides
func (p Pad[T]) ViewReportingIntendedSize(data T, ctx render.Context, f render.Frame) geom.Size {
	child := render.ViewReportingIntendedSize(p.Child, data, p.childContext(ctx), f)
	return child.Add(p.Padding.Size())
}
