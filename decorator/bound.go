package decorator

import (
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// Bound limits a child to a fixed size and reports that size as its own
type Bound[T any] struct {
	Child render.View[T]
	Size  geom.Size
}

// NewBound wraps v in a window of at most size
func NewBound[T any](v render.View[T], size geom.Size) Bound[T] {
	return Bound[T]{Child: v, Size: size}
}

// View implements render.View
func (b Bound[T]) View(data T, ctx render.Context, f render.Frame) {
	b.Child.View(data, ctx.ConstrainSizeTo(b.Size), f)
}

// VisibleBounds implements render.BoundsReporter
func (b Bound[T]) VisibleBounds(_ T, _ render.Context) geom.Size {
	return b.Size
}

// ViewReportingIntendedSize implements render.IntendedSizeReporter
func (b Bound[T]) ViewReportingIntendedSize(data T, ctx render.Context, f render.Frame) geom.Size {
	b.View(data, ctx, f)
	return b.Size
}
