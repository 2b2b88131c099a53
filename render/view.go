package render

import (
	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/geom"
)

// View renders data as relative cell writes into a frame
// A view may keep buffers between calls but must reset per-call state at the start of View
type View[T any] interface {
	View(data T, ctx Context, f Frame)
}

// ViewFunc adapts a function to View
type ViewFunc[T any] func(data T, ctx Context, f Frame)

// View implements View
func (fn ViewFunc[T]) View(data T, ctx Context, f Frame) {
	fn(data, ctx, f)
}

// BoundsReporter overrides the measured visible bounds of a view
type BoundsReporter[T any] interface {
	VisibleBounds(data T, ctx Context) geom.Size
}

// IntendedSizeReporter overrides the size a view reports after drawing
type IntendedSizeReporter[T any] interface {
	ViewReportingIntendedSize(data T, ctx Context, f Frame) geom.Size
}

// VisibleBounds returns the extent of v's writes that survive clipping under ctx
func VisibleBounds[T any](v View[T], data T, ctx Context) geom.Size {
	if r, ok := v.(BoundsReporter[T]); ok {
		return r.VisibleBounds(data, ctx)
	}
	m := NewMeasureBounds()
	v.View(data, ctx, m)
	return m.Bounds(ctx.OuterOffset)
}

// ViewReportingIntendedSize draws v into f and returns its natural size regardless of clipping
func ViewReportingIntendedSize[T any](v View[T], data T, ctx Context, f Frame) geom.Size {
	if r, ok := v.(IntendedSizeReporter[T]); ok {
		return r.ViewReportingIntendedSize(data, ctx, f)
	}
	m := NewMeasureBoundsAndDraw(f)
	v.View(data, ctx, m)
	return m.Bounds(ctx.OuterOffset)
}

// NaturalSize measures v's natural size without drawing anything
func NaturalSize[T any](v View[T], data T, ctx Context) geom.Size {
	return ViewReportingIntendedSize(v, data, ctx, discard{})
}

// Draw renders v once into f from a root context of the given size and transform
func Draw[T any](v View[T], data T, f Frame, size geom.Size, t colour.Transform) {
	v.View(data, NewContext(size, t), f)
}

type discard struct{}

func (discard) SetCellAbsolute(geom.Coord, int, Cell) {}
