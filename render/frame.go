package render

import "github.com/lixenwraith/gridview/geom"

// Frame is a sink for cell writes in absolute coordinates
// Implementations keep, per coordinate, the write with the greatest depth, ties going to the later write
type Frame interface {
	SetCellAbsolute(coord geom.Coord, depth int, cell Cell)
}

// RelativeFrame is implemented by sinks that handle relative writes themselves
// Measuring sinks use it to skip colour work or to record writes clipping would drop
type RelativeFrame interface {
	Frame
	SetCellRelative(coord geom.Coord, depth int, cell Cell, ctx Context)
}

// SetCellRelative routes a view-relative write through ctx into f
// Writes outside ctx's window are dropped silently, this is clipping and not an error
func SetCellRelative(f Frame, coord geom.Coord, depth int, cell Cell, ctx Context) {
	if rf, ok := f.(RelativeFrame); ok {
		rf.SetCellRelative(coord, depth, cell, ctx)
		return
	}
	setCellRelativeToDraw(f, coord, depth, cell, ctx)
}

func setCellRelativeToDraw(f Frame, coord geom.Coord, depth int, cell Cell, ctx Context) {
	adjusted := coord.Add(ctx.InnerOffset)
	if !adjusted.IsValid(ctx.Size) {
		return
	}
	cell.Style = cell.Style.Transform(ctx.Transform)
	f.SetCellAbsolute(adjusted.Add(ctx.OuterOffset), depth+ctx.Depth, cell)
}

// FrameFunc adapts a function to Frame
type FrameFunc func(coord geom.Coord, depth int, cell Cell)

// SetCellAbsolute implements Frame
func (fn FrameFunc) SetCellAbsolute(coord geom.Coord, depth int, cell Cell) {
	fn(coord, depth, cell)
}
