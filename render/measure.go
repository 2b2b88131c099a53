package render

import "github.com/lixenwraith/gridview/geom"

// MeasureBounds is a sink that ignores payloads and tracks the furthest coordinate written
// Relative writes are clipped exactly as a drawing sink would clip them
type MeasureBounds struct {
	maxCoord geom.Coord
	touched  bool
}

// NewMeasureBounds creates an empty measuring sink
func NewMeasureBounds() *MeasureBounds {
	return &MeasureBounds{}
}

// Reset forgets every recorded write
func (m *MeasureBounds) Reset() {
	m.maxCoord = geom.Coord{}
	m.touched = false
}

// SetCellAbsolute implements Frame
func (m *MeasureBounds) SetCellAbsolute(coord geom.Coord, _ int, _ Cell) {
	m.record(coord)
}

// SetCellRelative implements RelativeFrame, clipping without colour work
func (m *MeasureBounds) SetCellRelative(coord geom.Coord, _ int, _ Cell, ctx Context) {
	adjusted := coord.Add(ctx.InnerOffset)
	if !adjusted.IsValid(ctx.Size) {
		return
	}
	m.record(adjusted.Add(ctx.OuterOffset))
}

func (m *MeasureBounds) record(coord geom.Coord) {
	if !m.touched {
		m.maxCoord = coord
		m.touched = true
		return
	}
	m.maxCoord = m.maxCoord.Max(coord)
}

// Bounds returns the zero-based extent of recorded writes relative to outerOffset
// An untouched sink reports (0,0); each axis is floored at zero
func (m *MeasureBounds) Bounds(outerOffset geom.Coord) geom.Size {
	if !m.touched {
		return geom.Size{}
	}
	extent := m.maxCoord.Sub(outerOffset).Add(geom.Coord{X: 1, Y: 1}).Max(geom.Coord{})
	size, _ := extent.ToSize() // non-negative after Max
	return size
}

// MeasureBoundsAndDraw forwards writes to a real frame while recording the natural size
// The recorded size ignores clipping, so it reports how large content wants to be
type MeasureBoundsAndDraw struct {
	frame   Frame
	measure MeasureBounds
}

// NewMeasureBoundsAndDraw wraps frame
func NewMeasureBoundsAndDraw(frame Frame) *MeasureBoundsAndDraw {
	return &MeasureBoundsAndDraw{frame: frame}
}

// SetCellAbsolute implements Frame
func (m *MeasureBoundsAndDraw) SetCellAbsolute(coord geom.Coord, depth int, cell Cell) {
	m.frame.SetCellAbsolute(coord, depth, cell)
	m.measure.record(coord)
}

// SetCellRelative implements RelativeFrame
func (m *MeasureBoundsAndDraw) SetCellRelative(coord geom.Coord, depth int, cell Cell, ctx Context) {
	SetCellRelative(m.frame, coord, depth, cell, ctx)
	m.measure.record(coord.Add(ctx.InnerOffset).Add(ctx.OuterOffset))
}

// Bounds returns the natural extent of everything written, relative to outerOffset
func (m *MeasureBoundsAndDraw) Bounds(outerOffset geom.Coord) geom.Size {
	return m.measure.Bounds(outerOffset)
}
