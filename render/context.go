package render

import (
	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/geom"
)

// Context carries placement, clipping, depth and colour state down the view tree, passed by value
// Derivation methods return a new Context; an ancestor's value is never modified
type Context struct {
	// OuterOffset places the view's window in the sink's coordinate space
	OuterOffset geom.Coord
	// InnerOffset shifts content inside the window (scrolling); clipping is applied after it
	InnerOffset geom.Coord
	// Size is the visible extent of the window; writes outside are dropped
	Size geom.Size
	// Depth is the z baseline added to every relative depth
	Depth int
	// Transform maps colours to the sink's capability, nil means identity
	Transform colour.Transform
}

// NewContext creates a root context covering size
func NewContext(size geom.Size, t colour.Transform) Context {
	return Context{
		Size:      size,
		Transform: colour.OrIdentity(t),
	}
}

// ConstrainSizeTo limits the window to at most s on each axis
func (c Context) ConstrainSizeTo(s geom.Size) Context {
	c.Size = c.Size.Min(s)
	return c
}

// ConstrainSizeBy shrinks the window by s, floored at zero
func (c Context) ConstrainSizeBy(s geom.Size) Context {
	c.Size = c.Size.SaturatingSub(s)
	return c
}

// WithSize replaces the window size
func (c Context) WithSize(s geom.Size) Context {
	c.Size = s
	return c
}

// AddOffset moves the window by d in the sink's space
func (c Context) AddOffset(d geom.Coord) Context {
	c.OuterOffset = c.OuterOffset.Add(d)
	return c
}

// AddInnerOffset shifts content by d inside the current window
func (c Context) AddInnerOffset(d geom.Coord) Context {
	c.InnerOffset = c.InnerOffset.Add(d)
	return c
}

// AddDepth raises the z baseline by d
func (c Context) AddDepth(d int) Context {
	c.Depth += d
	return c
}

// WithTransform replaces the colour transform
func (c Context) WithTransform(t colour.Transform) Context {
	c.Transform = t
	return c
}

// ComposeTransform applies t to colours before the inherited transform
func (c Context) ComposeTransform(t colour.Transform) Context {
	c.Transform = colour.Compose(c.Transform, t)
	return c
}

// Visible reports whether relative coordinate r survives clipping under c
func (c Context) Visible(r geom.Coord) bool {
	return r.Add(c.InnerOffset).IsValid(c.Size)
}
