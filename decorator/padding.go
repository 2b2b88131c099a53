package decorator

import "github.com/lixenwraith/gridview/geom"

// Padding is spacing on each side of a child, in cells
type Padding struct {
	Left, Top, Right, Bottom uint32
}

// NewPadding creates padding in left, top, right, bottom order
func NewPadding(left, top, right, bottom uint32) Padding {
	return Padding{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Uniform creates equal padding on all sides
func Uniform(n uint32) Padding {
	return Padding{Left: n, Top: n, Right: n, Bottom: n}
}

// Offset returns the top-left shift
func (p Padding) Offset() geom.Coord {
	return geom.NewCoord(int(p.Left), int(p.Top))
}

// Size returns the total horizontal and vertical padding
func (p Padding) Size() geom.Size {
	return geom.NewSize(p.Left, p.Top).Add(geom.NewSize(p.Right, p.Bottom))
}
