package decorator

import (
	"fmt"

	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// AlignAxis positions content along one axis
type AlignAxis uint8

const (
	AlignStart AlignAxis = iota
	AlignCentre
	AlignEnd
)

// String implements fmt.Stringer
func (a AlignAxis) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCentre:
		return "centre"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("AlignAxis(%d)", a)
	}
}

// offset returns the start position of natural within avail, never negative
func (a AlignAxis) offset(avail, natural uint32) int {
	if natural >= avail {
		return 0
	}
	slack := int(avail - natural)
	switch a {
	case AlignCentre:
		return slack / 2
	case AlignEnd:
		return slack
	default:
		return 0
	}
}

// Alignment pairs horizontal and vertical alignment
type Alignment struct {
	X, Y AlignAxis
}

// Centred aligns to the centre on both axes
func Centred() Alignment {
	return Alignment{X: AlignCentre, Y: AlignCentre}
}

// Align places a child inside the available window according to its measured size
type Align[T any] struct {
	Child     render.View[T]
	Alignment Alignment
}

// NewAlign wraps v with alignment a
func NewAlign[T any](v render.View[T], a Alignment) Align[T] {
	return Align[T]{Child: v, Alignment: a}
}

// View implements render.View
func (a Align[T]) View(data T, ctx render.Context, f render.Frame) {
	natural := render.VisibleBounds(a.Child, data, ctx)
	offset := geom.NewCoord(
		a.Alignment.X.offset(ctx.Size.W, natural.W),
		a.Alignment.Y.offset(ctx.Size.H, natural.H),
	)
	child := ctx.AddOffset(offset).ConstrainSizeBy(geom.NewSize(uint32(offset.X), uint32(offset.Y)))
	a.Child.View(data, child, f)
}
