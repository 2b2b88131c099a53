package decorator

import (
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// Border draws a one-cell frame around its padded child, with an optional title on the top edge
// The frame follows the child's natural size, not the available window
type Border[T any] struct {
	Child   render.View[T]
	Title   string
	Chars   BorderChars
	Padding Padding
	// Style applies to frame glyphs, TitleStyle is merged over it for title runes
	Style      render.Style
	TitleStyle render.Style
}

// NewBorder wraps v in a single-line border without title
func NewBorder[T any](v render.View[T]) Border[T] {
	return Border[T]{
		Child: v,
		Chars: DefaultBorderChars(),
	}
}

// WithTitle returns the border with a title
func (b Border[T]) WithTitle(title string) Border[T] {
	b.Title = title
	return b
}

// WithChars returns the border drawn with chars
func (b Border[T]) WithChars(chars BorderChars) Border[T] {
	b.Chars = chars
	return b
}

// WithPadding returns the border with padding between frame and child
func (b Border[T]) WithPadding(p Padding) Border[T] {
	b.Padding = p
	return b
}

// WithStyle returns the border with frame and title styles
func (b Border[T]) WithStyle(frame, title render.Style) Border[T] {
	b.Style = frame
	b.TitleStyle = title
	return b
}

// frameSize is the space taken by the frame and padding on each axis
func (b Border[T]) frameSize() geom.Size {
	return b.Padding.Size().Add(geom.NewSize(2, 2))
}

// View implements render.View
func (b Border[T]) View(data T, ctx render.Context, f render.Frame) {
	b.ViewReportingIntendedSize(data, ctx, f)
}

// ViewReportingIntendedSize implements render.IntendedSizeReporter
func (b Border[T]) ViewReportingIntendedSize(data T, ctx render.Context, f render.Frame) geom.Size {
	childCtx := ctx.
		AddOffset(b.Padding.Offset().Add(geom.NewCoord(1, 1))).
		ConstrainSizeBy(b.frameSize())
	child := render.ViewReportingIntendedSize(b.Child, data, childCtx, f)

	// span is the coordinate of the bottom-right corner
	span := child.Add(b.Padding.Size()).ToCoord().Add(geom.NewCoord(1, 1))
	b.drawFrame(span, ctx, f)

	return child.Add(b.frameSize())
}

func (b Border[T]) drawFrame(span geom.Coord, ctx render.Context, f render.Frame) {
	set := func(x, y int, r rune, style render.Style) {
		render.SetCellRelative(f, geom.NewCoord(x, y), render.DepthContent, render.NewCell(r, style), ctx)
	}
	ch := b.Chars

	// Corners
	set(0, 0, ch.TopLeft, b.Style)
	set(span.X, 0, ch.TopRight, b.Style)
	set(0, span.Y, ch.BottomLeft, b.Style)
	set(span.X, span.Y, ch.BottomRight, b.Style)

	// Title occupies columns 1 through len+2 of the top edge
	topStart := 1
	if b.Title != "" {
		title := []rune(b.Title)
		titleStyle := b.Style.Merge(b.TitleStyle)
		set(1, 0, ch.BeforeTitle, b.Style)
		for i, r := range title {
			set(i+2, 0, r, titleStyle)
		}
		set(len(title)+2, 0, ch.AfterTitle, b.Style)
		topStart = len(title) + 3
	}

	// Horizontal edges
	for x := topStart; x < span.X; x++ {
		set(x, 0, ch.Top, b.Style)
	}
	for x := 1; x < span.X; x++ {
		set(x, span.Y, ch.Bottom, b.Style)
	}

	// Vertical edges
	for y := 1; y < span.Y; y++ {
		set(0, y, ch.Left, b.Style)
		set(span.X, y, ch.Right, b.Style)
	}
}
