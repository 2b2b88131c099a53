package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/geom"
)

// block writes a w x h rectangle of ch starting at the origin
func block(w, h int, ch rune) View[struct{}] {
	return ViewFunc[struct{}](func(_ struct{}, ctx Context, f Frame) {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				SetCellRelative(f, geom.NewCoord(x, y), DepthContent, NewCell(ch, NewStyle()), ctx)
			}
		}
	})
}

// TestSetCellRelativeClips verifies writes outside the window are dropped
func TestSetCellRelativeClips(t *testing.T) {
	buf := NewBuffer(geom.NewSize(6, 4))
	ctx := NewContext(buf.Size(), nil).
		AddOffset(geom.NewCoord(1, 1)).
		ConstrainSizeTo(geom.NewSize(3, 2))

	block(10, 10, '#').View(struct{}{}, ctx, buf)

	want := []string{
		"      ",
		" ###  ",
		" ###  ",
		"      ",
	}
	if diff := cmp.Diff(want, buf.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestSetCellRelativeNegative verifies negative relative coordinates never reach the sink
func TestSetCellRelativeNegative(t *testing.T) {
	var writes int
	f := FrameFunc(func(geom.Coord, int, Cell) { writes++ })
	ctx := NewContext(geom.NewSize(4, 4), nil).AddOffset(geom.NewCoord(2, 2))

	SetCellRelative(f, geom.NewCoord(-1, 0), 0, DefaultCell(), ctx)
	SetCellRelative(f, geom.NewCoord(0, -1), 0, DefaultCell(), ctx)
	SetCellRelative(f, geom.NewCoord(4, 0), 0, DefaultCell(), ctx)

	if writes != 0 {
		t.Errorf("Expected 0 writes, got %d", writes)
	}
}

// TestInnerOffsetScrollsContent verifies a negative inner offset shifts content up before clipping
func TestInnerOffsetScrollsContent(t *testing.T) {
	rows := ViewFunc[[]string](func(lines []string, ctx Context, f Frame) {
		for y, line := range lines {
			for x, r := range []rune(line) {
				SetCellRelative(f, geom.NewCoord(x, y), DepthContent, NewCell(r, NewStyle()), ctx)
			}
		}
	})

	buf := NewBuffer(geom.NewSize(2, 2))
	ctx := NewContext(buf.Size(), nil).AddInnerOffset(geom.NewCoord(0, -2))
	rows.View([]string{"aa", "bb", "cc", "dd", "ee"}, ctx, buf)

	want := []string{"cc", "dd"}
	if diff := cmp.Diff(want, buf.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestContextDerivationIsolated verifies derived contexts leave the parent unchanged
func TestContextDerivationIsolated(t *testing.T) {
	parent := NewContext(geom.NewSize(10, 5), nil)
	_ = parent.AddOffset(geom.NewCoord(3, 3)).
		AddInnerOffset(geom.NewCoord(0, -1)).
		ConstrainSizeBy(geom.NewSize(4, 4)).
		AddDepth(2)

	if parent.OuterOffset != (geom.Coord{}) || parent.InnerOffset != (geom.Coord{}) {
		t.Errorf("Parent offsets changed: outer=%v inner=%v", parent.OuterOffset, parent.InnerOffset)
	}
	if parent.Size != geom.NewSize(10, 5) {
		t.Errorf("Parent size changed: %v", parent.Size)
	}
	if parent.Depth != 0 {
		t.Errorf("Parent depth changed: %d", parent.Depth)
	}
}

// TestContextConstrain verifies size narrowing
func TestContextConstrain(t *testing.T) {
	tests := []struct {
		name     string
		derive   func(Context) Context
		expected geom.Size
	}{
		{
			name:     "ConstrainSizeTo smaller",
			derive:   func(c Context) Context { return c.ConstrainSizeTo(geom.NewSize(3, 9)) },
			expected: geom.NewSize(3, 5),
		},
		{
			name:     "ConstrainSizeBy",
			derive:   func(c Context) Context { return c.ConstrainSizeBy(geom.NewSize(2, 1)) },
			expected: geom.NewSize(8, 4),
		},
		{
			name:     "ConstrainSizeBy floors at zero",
			derive:   func(c Context) Context { return c.ConstrainSizeBy(geom.NewSize(20, 20)) },
			expected: geom.NewSize(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.derive(NewContext(geom.NewSize(10, 5), nil)).Size
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestVisibleBounds verifies measured bounds agree with what a drawing sink shows
func TestVisibleBounds(t *testing.T) {
	tests := []struct {
		name     string
		view     View[struct{}]
		ctx      Context
		expected geom.Size
	}{
		{
			name:     "Fits",
			view:     block(3, 2, 'x'),
			ctx:      NewContext(geom.NewSize(10, 10), nil),
			expected: geom.NewSize(3, 2),
		},
		{
			name:     "Clipped",
			view:     block(3, 2, 'x'),
			ctx:      NewContext(geom.NewSize(2, 1), nil),
			expected: geom.NewSize(2, 1),
		},
		{
			name:     "Offset window",
			view:     block(3, 2, 'x'),
			ctx:      NewContext(geom.NewSize(10, 10), nil).AddOffset(geom.NewCoord(4, 5)),
			expected: geom.NewSize(3, 2),
		},
		{
			name:     "Nothing written",
			view:     block(0, 0, 'x'),
			ctx:      NewContext(geom.NewSize(10, 10), nil),
			expected: geom.NewSize(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleBounds(tt.view, struct{}{}, tt.ctx)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestIntendedSizeIgnoresClipping verifies natural size survives a small window while drawing stays clipped
func TestIntendedSizeIgnoresClipping(t *testing.T) {
	buf := NewBuffer(geom.NewSize(4, 4))
	ctx := NewContext(buf.Size(), nil).ConstrainSizeTo(geom.NewSize(2, 1))

	got := ViewReportingIntendedSize(block(3, 2, 'o'), struct{}{}, ctx, buf)
	if got != geom.NewSize(3, 2) {
		t.Errorf("Expected natural size (3x2), got %v", got)
	}

	want := []string{"oo  ", "    ", "    ", "    "}
	if diff := cmp.Diff(want, buf.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

type fixedBounds struct{ size geom.Size }

func (fixedBounds) View(struct{}, Context, Frame) {}

func (v fixedBounds) VisibleBounds(struct{}, Context) geom.Size { return v.size }

// TestBoundsReporterOverride verifies a view's own bounds replace measurement
func TestBoundsReporterOverride(t *testing.T) {
	v := fixedBounds{size: geom.NewSize(7, 3)}
	got := VisibleBounds[struct{}](v, struct{}{}, NewContext(geom.NewSize(1, 1), nil))
	if got != v.size {
		t.Errorf("Expected %v, got %v", v.size, got)
	}
}

// TestBufferDepth verifies depth ordering and per-layer compositing
func TestBufferDepth(t *testing.T) {
	at := geom.NewCoord(0, 0)
	red := colour.NewRGB(255, 0, 0)
	blue := colour.NewRGB(0, 0, 255)

	t.Run("Higher depth wins", func(t *testing.T) {
		buf := NewBuffer(geom.NewSize(1, 1))
		buf.SetCellAbsolute(at, 5, NewCell('a', NewStyle()))
		buf.SetCellAbsolute(at, 1, NewCell('b', NewStyle()))
		if c, _ := buf.Get(at); c.Rune != 'a' {
			t.Errorf("Expected 'a', got %q", c.Rune)
		}
	})

	t.Run("Tie goes to later write", func(t *testing.T) {
		buf := NewBuffer(geom.NewSize(1, 1))
		buf.SetCellAbsolute(at, 0, NewCell('a', NewStyle()))
		buf.SetCellAbsolute(at, 0, NewCell('b', NewStyle()))
		if c, _ := buf.Get(at); c.Rune != 'b' {
			t.Errorf("Expected 'b', got %q", c.Rune)
		}
	})

	t.Run("Background survives foreground write", func(t *testing.T) {
		buf := NewBuffer(geom.NewSize(1, 1))
		buf.SetCellAbsolute(at, 0, NewCell(' ', NewStyle().WithBg(blue)))
		buf.SetCellAbsolute(at, 0, NewCell('x', NewStyle().WithFg(red)))

		c, ok := buf.Get(at)
		if !ok {
			t.Fatal("Expected touched cell")
		}
		want := NewCell('x', NewStyle().WithBg(blue).WithFg(red))
		if diff := cmp.Diff(want, c); diff != "" {
			t.Errorf("cell mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Lower background ignored", func(t *testing.T) {
		buf := NewBuffer(geom.NewSize(1, 1))
		buf.SetCellAbsolute(at, 3, NewCell(' ', NewStyle().WithBg(blue)))
		buf.SetCellAbsolute(at, 1, NewCell('y', NewStyle().WithBg(red)))

		c, _ := buf.Get(at)
		if bg, _ := c.Style.Background(); bg != blue {
			t.Errorf("Expected blue background, got %v", bg)
		}
		if c.Rune != ' ' {
			t.Errorf("Expected space rune, got %q", c.Rune)
		}
	})

	t.Run("Context depth is added", func(t *testing.T) {
		buf := NewBuffer(geom.NewSize(1, 1))
		ctx := NewContext(buf.Size(), nil).AddDepth(4)
		SetCellRelative(buf, at, DepthOverlay, NewCell('z', NewStyle()), ctx)
		if fg, _ := buf.Depths(at); fg != 5 {
			t.Errorf("Expected depth 5, got %d", fg)
		}
	})
}

// TestTransformApplied verifies the context transform reaches both colours
func TestTransformApplied(t *testing.T) {
	buf := NewBuffer(geom.NewSize(1, 1))
	white := colour.NewRGB(255, 255, 255)
	toWhite := colour.TransformFunc(func(colour.RGB) colour.RGB { return white })
	ctx := NewContext(buf.Size(), toWhite)

	style := NewStyle().WithFg(colour.NewRGB(1, 2, 3)).WithBg(colour.NewRGB(4, 5, 6))
	SetCellRelative(buf, geom.NewCoord(0, 0), 0, NewCell('t', style), ctx)

	c, _ := buf.Get(geom.NewCoord(0, 0))
	if c.Style.Fg != white || c.Style.Bg != white {
		t.Errorf("Expected white fg/bg, got fg=%v bg=%v", c.Style.Fg, c.Style.Bg)
	}
}

// TestBufferResizeClears verifies resize and clear reset every cell
func TestBufferResizeClears(t *testing.T) {
	buf := NewBuffer(geom.NewSize(3, 1))
	buf.SetCellAbsolute(geom.NewCoord(1, 0), 0, NewCell('q', NewStyle()))
	buf.Resize(geom.NewSize(2, 2))

	if buf.Size() != geom.NewSize(2, 2) {
		t.Errorf("Expected size 2x2, got %v", buf.Size())
	}
	for _, row := range buf.Rows() {
		if row != "  " {
			t.Errorf("Expected blank row, got %q", row)
		}
	}
	if _, ok := buf.Get(geom.NewCoord(1, 0)); ok {
		t.Error("Expected untouched cell after resize")
	}
}
