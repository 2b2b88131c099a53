package render

import (
	"math"
	"strings"

	"github.com/lixenwraith/gridview/geom"
)

// depthEmpty marks a layer nothing has written to yet
const depthEmpty = math.MinInt

// Buffer is an in-memory compositing frame
// Each cell holds two layers: the foreground layer (rune, fg, bold, underline) and the
// background layer, written only by cells that carry a background. Each layer keeps the
// write with the greatest depth, ties going to the later write
type Buffer struct {
	cells   []Cell
	fgDepth []int
	bgDepth []int
	width   int
	height  int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(size geom.Size) *Buffer {
	b := &Buffer{}
	b.Resize(size)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(size geom.Size) {
	width, height := int(size.W), int(size.H)
	n := width * height
	if cap(b.cells) < n {
		b.cells = make([]Cell, n)
		b.fgDepth = make([]int, n)
		b.bgDepth = make([]int, n)
	} else {
		b.cells = b.cells[:n]
		b.fgDepth = b.fgDepth[:n]
		b.bgDepth = b.bgDepth[:n]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	b.fgDepth[0] = depthEmpty
	b.bgDepth[0] = depthEmpty
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
		copy(b.fgDepth[filled:], b.fgDepth[:filled])
		copy(b.bgDepth[filled:], b.bgDepth[:filled])
	}
}

// Size returns the buffer dimensions
func (b *Buffer) Size() geom.Size {
	return geom.NewSize(uint32(b.width), uint32(b.height))
}

func (b *Buffer) index(coord geom.Coord) (int, bool) {
	if coord.X < 0 || coord.X >= b.width || coord.Y < 0 || coord.Y >= b.height {
		return 0, false
	}
	return coord.Y*b.width + coord.X, true
}

// SetCellAbsolute implements Frame
// Writes outside the buffer are dropped
func (b *Buffer) SetCellAbsolute(coord geom.Coord, depth int, cell Cell) {
	idx, ok := b.index(coord)
	if !ok {
		return
	}
	dst := &b.cells[idx]

	if depth >= b.fgDepth[idx] {
		bg, bgSet := dst.Style.Background()
		dst.Rune = cell.Rune
		dst.Style = cell.Style
		dst.Style.Set &^= FieldBg
		dst.Style.Bg = bg
		if bgSet {
			dst.Style.Set |= FieldBg
		}
		b.fgDepth[idx] = depth
	}

	if bg, ok := cell.Style.Background(); ok && depth >= b.bgDepth[idx] {
		dst.Style = dst.Style.WithBg(bg)
		b.bgDepth[idx] = depth
	}
}

// Get returns the composited cell and whether anything was written there
func (b *Buffer) Get(coord geom.Coord) (Cell, bool) {
	idx, ok := b.index(coord)
	if !ok || !b.touched(idx) {
		return DefaultCell(), false
	}
	c := b.cells[idx]
	if b.fgDepth[idx] == depthEmpty {
		c.Rune = ' '
	}
	return c, true
}

// Depths returns the winning depth of the foreground and background layers at coord
// Layers never written report math.MinInt
func (b *Buffer) Depths(coord geom.Coord) (fg, bg int) {
	idx, ok := b.index(coord)
	if !ok {
		return depthEmpty, depthEmpty
	}
	return b.fgDepth[idx], b.bgDepth[idx]
}

func (b *Buffer) touched(idx int) bool {
	return b.fgDepth[idx] != depthEmpty || b.bgDepth[idx] != depthEmpty
}

// Cells returns the row-major cell slice; untouched cells hold the zero Cell
// The slice is owned by the buffer and valid until the next Resize
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// Rows returns the characters of each row, untouched and zero-rune cells as spaces
func (b *Buffer) Rows() []string {
	rows := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			r := b.cells[y*b.width+x].Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		rows[y] = sb.String()
	}
	return rows
}

// String joins Rows with newlines
func (b *Buffer) String() string {
	return strings.Join(b.Rows(), "\n")
}
