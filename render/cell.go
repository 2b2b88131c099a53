package render

import "github.com/lixenwraith/gridview/colour"

// Cell is one character with its style
type Cell struct {
	Rune  rune
	Style Style
}

// DefaultCell returns a space with the empty style
func DefaultCell() Cell {
	return Cell{Rune: ' '}
}

// NewCell creates a cell
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// WithRune returns the cell with a different character
func (c Cell) WithRune(r rune) Cell {
	c.Rune = r
	return c
}

// WithStyle returns the cell with a different style
func (c Cell) WithStyle(s Style) Cell {
	c.Style = s
	return c
}

// WithFg returns the cell with foreground set
func (c Cell) WithFg(rgb colour.RGB) Cell {
	c.Style = c.Style.WithFg(rgb)
	return c
}

// WithBg returns the cell with background set
func (c Cell) WithBg(rgb colour.RGB) Cell {
	c.Style = c.Style.WithBg(rgb)
	return c
}

// WithBold returns the cell with the bold flag set
func (c Cell) WithBold(b bool) Cell {
	c.Style = c.Style.WithBold(b)
	return c
}

// WithUnderline returns the cell with the underline flag set
func (c Cell) WithUnderline(b bool) Cell {
	c.Style = c.Style.WithUnderline(b)
	return c
}
