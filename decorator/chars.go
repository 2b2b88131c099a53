package decorator

import (
	"fmt"
	"strings"
)

// BorderChars are the glyphs a border is drawn with
type BorderChars struct {
	Top, Bottom, Left, Right rune
	TopLeft, TopRight        rune
	BottomLeft, BottomRight  rune
	// BeforeTitle and AfterTitle bracket the title on the top edge
	BeforeTitle, AfterTitle rune
}

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineASCII                   // +-+|++
	LineNone                    // spaces (invisible border with padding)
)

var lineNames = [...]string{
	LineSingle:  "single",
	LineDouble:  "double",
	LineRounded: "rounded",
	LineHeavy:   "heavy",
	LineASCII:   "ascii",
	LineNone:    "none",
}

// boxChars contains box drawing character sets indexed by LineType
// Order: top-left, horizontal, top-right, vertical, bottom-left, bottom-right, before title, after title
var boxChars = [...][8]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘', '┤', '├'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝', '╡', '╞'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯', '┤', '├'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛', '┫', '┣'},
	LineASCII:   {'+', '-', '+', '|', '+', '+', '[', ']'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = iota // top-left
	boxH         // horizontal
	boxTR        // top-right
	boxV         // vertical
	boxBL        // bottom-left
	boxBR        // bottom-right
	boxBT        // before title
	boxAT        // after title
)

// Chars returns the glyph set for the line type, falling back to LineSingle
func (l LineType) Chars() BorderChars {
	if int(l) >= len(boxChars) {
		l = LineSingle
	}
	c := boxChars[l]
	return BorderChars{
		Top:         c[boxH],
		Bottom:      c[boxH],
		Left:        c[boxV],
		Right:       c[boxV],
		TopLeft:     c[boxTL],
		TopRight:    c[boxTR],
		BottomLeft:  c[boxBL],
		BottomRight: c[boxBR],
		BeforeTitle: c[boxBT],
		AfterTitle:  c[boxAT],
	}
}

// String implements fmt.Stringer
func (l LineType) String() string {
	if int(l) < len(lineNames) {
		return lineNames[l]
	}
	return fmt.Sprintf("LineType(%d)", l)
}

// ParseLineType resolves a line type by name, case-insensitive
func ParseLineType(s string) (LineType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range lineNames {
		if n == name {
			return LineType(i), nil
		}
	}
	return LineSingle, fmt.Errorf("unknown line type %q", s)
}

// DefaultBorderChars returns the single-line set
func DefaultBorderChars() BorderChars {
	return LineSingle.Chars()
}
