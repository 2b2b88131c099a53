package text

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// Wrap is a streaming layout policy
// Clear must be called before each new run of text; Flush emits anything still buffered
type Wrap interface {
	Clear()
	ProcessCharacter(ch rune, style render.Style, ctx render.Context, f render.Frame)
	Flush(ctx render.Context, f render.Frame)
}

// cursor is the write position shared by every policy
type cursor struct {
	col, line int
}

func (c *cursor) reset() {
	c.col, c.line = 0, 0
}

func (c *cursor) newline() {
	c.col = 0
	c.line++
}

// put writes ch at the cursor and advances one column
func (c *cursor) put(ch rune, style render.Style, ctx render.Context, f render.Frame) {
	render.SetCellRelative(f, geom.NewCoord(c.col, c.line), render.DepthContent, render.NewCell(ch, style), ctx)
	c.col++
}

// ignored reports control characters other than newline, which every policy skips
func ignored(ch rune) bool {
	return ch != '\n' && unicode.IsControl(ch)
}

// lineWidth returns the wrap width of ctx
func lineWidth(ctx render.Context) int {
	return int(ctx.Size.W)
}

// Policy names a wrap policy
type Policy uint8

const (
	PolicyWord Policy = iota
	PolicyNone
	PolicyChar
)

var policyNames = [...]string{
	PolicyWord: "word",
	PolicyNone: "none",
	PolicyChar: "char",
}

// String implements fmt.Stringer
func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// New returns a fresh wrap for the policy
func (p Policy) New() Wrap {
	switch p {
	case PolicyNone:
		return NewNoWrap()
	case PolicyChar:
		return NewCharWrap()
	default:
		return NewWordWrap()
	}
}

// ParsePolicy resolves a policy by name, case-insensitive
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range policyNames {
		if n == name {
			return Policy(i), nil
		}
	}
	return PolicyWord, fmt.Errorf("unknown wrap policy %q", s)
}
