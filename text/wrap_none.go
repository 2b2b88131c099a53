package text

import "github.com/lixenwraith/gridview/render"

// NoWrap places runes left to right and only breaks on newline
type NoWrap struct {
	cur cursor
}

// NewNoWrap creates a NoWrap at the origin
func NewNoWrap() *NoWrap {
	return &NoWrap{}
}

// Clear implements Wrap
func (w *NoWrap) Clear() {
	w.cur.reset()
}

// ProcessCharacter implements Wrap
func (w *NoWrap) ProcessCharacter(ch rune, style render.Style, ctx render.Context, f render.Frame) {
	switch {
	case ch == '\n':
		w.cur.newline()
	case ignored(ch):
	default:
		w.cur.put(ch, style, ctx, f)
	}
}

// Flush implements Wrap
func (w *NoWrap) Flush(render.Context, render.Frame) {}
