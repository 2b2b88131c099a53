package text

import "github.com/lixenwraith/gridview/render"

// CharWrap breaks lines at any rune once the line is full
type CharWrap struct {
	cur cursor
}

// NewCharWrap creates a CharWrap at the origin
func NewCharWrap() *CharWrap {
	return &CharWrap{}
}

// Clear implements Wrap
func (w *CharWrap) Clear() {
	w.cur.reset()
}

// ProcessCharacter implements Wrap
func (w *CharWrap) ProcessCharacter(ch rune, style render.Style, ctx render.Context, f render.Frame) {
	switch {
	case ch == '\n':
		w.cur.newline()
	case ignored(ch):
	default:
		if w.cur.col >= lineWidth(ctx) && w.cur.col > 0 {
			w.cur.newline()
		}
		w.cur.put(ch, style, ctx, f)
	}
}

// Flush implements Wrap
func (w *CharWrap) Flush(render.Context, render.Frame) {}
