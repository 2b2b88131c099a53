package text

import "github.com/lixenwraith/gridview/render"

type pendingRune struct {
	ch    rune
	style render.Style
}

// WordWrap moves whole words to the next line when they do not fit
// A word wider than the line starts at column 0 and overflows into clipping
type WordWrap struct {
	cur  cursor
	word []pendingRune // Reused between calls
}

// NewWordWrap creates a WordWrap at the origin
func NewWordWrap() *WordWrap {
	return &WordWrap{}
}

// Clear implements Wrap
func (w *WordWrap) Clear() {
	w.cur.reset()
	w.word = w.word[:0]
}

// ProcessCharacter implements Wrap
func (w *WordWrap) ProcessCharacter(ch rune, style render.Style, ctx render.Context, f render.Frame) {
	switch {
	case ch == '\n':
		w.flushWord(ctx, f)
		w.cur.newline()
	case ch == ' ':
		w.flushWord(ctx, f)
		if w.cur.col >= lineWidth(ctx) {
			w.cur.newline()
		} else {
			w.cur.put(ch, style, ctx, f)
		}
	case ignored(ch):
	default:
		w.word = append(w.word, pendingRune{ch: ch, style: style})
	}
}

// Flush implements Wrap
func (w *WordWrap) Flush(ctx render.Context, f render.Frame) {
	w.flushWord(ctx, f)
}

func (w *WordWrap) flushWord(ctx render.Context, f render.Frame) {
	if len(w.word) == 0 {
		return
	}
	if w.cur.col > 0 && w.cur.col+len(w.word) > lineWidth(ctx) {
		w.cur.newline()
	}
	for _, p := range w.word {
		w.cur.put(p.ch, p.style, ctx, f)
	}
	w.word = w.word[:0]
}
