package text

import (
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// StringView lays out one string with a single style
type StringView struct {
	Style render.Style
	Wrap  Wrap
}

// NewStringView creates a StringView; a nil wrap means word wrapping
func NewStringView(style render.Style, wrap Wrap) StringView {
	if wrap == nil {
		wrap = NewWordWrap()
	}
	return StringView{Style: style, Wrap: wrap}
}

// View implements render.View
func (v StringView) View(s string, ctx render.Context, f render.Frame) {
	v.Wrap.Clear()
	for _, ch := range s {
		v.Wrap.ProcessCharacter(ch, v.Style, ctx, f)
	}
	v.Wrap.Flush(ctx, f)
}

// TextView lays out a sequence of strings as one continuous run
type TextView struct {
	Style render.Style
	Wrap  Wrap
}

// NewTextView creates a TextView; a nil wrap means word wrapping
func NewTextView(style render.Style, wrap Wrap) TextView {
	if wrap == nil {
		wrap = NewWordWrap()
	}
	return TextView{Style: style, Wrap: wrap}
}

// View implements render.View
func (v TextView) View(parts []string, ctx render.Context, f render.Frame) {
	v.Wrap.Clear()
	for _, part := range parts {
		for _, ch := range part {
			v.Wrap.ProcessCharacter(ch, v.Style, ctx, f)
		}
	}
	v.Wrap.Flush(ctx, f)
}

// RichText is a run of text with its own style
type RichText struct {
	Text  string
	Style render.Style
}

// Plain creates a run that takes the view's style
func Plain(s string) RichText {
	return RichText{Text: s}
}

// Styled creates a run with style merged over the view's style
func Styled(s string, style render.Style) RichText {
	return RichText{Text: s, Style: style}
}

// RichTextView lays out styled runs as one continuous run
type RichTextView struct {
	Style render.Style
	Wrap  Wrap
}

// NewRichTextView creates a RichTextView; a nil wrap means word wrapping
func NewRichTextView(style render.Style, wrap Wrap) RichTextView {
	if wrap == nil {
		wrap = NewWordWrap()
	}
	return RichTextView{Style: style, Wrap: wrap}
}

// View implements render.View
func (v RichTextView) View(parts []RichText, ctx render.Context, f render.Frame) {
	v.Wrap.Clear()
	for _, part := range parts {
		style := v.Style.Merge(part.Style)
		for _, ch := range part.Text {
			v.Wrap.ProcessCharacter(ch, style, ctx, f)
		}
	}
	v.Wrap.Flush(ctx, f)
}

// StringViewSingleLine draws a string on one line without wrapping
type StringViewSingleLine struct {
	Style render.Style
}

// NewStringViewSingleLine creates a StringViewSingleLine
func NewStringViewSingleLine(style render.Style) StringViewSingleLine {
	return StringViewSingleLine{Style: style}
}

// View implements render.View
func (v StringViewSingleLine) View(s string, ctx render.Context, f render.Frame) {
	NewStringView(v.Style, NewNoWrap()).View(s, ctx, f)
}

// VisibleBounds implements render.BoundsReporter as the rune count by one row
func (v StringViewSingleLine) VisibleBounds(s string, _ render.Context) geom.Size {
	return geom.NewSize(uint32(RuneLen(s)), 1)
}
