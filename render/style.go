package render

import "github.com/lixenwraith/gridview/colour"

// StyleField is a bitmask of the style fields that carry a value
type StyleField uint8

const (
	FieldFg StyleField = 1 << iota
	FieldBg
	FieldBold
	FieldUnderline
)

// Style bundles independently optional foreground, background, bold and underline
// Unset fields fall through to the base style on Merge
type Style struct {
	Fg        colour.RGB
	Bg        colour.RGB
	Bold      bool
	Underline bool
	Set       StyleField
}

// NewStyle returns the empty style
func NewStyle() Style {
	return Style{}
}

// WithFg returns the style with foreground set
func (s Style) WithFg(c colour.RGB) Style {
	s.Fg = c
	s.Set |= FieldFg
	return s
}

// WithBg returns the style with background set
func (s Style) WithBg(c colour.RGB) Style {
	s.Bg = c
	s.Set |= FieldBg
	return s
}

// WithBold returns the style with the bold flag set to b
func (s Style) WithBold(b bool) Style {
	s.Bold = b
	s.Set |= FieldBold
	return s
}

// WithUnderline returns the style with the underline flag set to b
func (s Style) WithUnderline(b bool) Style {
	s.Underline = b
	s.Set |= FieldUnderline
	return s
}

// Has reports whether field f carries a value
func (s Style) Has(f StyleField) bool {
	return s.Set&f != 0
}

// Foreground returns the foreground and whether it is set
func (s Style) Foreground() (colour.RGB, bool) {
	return s.Fg, s.Has(FieldFg)
}

// Background returns the background and whether it is set
func (s Style) Background() (colour.RGB, bool) {
	return s.Bg, s.Has(FieldBg)
}

// IsZero returns true if no field is set
func (s Style) IsZero() bool {
	return s.Set == 0
}

// Merge overlays override onto s: set fields of override win, unset fields keep s
func (s Style) Merge(override Style) Style {
	if override.Has(FieldFg) {
		s = s.WithFg(override.Fg)
	}
	if override.Has(FieldBg) {
		s = s.WithBg(override.Bg)
	}
	if override.Has(FieldBold) {
		s = s.WithBold(override.Bold)
	}
	if override.Has(FieldUnderline) {
		s = s.WithUnderline(override.Underline)
	}
	return s
}

// Transform applies t to the set colours, leaving unset ones untouched
func (s Style) Transform(t colour.Transform) Style {
	if t == nil {
		return s
	}
	if s.Has(FieldFg) {
		s.Fg = t.Modify(s.Fg)
	}
	if s.Has(FieldBg) {
		s.Bg = t.Modify(s.Bg)
	}
	return s
}
