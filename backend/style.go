package backend

import (
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/render"
)

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb colour.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellStyle converts a render style onto base; unset fields keep base's values
func TcellStyle(base tcell.Style, s render.Style) tcell.Style {
	st := base
	if fg, ok := s.Foreground(); ok {
		st = st.Foreground(RGBToTcell(fg))
	}
	if bg, ok := s.Background(); ok {
		st = st.Background(RGBToTcell(bg))
	}
	if s.Has(render.FieldBold) {
		st = st.Bold(s.Bold)
	}
	if s.Has(render.FieldUnderline) {
		st = st.Underline(s.Underline)
	}
	return st
}

// TermenvStyle builds a termenv style for profile p
// Colours are degraded by termenv to what the profile supports
func TermenvStyle(p termenv.Profile, s render.Style) termenv.Style {
	st := p.String()
	if fg, ok := s.Foreground(); ok {
		st = st.Foreground(p.Color(fg.Hex()))
	}
	if bg, ok := s.Background(); ok {
		st = st.Background(p.Color(bg.Hex()))
	}
	if s.Bold {
		st = st.Bold()
	}
	if s.Underline {
		st = st.Underline()
	}
	return st
}
