package backend

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

var red = colour.NewRGB(255, 0, 0)

// word writes a string on row 0 with a style
func word(style render.Style) render.View[string] {
	return render.ViewFunc[string](func(s string, ctx render.Context, f render.Frame) {
		for x, r := range []rune(s) {
			render.SetCellRelative(f, geom.NewCoord(x, 0), render.DepthContent, render.NewCell(r, style), ctx)
		}
	})
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

// TestScreenRender verifies cells and colours reach the tcell screen
func TestScreenRender(t *testing.T) {
	sim := newSimScreen(t, 6, 2)
	s := NewScreen(sim, colour.Identity{})

	if s.Size() != geom.NewSize(6, 2) {
		t.Fatalf("Expected size 6x2, got %v", s.Size())
	}

	Render(s, word(render.NewStyle().WithFg(red).WithBold(true)), "hi")

	r, _, style, _ := sim.GetContent(0, 0)
	if r != 'h' {
		t.Errorf("Expected 'h', got %q", r)
	}
	fg, _, attrs := style.Decompose()
	if fg != RGBToTcell(red) {
		t.Errorf("Expected red foreground, got %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}

	r, _, _, _ = sim.GetContent(3, 1)
	if r != ' ' {
		t.Errorf("Expected blank untouched cell, got %q", r)
	}
}

// TestScreenRenderClears verifies a second render does not keep stale cells
func TestScreenRenderClears(t *testing.T) {
	sim := newSimScreen(t, 4, 1)
	s := NewScreen(sim, nil)

	Render(s, word(render.NewStyle()), "abcd")
	Render(s, word(render.NewStyle()), "x")

	var got strings.Builder
	for x := 0; x < 4; x++ {
		r, _, _, _ := sim.GetContent(x, 0)
		got.WriteRune(r)
	}
	if got.String() != "x   " {
		t.Errorf("Expected %q, got %q", "x   ", got.String())
	}
}

// TestScreenResize verifies the buffer follows the terminal size
func TestScreenResize(t *testing.T) {
	sim := newSimScreen(t, 4, 1)
	s := NewScreen(sim, nil)

	sim.SetSize(10, 3)
	s.Resize()
	if s.Size() != geom.NewSize(10, 3) {
		t.Errorf("Expected 10x3, got %v", s.Size())
	}
}

// TestTcellStyle verifies unset fields keep the base style
func TestTcellStyle(t *testing.T) {
	base := tcell.StyleDefault.Background(tcell.ColorNavy)
	st := TcellStyle(base, render.NewStyle().WithFg(red).WithUnderline(true))

	fg, bg, attrs := st.Decompose()
	if fg != RGBToTcell(red) {
		t.Errorf("Expected red foreground, got %v", fg)
	}
	if bg != tcell.ColorNavy {
		t.Errorf("Expected base background, got %v", bg)
	}
	if attrs&tcell.AttrUnderline == 0 {
		t.Error("Expected underline attribute")
	}
}

func bufferWith(text string, style render.Style, w, h uint32) *render.Buffer {
	buf := render.NewBuffer(geom.NewSize(w, h))
	render.Draw(word(style), text, buf, buf.Size(), nil)
	return buf
}

// TestWriteANSIText verifies the visible text of every row
func TestWriteANSIText(t *testing.T) {
	buf := bufferWith("ab", render.NewStyle().WithFg(red), 4, 2)

	var out bytes.Buffer
	if err := WriteANSI(&out, buf, termenv.TrueColor); err != nil {
		t.Fatalf("WriteANSI failed: %v", err)
	}

	if got := ansi.Strip(out.String()); got != "ab  \n    \n" {
		t.Errorf("Unexpected text %q", got)
	}
	if !strings.Contains(out.String(), "38;2;255;0;0") {
		t.Errorf("Expected truecolour foreground sequence in %q", out.String())
	}
}

// TestWriteANSIAscii verifies the ascii profile emits no escape sequences
func TestWriteANSIAscii(t *testing.T) {
	buf := bufferWith("ab", render.NewStyle().WithFg(red).WithBold(true), 3, 1)

	var out bytes.Buffer
	if err := WriteANSI(&out, buf, termenv.Ascii); err != nil {
		t.Fatalf("WriteANSI failed: %v", err)
	}
	if out.String() != "ab \n" {
		t.Errorf("Expected plain output, got %q", out.String())
	}
}

// TestWriteANSICoalesces verifies one sequence per styled run
func TestWriteANSICoalesces(t *testing.T) {
	buf := bufferWith("abcd", render.NewStyle().WithFg(red), 4, 1)

	var out bytes.Buffer
	if err := WriteANSI(&out, buf, termenv.TrueColor); err != nil {
		t.Fatalf("WriteANSI failed: %v", err)
	}
	if n := strings.Count(out.String(), "38;2;255;0;0"); n != 1 {
		t.Errorf("Expected 1 colour sequence, got %d in %q", n, out.String())
	}
}

// TestSilentBell verifies the fallback bell is inert
func TestSilentBell(t *testing.T) {
	b, err := OpenBell(false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := b.(SilentBell); !ok {
		t.Errorf("Expected SilentBell, got %T", b)
	}
	b.Ring()
	b.Close()
}
