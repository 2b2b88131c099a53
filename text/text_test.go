package text

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// layout renders s through wrap into a w x h buffer and returns trimmed rows
func layout(wrap Wrap, s string, w, h uint32) []string {
	buf := render.NewBuffer(geom.NewSize(w, h))
	render.Draw[string](NewStringView(render.NewStyle(), wrap), s, buf, buf.Size(), nil)
	rows := buf.Rows()
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], " ")
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// TestWordWrap verifies word placement across line boundaries
func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width uint32
		want  []string
	}{
		{
			name:  "Exact fill",
			input: "ab cd ef",
			width: 5,
			want:  []string{"ab cd", "ef"},
		},
		{
			name:  "Word moves down",
			input: "abc defg",
			width: 6,
			want:  []string{"abc", "defg"},
		},
		{
			name:  "Long word overflows from column 0",
			input: "a abcdefgh b",
			width: 4,
			want:  []string{"a", "abcd", "b"},
		},
		{
			name:  "Newline forces break",
			input: "ab\ncd",
			width: 10,
			want:  []string{"ab", "cd"},
		},
		{
			name:  "Blank line",
			input: "ab\n\ncd",
			width: 10,
			want:  []string{"ab", "", "cd"},
		},
		{
			name:  "Control characters ignored",
			input: "a\tb\x1bc",
			width: 10,
			want:  []string{"abc"},
		},
		{
			name:  "Trailing word flushed",
			input: "one two",
			width: 20,
			want:  []string{"one two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout(NewWordWrap(), tt.input, tt.width, 6)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestNoWrap verifies lines only break on newline
func TestNoWrap(t *testing.T) {
	got := layout(NewNoWrap(), "abcdef\ngh", 4, 3)
	want := []string{"abcd", "gh"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestCharWrap verifies breaks at any rune
func TestCharWrap(t *testing.T) {
	got := layout(NewCharWrap(), "abcdefg\nhi", 3, 5)
	want := []string{"abc", "def", "g", "hi"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestWrapClearedPerCall verifies a reused view starts from the origin every time
func TestWrapClearedPerCall(t *testing.T) {
	v := NewStringView(render.NewStyle(), NewWordWrap())
	ctx := render.NewContext(geom.NewSize(10, 3), nil)

	first := render.VisibleBounds[string](v, "hello\nworld", ctx)
	second := render.VisibleBounds[string](v, "hello\nworld", ctx)
	if first != second {
		t.Errorf("Expected identical bounds, got %v then %v", first, second)
	}
	if first != geom.NewSize(5, 2) {
		t.Errorf("Expected 5x2, got %v", first)
	}
}

// TestTextView verifies parts form one continuous run
func TestTextView(t *testing.T) {
	buf := render.NewBuffer(geom.NewSize(5, 2))
	render.Draw[[]string](NewTextView(render.NewStyle(), nil), []string{"ab c", "d ef"}, buf, buf.Size(), nil)

	want := []string{"ab cd", "ef   "}
	if diff := cmp.Diff(want, buf.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestRichTextView verifies run styles merge over the view style
func TestRichTextView(t *testing.T) {
	base := render.NewStyle().WithFg(colour.NewRGB(200, 200, 200)).WithBg(colour.NewRGB(10, 10, 10))
	red := colour.NewRGB(255, 0, 0)
	parts := []RichText{
		Plain("a"),
		Styled("b", render.NewStyle().WithFg(red).WithBold(true)),
	}

	buf := render.NewBuffer(geom.NewSize(4, 1))
	render.Draw[[]RichText](NewRichTextView(base, NewNoWrap()), parts, buf, buf.Size(), nil)

	a, _ := buf.Get(geom.NewCoord(0, 0))
	if diff := cmp.Diff(render.NewCell('a', base), a); diff != "" {
		t.Errorf("plain cell mismatch (-want +got):\n%s", diff)
	}

	b, _ := buf.Get(geom.NewCoord(1, 0))
	want := render.NewCell('b', base.WithFg(red).WithBold(true))
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("styled cell mismatch (-want +got):\n%s", diff)
	}
}

// TestStringViewSingleLine verifies the bounds override and no wrapping
func TestStringViewSingleLine(t *testing.T) {
	v := NewStringViewSingleLine(render.NewStyle())
	ctx := render.NewContext(geom.NewSize(3, 3), nil)

	if got := render.VisibleBounds[string](v, "héllo", ctx); got != geom.NewSize(5, 1) {
		t.Errorf("Expected 5x1, got %v", got)
	}

	buf := render.NewBuffer(geom.NewSize(3, 2))
	render.Draw[string](v, "a b c", buf, buf.Size(), nil)
	if diff := cmp.Diff([]string{"a b", "   "}, buf.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestParsePolicy verifies names resolve to policies
func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input string
		want  Policy
	}{
		{"word", PolicyWord},
		{"None", PolicyNone},
		{" char ", PolicyChar},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
	if _, err := ParsePolicy("hyphen"); err == nil {
		t.Error("Expected error for unknown policy")
	}
}

// TestTruncate verifies rune-aware truncation
func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q; want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
	if got := TruncateMiddle("abcdefghij", 5); got != "ab…ij" {
		t.Errorf("TruncateMiddle = %q; want %q", got, "ab…ij")
	}
}
