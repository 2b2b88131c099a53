package backend

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
)

// WriteANSI serialises buf row by row, one styled run per change of style
// Untouched cells are written as unstyled spaces; every row ends with a newline
func WriteANSI(w io.Writer, buf *render.Buffer, profile termenv.Profile) error {
	bw := bufio.NewWriter(w)
	size := buf.Size()

	run := make([]rune, 0, size.W)
	var runStyle render.Style
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyle.IsZero() {
			bw.WriteString(string(run))
		} else {
			bw.WriteString(TermenvStyle(profile, runStyle).Styled(string(run)))
		}
		run = run[:0]
	}

	for y := 0; y < int(size.H); y++ {
		for x := 0; x < int(size.W); x++ {
			c, ok := buf.Get(geom.NewCoord(x, y))
			if !ok {
				c = render.DefaultCell()
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			// Emit style only when changed
			if len(run) > 0 && c.Style != runStyle {
				flush()
			}
			runStyle = c.Style
			run = append(run, r)
		}
		flush()
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
