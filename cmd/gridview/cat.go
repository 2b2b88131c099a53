package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridview/backend"
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
	"github.com/lixenwraith/gridview/text"
)

const fallbackWidth = 80

func (a *App) catCmd() *cobra.Command {
	var (
		width  int
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "cat FILE|-",
		Short: "Render a file once inside a border",
		Long: `Render a file (or stdin with -) through the border, padding and wrap
settings, printing the result with colour escape sequences.

Width defaults to the terminal width. With --follow the output is
rendered again every time the terminal is resized.

Example:
  gridview cat README.md --width 60`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, content, err := readDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fd := int(os.Stdout.Fd())

			w := width
			if w <= 0 {
				w = a.terminalWidth(fd)
			}
			if err := a.printDocument(out, name, content, w); err != nil {
				return err
			}
			if !follow {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.followResize(ctx, fd, func(size geom.Size) error {
				return a.printDocument(out, name, content, int(size.W))
			})
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Output width in columns (default: terminal width)")
	cmd.Flags().BoolVar(&follow, "follow", false, "Render again on terminal resize until interrupted")
	return cmd
}

// terminalWidth returns the width of fd, or a fallback when it is not a terminal
func (a *App) terminalWidth(fd int) int {
	if !backend.IsTerminal(fd) {
		return fallbackWidth
	}
	size, err := backend.DeviceSize(fd)
	if err != nil {
		log.Printf("device size: %v", err)
		return fallbackWidth
	}
	return int(size.W)
}

// printDocument renders content framed at the given width and natural height
func (a *App) printDocument(w io.Writer, name, content string, width int) error {
	if width <= 0 {
		return fmt.Errorf("width must be positive, got %d", width)
	}
	frameW, _ := borderSize(a.config)
	title := text.TruncateMiddle(name, max(0, width-int(frameW)-2))
	view := framed(a.config, bodyView(a.config), title)
	parts := []string{content}

	// Measure at unbounded height, then draw exactly that many rows
	measureCtx := render.NewContext(geom.NewSize(uint32(width), geom.Unbounded), a.transform())
	natural := render.NaturalSize[[]string](view, parts, measureCtx)
	size := geom.NewSize(uint32(width), natural.H)
	log.Printf("cat %s: width=%d natural=%v", name, width, natural)

	buf := render.NewBuffer(size)
	render.Draw[[]string](view, parts, buf, size, a.transform())
	return backend.WriteANSI(w, buf, a.outputProfile())
}

// followResize calls fn with each new terminal size until ctx is done
func (a *App) followResize(ctx context.Context, fd int, fn func(geom.Size) error) error {
	for size := range backend.WatchResize(ctx, fd) {
		log.Printf("resize %v", size)
		if err := fn(size); err != nil {
			return err
		}
	}
	return nil
}

