package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridview/backend"
	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/decorator"
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
	"github.com/lixenwraith/gridview/text"
)

func (a *App) paletteCmd() *cobra.Command {
	var (
		width  int
		height int
		dim    float64
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print a colour grid through the selected colour mode",
		Long: `Print a hue/lightness grid followed by the 16 system colours, each passed
through the colour transform of the selected mode. Useful to compare modes:

  gridview palette --colour ansi16
  gridview palette --colour greyscale --dim 0.6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := width
			if w <= 0 {
				w = a.terminalWidth(int(os.Stdout.Fd()))
			}
			return a.printPalette(cmd.OutOrStdout(), w, height, dim)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Grid width in columns (default: terminal width)")
	cmd.Flags().IntVar(&height, "height", 8, "Grid height in rows")
	cmd.Flags().Float64Var(&dim, "dim", 0, "Dim the grid by this factor (0-1) before the mode transform")
	return cmd
}

// gradientView fills the given size with hue across and lightness down
type gradientView struct{}

func (gradientView) View(size geom.Size, ctx render.Context, f render.Frame) {
	for y := 0; y < int(size.H); y++ {
		l := 0.8 - 0.6*float64(y)/float64(max(int(size.H)-1, 1))
		for x := 0; x < int(size.W); x++ {
			h := 360 * float64(x) / float64(size.W)
			c := colour.FromColorful(colorful.Hcl(h, 0.6, l))
			render.SetCellRelative(f, geom.NewCoord(x, y), render.DepthContent,
				render.NewCell(' ', render.NewStyle().WithBg(c)), ctx)
		}
	}
}

// swatchView draws each colour as a two-cell block
type swatchView struct{}

func (swatchView) View(colours []colour.RGB, ctx render.Context, f render.Frame) {
	for i, c := range colours {
		cell := render.NewCell(' ', render.NewStyle().WithBg(c))
		render.SetCellRelative(f, geom.NewCoord(2*i, 0), render.DepthContent, cell, ctx)
		render.SetCellRelative(f, geom.NewCoord(2*i+1, 0), render.DepthContent, cell, ctx)
	}
}

// printPalette draws a heading, the framed gradient and a row of system colours
func (a *App) printPalette(out io.Writer, width, height int, dim float64) error {
	frameW, frameH := borderSize(a.config)
	if width <= int(frameW) {
		return fmt.Errorf("width must exceed %d, got %d", frameW, width)
	}
	grid := geom.NewSize(uint32(width)-frameW, uint32(max(height, 1)))

	var gradient render.View[geom.Size] = gradientView{}
	if dim > 0 && dim < 1 {
		gradient = decorator.NewComposedTransform[geom.Size](gradient, colour.Dim{Factor: dim})
	}
	view := framed(a.config, gradient, a.config.Colour.Mode)

	size := geom.NewSize(uint32(width), grid.H+frameH+2)
	buf := render.NewBuffer(size)
	ctx := render.NewContext(size, a.transform())

	heading := decorator.NewAlign[string](
		text.NewStringViewSingleLine(render.NewStyle().WithBold(true)),
		decorator.Alignment{X: decorator.AlignCentre},
	)
	heading.View("gridview palette", ctx.WithSize(geom.NewSize(size.W, 1)), buf)

	view.View(grid, ctx.AddOffset(geom.NewCoord(0, 1)), buf)

	swatch := decorator.NewAlign[[]colour.RGB](swatchView{}, decorator.Alignment{X: decorator.AlignCentre})
	swatch.View(colour.Ansi16Palette[:], ctx.AddOffset(geom.NewCoord(0, int(size.H)-1)), buf)

	log.Printf("palette %v through %s dim=%.2f", grid, a.config.Colour.Mode, dim)
	return backend.WriteANSI(out, buf, a.outputProfile())
}
