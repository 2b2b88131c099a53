package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridview/backend"
	"github.com/lixenwraith/gridview/decorator"
	"github.com/lixenwraith/gridview/geom"
	"github.com/lixenwraith/gridview/render"
	"github.com/lixenwraith/gridview/text"
)

func (a *App) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view FILE|-",
		Short: "Page through a file interactively",
		Long: `Open a full-screen pager over a file.

Keys:
  j, Down          next line
  k, Up            previous line
  space, PgDn      next page
  b, PgUp          previous page
  g, Home          top
  G, End           bottom
  q, Esc, Ctrl-C   quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, content, err := readDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			bell, err := backend.OpenBell(a.config.Scroll.Bell)
			if err != nil {
				// Non-fatal, pager works without sound
				log.Printf("bell unavailable: %v", err)
			}
			defer bell.Close()

			screen, err := backend.OpenScreen(a.transform())
			if err != nil {
				return err
			}
			defer screen.Close()

			p := newPager(a, name, content, bell)
			return p.run(screen)
		},
	}
}

// pager holds the interactive state of the view command
type pager struct {
	name  string
	parts []string
	state *decorator.VerticalScrollState
	bell  backend.Bell

	scroll decorator.VerticalScroll[[]string]
	status decorator.Align[string]
	app    *App
}

func newPager(a *App, name, content string, bell backend.Bell) *pager {
	p := &pager{
		name:  name,
		parts: []string{content},
		state: decorator.NewVerticalScrollState(),
		bell:  bell,
		app:   a,
	}

	p.scroll = decorator.NewVerticalScroll[[]string](bodyView(a.config), p.state)
	if a.config.Scroll.Scrollbar {
		frame, _ := a.config.BorderStyles()
		p.scroll = p.scroll.WithScrollbar(decorator.NewVerticalScrollbar(frame))
	}

	frame, _ := a.config.BorderStyles()
	p.status = decorator.NewAlign[string](
		text.NewStringViewSingleLine(frame),
		decorator.Alignment{X: decorator.AlignEnd, Y: decorator.AlignStart},
	)
	return p
}

// View implements render.View for the whole screen: framed document over a status line
func (p *pager) View(parts []string, ctx render.Context, f render.Frame) {
	cfg := p.app.config
	body := ctx.ConstrainSizeBy(geom.NewSize(0, 1))

	// Bound reports the full inner area so the border always spans the screen
	frameW, frameH := borderSize(cfg)
	inner := body.Size.SaturatingSub(geom.NewSize(frameW, frameH))
	content := decorator.NewBound[[]string](p.background(), inner)

	title := text.TruncateMiddle(p.name, max(0, int(body.Size.W)-int(frameW)-2))
	framed(cfg, render.View[[]string](content), title).View(parts, body, f)

	statusCtx := ctx.
		AddOffset(geom.NewCoord(0, int(body.Size.H))).
		ConstrainSizeTo(geom.NewSize(ctx.Size.W, 1))
	p.status.View(p.statusText(), statusCtx, f)
}

// background fills the scroll area with the text background when one is set
func (p *pager) background() render.View[[]string] {
	if bg, ok := p.app.config.TextStyle().Background(); ok {
		return decorator.NewFillBackground[[]string](p.scroll, bg)
	}
	return p.scroll
}

func (p *pager) statusText() string {
	l := p.state.Limits
	last := min(l.ContentHeight, p.state.Offset+l.ViewportHeight)
	return fmt.Sprintf(" %d-%d/%d %3d%% ", min(p.state.Offset+1, last), last, l.ContentHeight, p.state.Percent())
}

// command maps a key event to a scroll command
func command(ev *tcell.EventKey) (decorator.ScrollCommand, bool) {
	switch ev.Key() {
	case tcell.KeyDown:
		return decorator.ScrollLineDown, true
	case tcell.KeyUp:
		return decorator.ScrollLineUp, true
	case tcell.KeyPgDn:
		return decorator.ScrollPageDown, true
	case tcell.KeyPgUp:
		return decorator.ScrollPageUp, true
	case tcell.KeyHome:
		return decorator.ScrollToTop, true
	case tcell.KeyEnd:
		return decorator.ScrollToBottom, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			return decorator.ScrollLineDown, true
		case 'k':
			return decorator.ScrollLineUp, true
		case ' ':
			return decorator.ScrollPageDown, true
		case 'b':
			return decorator.ScrollPageUp, true
		case 'g':
			return decorator.ScrollToTop, true
		case 'G':
			return decorator.ScrollToBottom, true
		}
	}
	return 0, false
}

// quit reports whether ev ends the pager
func quit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// apply runs cmd against the scroll state, ringing the bell when already at the limit
func (p *pager) apply(cmd decorator.ScrollCommand) {
	before := p.state.Offset
	p.state.Apply(cmd)
	if p.state.Offset == before && cmd != decorator.ScrollToTop && cmd != decorator.ScrollToBottom {
		p.bell.Ring()
	}
	log.Printf("scroll %s: %d -> %d (max %d)", cmd, before, p.state.Offset, p.state.MaxScroll())
}

// run draws and handles events until quit
func (p *pager) run(screen *backend.Screen) error {
	backend.Render[[]string](screen, p, p.parts)

	for {
		switch ev := screen.Tcell().PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Resize()
			log.Printf("resize %v", screen.Size())
		case *tcell.EventKey:
			if quit(ev) {
				return nil
			}
			cmd, ok := command(ev)
			if !ok {
				continue
			}
			p.apply(cmd)
		default:
			continue
		}
		backend.Render[[]string](screen, p, p.parts)
	}
}
