//go:build unix

package backend

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/gridview/geom"
)

// DeviceSize returns the terminal size for fd
// TIOCGWINSZ is tried first, x/term second
func DeviceSize(fd int) (geom.Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 && ws.Row > 0 {
		return geom.NewSize(uint32(ws.Col), uint32(ws.Row)), nil
	}
	w, h, terr := term.GetSize(fd)
	if terr != nil {
		return geom.Size{}, fmt.Errorf("querying terminal size: %w", terr)
	}
	return geom.NewSize(uint32(max(w, 0)), uint32(max(h, 0))), nil
}

// WatchResize streams the size of fd after every SIGWINCH until ctx is done
// Only the latest size is buffered; the channel is closed on return
func WatchResize(ctx context.Context, fd int) <-chan geom.Size {
	sigCh := make(chan os.Signal, 1)
	eventCh := make(chan geom.Size, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer close(eventCh)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				size, err := DeviceSize(fd)
				if err != nil || size.IsZero() {
					continue
				}
				// Non-blocking send, drop old event if not consumed
				select {
				case eventCh <- size:
				default:
					select {
					case <-eventCh:
					default:
					}
					eventCh <- size
				}
			}
		}
	}()

	return eventCh
}
