//go:build !unix

package backend

import (
	"context"
	"fmt"

	"golang.org/x/term"

	"github.com/lixenwraith/gridview/geom"
)

// DeviceSize returns the terminal size for fd
func DeviceSize(fd int) (geom.Size, error) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return geom.Size{}, fmt.Errorf("querying terminal size: %w", err)
	}
	return geom.NewSize(uint32(max(w, 0)), uint32(max(h, 0))), nil
}

// WatchResize has no signal source on this platform; the channel closes when ctx is done
func WatchResize(ctx context.Context, _ int) <-chan geom.Size {
	eventCh := make(chan geom.Size)
	go func() {
		<-ctx.Done()
		close(eventCh)
	}()
	return eventCh
}
