package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lixenwraith/gridview/config"
	"github.com/lixenwraith/gridview/decorator"
	"github.com/lixenwraith/gridview/render"
	"github.com/lixenwraith/gridview/text"
)

// readDocument reads a file, or stdin for "-", returning its display name and content
func readDocument(path string, stdin io.Reader) (string, string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return "stdin", string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return filepath.Base(path), string(data), nil
}

// bodyView is the text view for document content, padded one column either side
func bodyView(cfg *config.Config) render.View[[]string] {
	return decorator.NewPad[[]string](
		text.NewTextView(cfg.TextStyle(), cfg.Wrap()),
		decorator.NewPadding(1, 0, 1, 0),
	)
}

// framed wraps v in the configured border with a title
func framed[T any](cfg *config.Config, v render.View[T], title string) decorator.Border[T] {
	frame, titleStyle := cfg.BorderStyles()
	return decorator.NewBorder[T](v).
		WithTitle(title).
		WithChars(cfg.BorderChars()).
		WithPadding(cfg.BorderPadding()).
		WithStyle(frame, titleStyle)
}

// borderSize is the space a framed view spends on frame and padding
func borderSize(cfg *config.Config) (w, h uint32) {
	p := cfg.BorderPadding().Size()
	return p.W + 2, p.H + 2
}
