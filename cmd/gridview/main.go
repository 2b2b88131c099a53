// Command gridview renders text files through the gridview decorator stack
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := NewApp()
	defer func() { _ = app.Close() }()
	return app.Execute()
}
