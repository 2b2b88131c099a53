// Package backend connects rendered frames to real output: a tcell screen for interactive
// use, an ANSI serialiser for one-shot output to any writer, device size queries and a
// SIGWINCH watcher, and an optional audible bell.
//
// The rendering core never imports this package; it only sees render.Frame.
package backend
