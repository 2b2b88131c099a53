// FILE: colour/doc.go
// Package colour holds the 24-bit colour type and the capability-dependent transforms
// applied to every cell at the point it leaves the view tree.
//
// A Transform is installed once on the root render context and may be replaced or
// composed lower in the tree. Transforms are total: every RGB maps to a valid RGB, so
// the render pipeline never has to handle a colour failure.
//
// Quantizing transforms (Ansi16, Xterm256, Greyscale) return the palette colour itself
// and expose Index for sinks that encode palette indices directly.
package colour
