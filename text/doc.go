// Package text lays out streams of characters as cell writes.
//
// A Wrap policy keeps a cursor (column, line) and turns each character into a relative
// write at that cursor; text views feed their strings through a policy one rune at a time
// and flush it at the end. Translation, clipping and colour happen in the frame pipeline,
// never here.
//
// Policies:
//   - NoWrap: one column per rune, newline returns to column 0
//   - WordWrap: buffers a word and moves it to the next line when it does not fit
//   - CharWrap: breaks at any rune when the line is full
package text
