package text

import "unicode/utf8"

const ellipsis = "…"

// RuneLen is the number of cells s occupies, one per rune
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if RuneLen(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + ellipsis
}

// TruncateMiddle shortens s to at most n runes, keeping both ends
// The head gets the shorter half so file extensions survive
func TruncateMiddle(s string, n int) string {
	if RuneLen(s) <= n || n <= 3 {
		return Truncate(s, n)
	}
	runes := []rune(s)
	head := (n - 1) / 2
	tail := n - 1 - head
	return string(runes[:head]) + ellipsis + string(runes[len(runes)-tail:])
}
