package backend

import "golang.org/x/term"

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
