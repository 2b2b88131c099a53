package colour

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Mode names a colour capability
type Mode uint8

const (
	ModeAuto Mode = iota
	ModeTrueColour
	ModeAnsi256
	ModeAnsi16
	ModeGreyscale
	ModeIdentity
)

var modeNames = [...]string{
	ModeAuto:       "auto",
	ModeTrueColour: "truecolour",
	ModeAnsi256:    "ansi256",
	ModeAnsi16:     "ansi16",
	ModeGreyscale:  "greyscale",
	ModeIdentity:   "identity",
}

// String implements fmt.Stringer
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", m)
}

// ParseMode parses a mode name, accepting the common American spellings
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "truecolour", "truecolor", "24bit", "rgb":
		return ModeTrueColour, nil
	case "ansi256", "256", "xterm256":
		return ModeAnsi256, nil
	case "ansi16", "16", "ansi":
		return ModeAnsi16, nil
	case "greyscale", "grayscale", "grey", "gray":
		return ModeGreyscale, nil
	case "identity", "none":
		return ModeIdentity, nil
	}
	return ModeAuto, fmt.Errorf("unknown colour mode %q", s)
}

// Transform returns the transform for the mode, detecting the terminal for ModeAuto
func (m Mode) Transform() Transform {
	switch m {
	case ModeTrueColour:
		return TrueColour{}
	case ModeAnsi256:
		return Xterm256{}
	case ModeAnsi16:
		return Ansi16{}
	case ModeGreyscale:
		return Greyscale{}
	case ModeIdentity:
		return Identity{}
	}
	return Detect()
}

// Detect determines the transform for the current terminal from the environment
func Detect() Transform {
	return ForProfile(DetectProfile())
}

// DetectProfile combines termenv's profile with terminal-specific true color hints
func DetectProfile() termenv.Profile {
	profile := termenv.EnvColorProfile()
	if profile == termenv.Ascii || profile == termenv.TrueColor {
		return profile
	}
	if hasTrueColorHint() {
		return termenv.TrueColor
	}
	return profile
}

// ForProfile maps a termenv profile onto a transform
func ForProfile(p termenv.Profile) Transform {
	switch p {
	case termenv.TrueColor:
		return TrueColour{}
	case termenv.ANSI256:
		return Xterm256{}
	case termenv.ANSI:
		return Ansi16{}
	}
	return Greyscale{}
}

// hasTrueColorHint checks terminal-specific env vars that termenv does not consult
func hasTrueColorHint() bool {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return true
	}

	for _, key := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"WEZTERM_PANE",
	} {
		if os.Getenv(key) != "" {
			return true
		}
	}

	termLower := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(termLower, "truecolor") ||
		strings.Contains(termLower, "24bit") ||
		strings.Contains(termLower, "direct")
}
