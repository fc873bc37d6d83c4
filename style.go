package cio

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ansiReset = "\x1b[0m"

// SGR parameters for the color and style vocabulary. Color names follow the
// conventional terminal palette; "gray" is an alias for bright_black.
var styleCodes = map[string]string{
	"black":          "30",
	"red":            "31",
	"green":          "32",
	"yellow":         "33",
	"blue":           "34",
	"magenta":        "35",
	"cyan":           "36",
	"white":          "37",
	"bright_black":   "90",
	"gray":           "90",
	"bright_red":     "91",
	"bright_green":   "92",
	"bright_yellow":  "93",
	"bright_blue":    "94",
	"bright_magenta": "95",
	"bright_cyan":    "96",
	"bright_white":   "97",
	"bold":           "1",
	"italic":         "3",
	"underline":      "4",
	"dimmed":         "2",
	"blink":          "5",
	"reversed":       "7",
	"hidden":         "8",
	"strikethrough":  "9",
}

// StyleCode translates a list of color and style names into a single ANSI
// SGR sequence. Unknown names are ignored; an empty or fully unknown list
// yields the reset sequence.
func StyleCode(specs ...string) string {
	var codes []string
	for _, spec := range specs {
		if code, ok := styleCodes[strings.TrimSpace(spec)]; ok {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return ansiReset
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// IsStyleList reports whether the comma-separated expression names at least
// one known color or style term.
func IsStyleList(expr string) bool {
	if expr == "" {
		return false
	}
	for _, term := range strings.Split(expr, ",") {
		if _, ok := styleCodes[strings.TrimSpace(term)]; ok {
			return true
		}
	}
	return false
}

// Theme is the palette used by [Render]. Each entry is a complete ANSI SGR
// sequence; Reset terminates every colored span so color never bleeds across
// borders. Header colors are indexed by header depth and wrap around for
// depths past the last entry.
type Theme struct {
	Header [3]string
	Label  string
	Data   string
	Reset  string
}

// DefaultTheme is the fixed palette used when [Options].Theme is nil.
var DefaultTheme = &Theme{
	Header: [3]string{
		StyleCode("bright_blue", "bold", "italic"),
		StyleCode("bright_cyan", "bold", "italic"),
		StyleCode("bright_magenta", "bold", "italic"),
	},
	Label: StyleCode("bright_white", "bold", "italic"),
	Data:  StyleCode("white"),
	Reset: ansiReset,
}

func (t *Theme) headerColor(depth int) string {
	return t.Header[depth%len(t.Header)]
}

// stripColor removes every ANSI escape sequence from s.
func stripColor(s string) string {
	return ansi.Strip(s)
}

// visualWidth is the display width of s after color stripping: what the
// cell occupies on screen, not its byte or codepoint count.
func visualWidth(s string) int {
	return runewidth.StringWidth(stripColor(s))
}
