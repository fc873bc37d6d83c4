package cio

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// styleTagPattern matches @(...) style tags in a format string.
var styleTagPattern = regexp.MustCompile(`@\(([^)]*)\)`)

// Sprintf is fmt.Sprintf with inline style tags. A tag like
// "@(green, bold)" switches the current color and style, "@()" resets, and
// the result always ends with a reset when any tag was used:
//
//	cio.Sprintf("@(green, bold)ok@() in %.2fs", elapsed)
//
// Tag names are the [StyleCode] vocabulary; unknown names inside a tag are
// ignored. Format strings without tags pass through untouched.
func Sprintf(format string, args ...any) string {
	expanded, tagged := expandStyleTags(format)
	s := fmt.Sprintf(expanded, args...)
	if tagged {
		s += ansiReset
	}
	return s
}

// Fprintf formats with style tags and writes to w.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return io.WriteString(w, Sprintf(format, args...))
}

// Printf formats with style tags and writes to standard output.
func Printf(format string, args ...any) (int, error) {
	return Fprintf(os.Stdout, format, args...)
}

// expandStyleTags replaces every @(...) tag with its ANSI sequence and
// reports whether any tag was present. Each style change resets first so
// styles replace rather than accumulate.
func expandStyleTags(format string) (string, bool) {
	if !strings.Contains(format, "@(") {
		return format, false
	}
	tagged := false
	out := styleTagPattern.ReplaceAllStringFunc(format, func(tag string) string {
		tagged = true
		inner := tag[2 : len(tag)-1]
		code := StyleCode(strings.Split(inner, ",")...)
		if code == ansiReset {
			return ansiReset
		}
		return ansiReset + code
	})
	return out, tagged
}
