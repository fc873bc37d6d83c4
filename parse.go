package cio

import "strings"

// nestingDepth reports the maximum bracket depth of s, ignoring brackets
// inside double quotes. A plain scalar has depth 0, "[1, 2]" has depth 1.
func nestingDepth(s string) int {
	depth, maxDepth := 0, 0
	inQuotes := false
	for _, r := range s {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case '[':
			if !inQuotes {
				depth++
				if depth > maxDepth {
					maxDepth = depth
				}
			}
		case ']':
			if !inQuotes {
				depth--
			}
		}
	}
	return maxDepth
}

// topLevelBrackets returns the [start, end] index pairs of every first-level
// bracketed group in s. End indexes are inclusive of the closing bracket.
func topLevelBrackets(s string) [][2]int {
	var spans [][2]int
	level := 0
	inQuotes := false
	start := 0
	for i, r := range s {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case '[':
			if !inQuotes {
				if level == 0 {
					start = i
				}
				level++
			}
		case ']':
			if !inQuotes {
				level--
				if level == 0 {
					spans = append(spans, [2]int{start, i})
				}
			}
		}
	}
	return spans
}

// splitTopLevel splits s on commas at bracket level 0, trimming whitespace
// around each element. Commas inside quotes or nested brackets are kept.
func splitTopLevel(s string) []string {
	var elems []string
	var cur strings.Builder
	level := 0
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == '[' && !inQuotes:
			level++
			cur.WriteRune(r)
		case r == ']' && !inQuotes:
			level--
			cur.WriteRune(r)
		case r == ',' && !inQuotes && level == 0:
			elems = append(elems, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if last := strings.TrimSpace(cur.String()); last != "" || cur.Len() > 0 {
		elems = append(elems, last)
	}
	return elems
}

// stripQuotes removes one pair of surrounding double quotes, if present.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// isBracketedList reports whether s is a single bracketed group, like
// "[a, b, c]".
func isBracketedList(s string) bool {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return false
	}
	spans := topLevelBrackets(s)
	return len(spans) == 1 && spans[0][0] == 0 && spans[0][1] == len(s)-1
}
