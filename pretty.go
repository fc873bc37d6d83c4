package cio

import "strings"

// FormatContainer pretty-prints a nested array value by bracket depth:
// scalars and flat arrays stay on one line, 2D arrays get one row per line,
// and deeper nestings indent two spaces per level. Non-array values render
// as their literal text.
func FormatContainer(v Value) string {
	text := v.text()
	if !isBracketedList(text) || nestingDepth(text) <= 1 {
		return text
	}
	return indentBrackets(text, 0)
}

func indentBrackets(s string, level int) string {
	if !strings.Contains(s, "[[") {
		return s
	}
	content := s[1 : len(s)-1]
	spans := topLevelBrackets(content)
	var sb strings.Builder
	sb.WriteString("[\n")
	for i, sp := range spans {
		sb.WriteString(strings.Repeat("  ", level+1))
		sb.WriteString(indentBrackets(content[sp[0]:sp[1]+1], level+1))
		if i < len(spans)-1 {
			sb.WriteString(",\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("  ", level))
	sb.WriteString("]")
	return sb.String()
}
