package cio

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Box-drawing characters for table borders.
const (
	barHorizontal = "─"
	barVertical   = "│"
	cornerTL      = "┌"
	cornerTR      = "┐"
	cornerBL      = "└"
	cornerBR      = "┘"
	teeDown       = "┬"
	teeUp         = "┴"
	teeRight      = "├"
	teeLeft       = "┤"
	cross         = "┼"
)

// Options controls a single [Render] call.
type Options struct {
	// EqualizeColumns forces every column except column 0 to the same
	// width, for symmetric numeric tables.
	EqualizeColumns bool
	// ExpandArrays splits bracketed-list and comma-joined cells into
	// sub-columns under a spanned header.
	ExpandArrays bool
	// Theme overrides the palette. Nil selects [DefaultTheme].
	Theme *Theme
}

// Render draws value as a Unicode-bordered table. The structure of the
// table is inferred from the shape of the value: arrays become data rows,
// objects contribute their keys as headers or row labels, and three-level
// objects produce two header rows with colspan grouping. Custom headers
// replace the inferred ones where a shape accepts them. Render never fails;
// unclassifiable values fall back to a single-cell box and an empty value
// yields an empty string.
//
// Render is a pure function of its arguments: it keeps no state between
// calls and is safe for concurrent use.
func Render(v Value, headers []string, opts Options) string {
	if v.Kind() == KindNull {
		return ""
	}
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme
	}
	m := buildModel(v, headers)
	if opts.ExpandArrays {
		m = expandArrays(m)
	}
	if len(m.rows) == 0 || m.columns() == 0 {
		return ""
	}

	widths := columnWidths(m, opts.EqualizeColumns)
	aligns := alignments(m)
	spans := make([][]int, len(m.rows))
	for r, row := range m.rows {
		if r < m.headerRows {
			spans[r] = colspans(row)
		} else {
			spans[r] = onesSpan(len(row))
		}
	}

	// A top border merged across column 0 defers its left corner to the
	// first border line below it.
	mergedTop := spans[0][0] > 1

	var sb strings.Builder
	writeBorderLine(&sb, widths, nil, spans[0], false)
	for r := range m.rows {
		writeTableRow(&sb, &m, r, widths, aligns, spans[r], theme)
		if r+1 < len(m.rows) {
			writeBorderLine(&sb, widths, spans[r], spans[r+1], mergedTop)
			mergedTop = false
		}
	}
	writeBorderLine(&sb, widths, spans[len(spans)-1], nil, false)
	return sb.String()
}

// fallbackWidth caps the content of the single-cell fallback box.
const fallbackWidth = 40

// RenderFallback draws a minimal single-cell box around text, truncated to
// a fixed maximum width. It is the rendering used when the caller could not
// produce a [Value] from its source and supplies literal text instead.
func RenderFallback(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = runewidth.Truncate(text, fallbackWidth, "...")
	w := visualWidth(text)
	var sb strings.Builder
	sb.WriteString(cornerTL + strings.Repeat(barHorizontal, w+2) + cornerTR + "\n")
	sb.WriteString(barVertical + " " + text + " " + barVertical + "\n")
	sb.WriteString(cornerBL + strings.Repeat(barHorizontal, w+2) + cornerBR + "\n")
	return sb.String()
}

// writeBorderLine draws one horizontal border. A junction appears at a
// column boundary only on the sides where a cell edge is realized: both
// sides make a cross, only the row below a down-tee, only the row above an
// up-tee. A boundary inside spans on both sides stays a plain bar so no
// line cuts through a merged header cell. nil above means the top border,
// nil below the bottom. mergedTop promotes the left edge to a corner when
// this is the first realized border under a top merged across column 0.
func writeBorderLine(sb *strings.Builder, widths []int, above, below []int, mergedTop bool) {
	left, right := teeRight, teeLeft
	switch {
	case above == nil:
		left, right = cornerTL, cornerTR
	case below == nil:
		left, right = cornerBL, cornerBR
	case mergedTop:
		left = cornerTL
	}
	sb.WriteString(left)
	for c := range widths {
		sb.WriteString(strings.Repeat(barHorizontal, widths[c]+2))
		if c == len(widths)-1 {
			break
		}
		aboveEdge := above != nil && above[c+1] > 0
		belowEdge := below != nil && below[c+1] > 0
		switch {
		case aboveEdge && belowEdge:
			sb.WriteString(cross)
		case belowEdge:
			sb.WriteString(teeDown)
		case aboveEdge:
			sb.WriteString(teeUp)
		default:
			sb.WriteString(barHorizontal)
		}
	}
	sb.WriteString(right)
	sb.WriteByte('\n')
}

// writeTableRow draws one text row. Cells with span zero are absorbed into
// a preceding merged cell and emit nothing; a spanned cell is padded to the
// sum of its columns plus the borders and padding it absorbs. Header cells
// center and take the depth color, label cells the label color, and every
// colored span is closed with a reset so color never crosses a border.
func writeTableRow(sb *strings.Builder, m *tableModel, r int, widths []int, aligns []alignment, spans []int, theme *Theme) {
	row := m.rows[r]
	sb.WriteString(barVertical)
	for c, cell := range row {
		span := spans[c]
		if span == 0 {
			continue
		}
		w := widths[c]
		for k := c + 1; k < c+span; k++ {
			w += widths[k] + 3
		}
		var padded, color string
		if r < m.headerRows {
			padded = alignText(cell, w, alignCenter)
			color = theme.headerColor(r)
		} else {
			padded = alignText(cell, w, aligns[c])
			color = theme.Data
			if c == 0 && m.labelCol {
				color = theme.Label
			}
		}
		sb.WriteString(" ")
		sb.WriteString(color)
		sb.WriteString(padded)
		sb.WriteString(theme.Reset)
		sb.WriteString(" ")
		sb.WriteString(barVertical)
	}
	sb.WriteByte('\n')
}

func alignText(s string, width int, align alignment) string {
	pad := width - visualWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", pad) + s
	case alignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
