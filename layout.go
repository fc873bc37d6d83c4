package cio

import (
	"strconv"
	"strings"
)

// Alignment of a column, fixed once for the whole table.
type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// columnWidths computes the visual width of every column: the widest
// color-stripped cell across all rows, headers included. With equalize set,
// every column except column 0 is forced to their shared maximum.
func columnWidths(m tableModel, equalize bool) []int {
	widths := make([]int, m.columns())
	for _, row := range m.rows {
		for c, cell := range row {
			if w := visualWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	if equalize && len(widths) > 1 {
		max := 0
		for _, w := range widths[1:] {
			if w > max {
				max = w
			}
		}
		for c := 1; c < len(widths); c++ {
			widths[c] = max
		}
	}
	return widths
}

// alignments picks one alignment per column: headed columns center, fully
// numeric columns right-align, everything else left-aligns. Blank data
// cells are neutral so rows padded for rectangularity do not break numeric
// alignment.
func alignments(m tableModel) []alignment {
	cols := m.columns()
	aligns := make([]alignment, cols)
	for c := 0; c < cols; c++ {
		headed := false
		for r := 0; r < m.headerRows; r++ {
			if m.rows[r][c] != "" {
				headed = true
				break
			}
		}
		if headed {
			aligns[c] = alignCenter
			continue
		}
		numeric := false
		for r := m.headerRows; r < len(m.rows); r++ {
			cell := strings.TrimSpace(stripColor(m.rows[r][c]))
			if cell == "" {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
				break
			}
			numeric = true
		}
		if numeric {
			aligns[c] = alignRight
		}
	}
	return aligns
}

// colspans derives the span run of a header row from its blank cells: a
// non-blank cell absorbs the blanks that follow it, recorded as a positive
// span at the run start and zero at each absorbed index. A leading blank
// starts its own run. Rows without blanks yield all ones. The non-zero
// spans of a row always sum to the column count.
func colspans(row []string) []int {
	spans := make([]int, len(row))
	i := 0
	for i < len(row) {
		j := i + 1
		for j < len(row) && row[j] == "" {
			j++
		}
		spans[i] = j - i
		i = j
	}
	return spans
}

// onesSpan is the implicit no-merge span for data rows.
func onesSpan(n int) []int {
	spans := make([]int, n)
	for i := range spans {
		spans[i] = 1
	}
	return spans
}
