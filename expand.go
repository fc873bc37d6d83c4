package cio

import "strings"

// listSeparator joins array elements inside a cell and is also recognized
// when splitting comma-joined tokens back apart.
const listSeparator = ", "

// expandArrays splits composite cells into sub-columns: a bracketed list or
// a comma-joined cell in column c becomes n sub-columns, where n is the
// largest element count observed in that column. Header text stays in the
// first sub-column and the blanks behind it are picked up by the colspan
// calculator. Column 0 is the row-label column and never expands. The pass
// produces a fresh model; the input is discarded by the caller.
func expandArrays(m tableModel) tableModel {
	if m.headerRows < 1 {
		return m
	}
	cols := m.columns()
	widths := make([]int, cols) // sub-columns per original column
	for c := 0; c < cols; c++ {
		widths[c] = 1
		if c == 0 {
			continue
		}
		for r := m.headerRows; r < len(m.rows); r++ {
			if n := len(cellElements(m.rows[r][c])); n > widths[c] {
				widths[c] = n
			}
		}
	}

	out := tableModel{
		rows:       make([][]string, len(m.rows)),
		headerRows: m.headerRows,
		labelCol:   m.labelCol,
	}
	for r, row := range m.rows {
		var cells []string
		for c := 0; c < cols; c++ {
			if widths[c] == 1 {
				cells = append(cells, row[c])
				continue
			}
			if r < m.headerRows {
				cells = append(cells, row[c])
				cells = append(cells, make([]string, widths[c]-1)...)
				continue
			}
			elems := cellElements(row[c])
			for i := 0; i < widths[c]; i++ {
				if i < len(elems) {
					cells = append(cells, elems[i])
				} else {
					cells = append(cells, "")
				}
			}
		}
		out.rows[r] = cells
	}
	out.normalize()
	return out
}

// cellElements splits a composite cell into its element texts. A cell that
// is neither a bracketed list nor comma-joined is its own single element.
func cellElements(cell string) []string {
	if isBracketedList(cell) {
		inner := cell[1 : len(cell)-1]
		elems := splitTopLevel(inner)
		for i, e := range elems {
			elems[i] = stripQuotes(e)
		}
		return elems
	}
	if strings.Contains(cell, listSeparator) {
		return strings.Split(cell, listSeparator)
	}
	return []string{cell}
}
