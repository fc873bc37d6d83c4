package cio

import "strings"

// Bracket glyphs for matrix rendering.
const (
	matrixSingleL = "⦅"
	matrixSingleR = "⦆"
	matrixTopL    = "⎛"
	matrixTopR    = "⎞"
	matrixBotL    = "⎝"
	matrixBotR    = "⎠"
	matrixMidBar  = "│"
)

// FormatMatrix renders a 2D array with tall Unicode brackets: rounded
// parentheses spanning the rows, or ⦅ ⦆ for a single-row matrix. Columns
// are left-aligned to their widest cell with two-space gutters. Values that
// are not arrays of arrays fall back to their literal text.
func FormatMatrix(v Value) string {
	matrix, ok := matrixCells(v)
	if !ok {
		return v.text()
	}
	if len(matrix) == 0 {
		return "[Empty Matrix]"
	}
	return renderMatrix(matrix, func(i, nrows int) (string, string) {
		switch {
		case nrows == 1:
			return matrixSingleL, matrixSingleR
		case i == 0:
			return matrixTopL, matrixTopR
		case i == nrows-1:
			return matrixBotL, matrixBotR
		default:
			return matrixMidBar, matrixMidBar
		}
	})
}

// FormatDeterminant renders a square 2D array between vertical bars, the
// conventional determinant notation. Non-square or too-small input yields a
// fixed explanatory string rather than an error.
func FormatDeterminant(v Value) string {
	matrix, ok := matrixCells(v)
	if !ok {
		return "Determinant undefined (invalid matrix)"
	}
	nrows := len(matrix)
	ncols := 0
	if nrows > 0 {
		ncols = len(matrix[0])
	}
	if nrows != ncols || nrows < 2 {
		return "Determinant undefined (non-square or too small matrix)"
	}
	return renderMatrix(matrix, func(int, int) (string, string) {
		return matrixMidBar, matrixMidBar
	})
}

// matrixCells stringifies an array of arrays into a cell grid.
func matrixCells(v Value) ([][]string, bool) {
	if v.Kind() != KindArray {
		return nil, false
	}
	matrix := make([][]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		inner := v.Index(i)
		if inner.Kind() != KindArray {
			return nil, false
		}
		row := make([]string, inner.Len())
		for j := range row {
			row[j] = inner.Index(j).text()
		}
		matrix[i] = row
	}
	return matrix, true
}

func renderMatrix(matrix [][]string, brackets func(row, nrows int) (string, string)) string {
	ncols := len(matrix[0])
	widths := make([]int, ncols)
	for _, row := range matrix {
		for j, cell := range row {
			if j < ncols && visualWidth(cell) > widths[j] {
				widths[j] = visualWidth(cell)
			}
		}
	}
	var sb strings.Builder
	for i, row := range matrix {
		left, right := brackets(i, len(matrix))
		sb.WriteString(left)
		sb.WriteString("  ")
		for j, cell := range row {
			if j >= ncols {
				break
			}
			sb.WriteString(alignText(cell, widths[j], alignLeft))
			if j < ncols-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("  ")
		sb.WriteString(right)
		sb.WriteString("\n")
	}
	return sb.String()
}
