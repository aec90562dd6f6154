// Package models defines data structures for spreadsheet shape inference.
package models

// Grid is a 2-D array of cell values taken from the first sheet of a
// spreadsheet, header row first.
//
// A cell is one of nil, string, float64, int64, int or bool. Grids returned
// by the normalizer are rectangular.
type Grid [][]any

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the length of the first row, or 0 for an empty grid.
// For a normalized grid this is the width of every row.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the cell at (row, col), or nil when the position is outside
// the grid.
func (g Grid) At(row, col int) any {
	if row < 0 || row >= len(g) {
		return nil
	}
	if col < 0 || col >= len(g[row]) {
		return nil
	}
	return g[row][col]
}

// IsEmptyCell reports whether a cell counts as empty: nil or the empty
// string. Whitespace-only strings are not empty.
func IsEmptyCell(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
