package parser

import "github.com/ukaji3/dataal-go/pkg/dataal/models"

// Normalize drops rows whose cells are all empty and pads the remaining
// rows on the right with nil to the longest row's length.
// The input grid is not modified.
func Normalize(grid models.Grid) models.Grid {
	kept := make([][]any, 0, len(grid))
	maxLen := 0
	for _, row := range grid {
		if isEmptyRow(row) {
			continue
		}
		kept = append(kept, row)
		if len(row) > maxLen {
			maxLen = len(row)
		}
	}

	result := make(models.Grid, len(kept))
	for i, row := range kept {
		padded := make([]any, maxLen)
		copy(padded, row)
		result[i] = padded
	}
	return result
}

func isEmptyRow(row []any) bool {
	for _, cell := range row {
		if !models.IsEmptyCell(cell) {
			return false
		}
	}
	return true
}
