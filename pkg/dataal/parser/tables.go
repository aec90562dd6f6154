package parser

import "github.com/ukaji3/dataal-go/pkg/dataal/models"

// DropEmptyColumns removes columns in which every cell is empty.
// The grid is expected to be normalized.
func DropEmptyColumns(grid models.Grid) models.Grid {
	if len(grid) == 0 {
		return grid
	}

	minCol, maxCol := findDataBounds(grid)
	if minCol < 0 {
		return models.Grid{}
	}

	keep := make([]int, 0, maxCol-minCol+1)
	for col := minCol; col <= maxCol; col++ {
		if countNonEmptyCells(grid, col) > 0 {
			keep = append(keep, col)
		}
	}

	result := make(models.Grid, len(grid))
	for i, row := range grid {
		out := make([]any, len(keep))
		for j, col := range keep {
			if col < len(row) {
				out[j] = row[col]
			}
		}
		result[i] = out
	}
	return result
}

// findDataBounds finds the first and last column holding a non-empty cell.
func findDataBounds(grid models.Grid) (minCol, maxCol int) {
	minCol, maxCol = -1, -1

	for _, row := range grid {
		for colIdx, cell := range row {
			if models.IsEmptyCell(cell) {
				continue
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells in a column.
func countNonEmptyCells(grid models.Grid, col int) int {
	count := 0
	for _, row := range grid {
		if col < len(row) && !models.IsEmptyCell(row[col]) {
			count++
		}
	}
	return count
}
