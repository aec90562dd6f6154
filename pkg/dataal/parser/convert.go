package parser

import (
	"fmt"

	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

// Convert turns a preview into its persisted envelope for the selected kind.
func Convert(preview *models.PreviewData, selected models.ShapeKind) models.Envelope {
	if preview == nil {
		return models.EmptyTableEnvelope()
	}
	return ConvertGrid(preview.Raw, selected)
}

// ConvertGrid turns a normalized grid into its persisted envelope.
//
// A list-shaped grid always becomes a "liste" envelope. Any other grid with
// fewer than two rows or columns becomes the empty "tablo" envelope.
// ShapeList on a table-shaped grid lists its first data column; every
// other kind produces a "tablo" envelope.
func ConvertGrid(grid models.Grid, selected models.ShapeKind) models.Envelope {
	if grid.Rows() == 0 {
		return models.EmptyTableEnvelope()
	}
	if dir := ListOrientation(grid); dir != NotList {
		return listEnvelope(listValues(grid, dir))
	}
	if grid.Rows() < 2 || grid.Cols() < 2 {
		return models.EmptyTableEnvelope()
	}
	if selected == models.ShapeList {
		return listEnvelope(columnValues(grid, 1))
	}
	return tableEnvelope(grid)
}

func listEnvelope(header string, raw []any) models.Envelope {
	values := make([]any, len(raw))
	labels := make([]string, len(raw))
	for i, v := range raw {
		values[i] = TypeValue(v)
		labels[i] = Stringify(values[i])
	}

	data := models.NewOrderedMap()
	data.Set(header, values)
	return models.Envelope{
		Type:    models.EnvelopeList,
		XLabels: labels,
		YLabels: []string{header},
		Data:    data,
	}
}

// tableEnvelope keys rows by the first column and columns by the header
// row. A repeated key keeps its first position and the last row's values.
func tableEnvelope(grid models.Grid) models.Envelope {
	cols := grid.Cols()
	colKeys := make([]string, 0, cols-1)
	for j := 1; j < cols; j++ {
		colKeys = append(colKeys, labelOf(grid[0][j], fmt.Sprintf("%s %d", ColumnPlaceholder, j)))
	}

	data := models.NewOrderedMap()
	for i := 1; i < len(grid); i++ {
		rowKey := labelOf(grid[i][0], fmt.Sprintf("%s %d", RowPlaceholder, i))
		row := models.NewOrderedMap()
		for j, key := range colKeys {
			row.Set(key, TypeValue(grid[i][j+1]))
		}
		data.Set(rowKey, row)
	}

	return models.Envelope{
		Type:    models.EnvelopeTable,
		XLabels: data.Keys(),
		YLabels: uniqueStrings(colKeys),
		Data:    data,
	}
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
