package parser

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

// Placeholder labels for blank header cells.
const (
	ListPlaceholder   = "Liste"
	ColumnPlaceholder = "Sütun"
	RowPlaceholder    = "Satır"
)

// BuildPreview lays out a bounded preview of a normalized grid for kind.
//
// A list-shaped grid always gets a list preview, whatever kind says. Other
// grids get a table preview for the table family, a list preview of the
// first data column for ShapeList, and a plain column preview otherwise.
func BuildPreview(grid models.Grid, kind models.ShapeKind) (*models.PreviewData, error) {
	if grid.Rows() == 0 {
		return &models.PreviewData{
			Raw:         models.Grid{},
			Type:        models.ShapeUnknown,
			Headers:     []string{},
			PreviewRows: []*models.OrderedMap{},
		}, nil
	}

	var raw models.Grid
	if err := deepcopy.Copy(&raw, grid); err != nil {
		return nil, fmt.Errorf("failed to copy grid: %w", err)
	}

	if dir := ListOrientation(raw); dir != NotList {
		header, values := listValues(raw, dir)
		return listPreview(raw, header, values), nil
	}

	switch {
	case kind.IsTableFamily():
		return tablePreview(raw, kind), nil
	case kind == models.ShapeList:
		header, values := columnValues(raw, 1)
		return listPreview(raw, header, values), nil
	}
	return plainPreview(raw), nil
}

// listValues returns the header and raw values of a list-shaped grid.
func listValues(grid models.Grid, dir Orientation) (string, []any) {
	header := labelOf(grid[0][0], ListPlaceholder)
	if dir == Horizontal {
		return header, grid[0][1:]
	}
	values := make([]any, 0, len(grid)-1)
	for _, row := range grid[1:] {
		values = append(values, row[0])
	}
	return header, values
}

// columnValues returns the header and data cells of a column.
func columnValues(grid models.Grid, col int) (string, []any) {
	header := labelOf(grid.At(0, col), ListPlaceholder)
	values := make([]any, 0, len(grid)-1)
	for i := 1; i < len(grid); i++ {
		values = append(values, grid.At(i, col))
	}
	return header, values
}

func listPreview(raw models.Grid, header string, values []any) *models.PreviewData {
	rows := make([]*models.OrderedMap, 0, min(len(values), models.PreviewRowLimit))
	for _, v := range values[:min(len(values), models.PreviewRowLimit)] {
		row := models.NewOrderedMap()
		row.Set(header, TypeValue(v))
		rows = append(rows, row)
	}
	return &models.PreviewData{
		Raw:         raw,
		Type:        models.ShapeList,
		Headers:     []string{header},
		PreviewRows: rows,
	}
}

func tablePreview(raw models.Grid, kind models.ShapeKind) *models.PreviewData {
	cols := raw.Cols()
	headers := make([]string, 0, max(cols-1, 0))
	for j := 1; j < cols; j++ {
		headers = append(headers, labelOf(raw[0][j], ColumnPlaceholder))
	}
	rowHeaders := make([]string, 0, len(raw)-1)
	for _, row := range raw[1:] {
		rowHeaders = append(rowHeaders, labelOf(row[0], RowPlaceholder))
	}

	limit := min(len(raw)-1, models.PreviewRowLimit)
	rows := make([]*models.OrderedMap, 0, limit)
	for i := 1; i <= limit; i++ {
		row := models.NewOrderedMap()
		row.Set(models.RowHeaderKey, rowHeaders[i-1])
		for j, h := range headers {
			row.Set(h, TypeValue(raw[i][j+1]))
		}
		rows = append(rows, row)
	}

	return &models.PreviewData{
		Raw:         raw,
		Type:        kind,
		Headers:     headers,
		RowHeaders:  rowHeaders,
		PreviewRows: rows,
	}
}

// plainPreview shows the grid as columns without inferring row labels.
func plainPreview(raw models.Grid) *models.PreviewData {
	headers := make([]string, 0, raw.Cols())
	for _, cell := range raw[0] {
		headers = append(headers, labelOf(cell, ColumnPlaceholder))
	}

	limit := min(len(raw)-1, models.PreviewRowLimit)
	rows := make([]*models.OrderedMap, 0, limit)
	for i := 1; i <= limit; i++ {
		row := models.NewOrderedMap()
		for j, cell := range raw[i] {
			row.Set(fmt.Sprintf("%s %d", ColumnPlaceholder, j+1), TypeValue(cell))
		}
		rows = append(rows, row)
	}

	return &models.PreviewData{
		Raw:         raw,
		Type:        models.ShapeUnknown,
		Headers:     headers,
		PreviewRows: rows,
	}
}
