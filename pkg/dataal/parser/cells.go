package parser

import (
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"github.com/xuri/excelize/v2"
)

// DecodeXLSX reads an xlsx workbook and returns its first sheet as a grid.
func DecodeXLSX(r io.Reader) (models.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractGrid(f)
}

// ExtractGrid returns the first sheet of an open workbook as a grid.
// A workbook without sheets yields an empty grid.
func ExtractGrid(f *excelize.File) (models.Grid, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return models.Grid{}, nil
	}
	return ExtractCells(f, sheets[0])
}

// ExtractCells extracts the cell values of a sheet row by row.
// Empty cells are nil; text cells stay strings even when they look numeric.
func ExtractCells(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, 0, len(rows))
	for rowIdx, row := range rows {
		cells := make([]any, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = cellValue(raw, cellType)
		}
		grid = append(grid, cells)
	}

	return grid, nil
}

// cellValue maps a raw stored value to a cell according to its type.
func cellValue(raw string, cellType excelize.CellType) any {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return raw
	case excelize.CellTypeBool:
		b, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			return raw
		}
		return b
	}
	return parseValue(raw)
}
