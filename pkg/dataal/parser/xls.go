package parser

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

// DecodeXLS reads a legacy BIFF workbook and returns its first sheet.
func DecodeXLS(r io.ReadSeeker) (grid models.Grid, err error) {
	// The xls reader panics on some malformed streams.
	defer func() {
		if rec := recover(); rec != nil {
			grid, err = nil, fmt.Errorf("malformed xls workbook: %v", rec)
		}
	}()

	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return models.Grid{}, nil
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return models.Grid{}, nil
	}

	grid = make(models.Grid, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			grid = append(grid, []any{})
			continue
		}
		last := row.LastCol()
		cells := make([]any, max(last, 0))
		for j := row.FirstCol(); j < last; j++ {
			cells[j] = parseValue(row.Col(j))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
