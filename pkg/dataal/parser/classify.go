package parser

import (
	"strings"

	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Orientation describes how a list-shaped grid is laid out.
type Orientation int

const (
	// NotList means the grid is not list-shaped.
	NotList Orientation = iota
	// Horizontal is a single row: a header cell followed by values.
	Horizontal
	// Vertical is a single column: a header row followed by one value per row.
	Vertical
)

// ListOrientation reports whether a normalized grid is list-shaped.
// A single row needs at least two cells; a single column needs at least two
// rows. A 1x1 grid is not a list.
func ListOrientation(grid models.Grid) Orientation {
	rows, cols := grid.Rows(), grid.Cols()
	switch {
	case rows == 1 && cols >= 2:
		return Horizontal
	case rows >= 2 && cols == 1:
		return Vertical
	}
	return NotList
}

// ClassifyParams holds the ratios used to classify table-shaped grids.
type ClassifyParams struct {
	NumericRatioMin float64
	DateRatioMin    float64
}

// DefaultClassifyParams returns default classification parameters.
func DefaultClassifyParams() ClassifyParams {
	return ClassifyParams{
		NumericRatioMin: 0.7,
		DateRatioMin:    0.7,
	}
}

// dateKeywords mark a column header as holding dates.
var dateKeywords = []string{
	"tarih", "date", "zaman", "time", "gün", "ay", "yıl", "day", "month", "year",
}

// Classify infers the shape of a normalized grid with default parameters.
func Classify(grid models.Grid) models.ShapeKind {
	return ClassifyWith(grid, DefaultClassifyParams())
}

// ClassifyWith infers the shape of a normalized grid.
//
// Rules apply in order: empty is unknown, list-shaped is list, fewer than two
// rows is unknown, then the share of data rows holding a numeric cell and
// the share holding a date cell decide between numeric, date and text.
// Table is never inferred; it is only chosen by the user.
func ClassifyWith(grid models.Grid, params ClassifyParams) models.ShapeKind {
	if grid.Rows() == 0 || grid.Cols() == 0 {
		return models.ShapeUnknown
	}
	if ListOrientation(grid) != NotList {
		return models.ShapeList
	}
	if grid.Rows() < 2 {
		return models.ShapeUnknown
	}

	dateColumns := make([]bool, len(grid[0]))
	for j, header := range grid[0] {
		dateColumns[j] = isDateHeader(header)
	}

	dataRows := grid[1:]
	numericRows, dateRows := 0, 0
	for _, row := range dataRows {
		hasNumeric, hasDate := false, false
		for j, cell := range row {
			if models.IsEmptyCell(cell) {
				continue
			}
			if isNumericCell(cell) {
				hasNumeric = true
			}
			if j < len(dateColumns) && dateColumns[j] {
				hasDate = true
			} else if s, ok := cell.(string); ok && IsDateString(s) {
				hasDate = true
			}
		}
		if hasNumeric {
			numericRows++
		}
		if hasDate {
			dateRows++
		}
	}

	total := float64(len(dataRows))
	switch {
	case float64(numericRows)/total >= params.NumericRatioMin:
		return models.ShapeNumeric
	case float64(dateRows)/total >= params.DateRatioMin:
		return models.ShapeDate
	}
	return models.ShapeText
}

// isDateHeader reports whether a header cell contains a date keyword.
// Both Turkish and default lowercasing are checked so that "TARİH" and
// "TARIH" both match.
func isDateHeader(header any) bool {
	s, ok := header.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	s = norm.NFC.String(s)
	candidates := []string{
		strings.ToLower(s),
		cases.Lower(language.Turkish).String(s),
	}
	for _, c := range candidates {
		for _, kw := range dateKeywords {
			if strings.Contains(c, kw) {
				return true
			}
		}
	}
	return false
}
