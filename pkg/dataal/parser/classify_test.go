package parser

import (
	"fmt"
	"testing"

	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

func TestListOrientation(t *testing.T) {
	tests := []struct {
		name     string
		input    models.Grid
		expected Orientation
	}{
		{"empty", models.Grid{}, NotList},
		{"single cell", models.Grid{{"x"}}, NotList},
		{"horizontal", models.Grid{{"Header", "a", "b"}}, Horizontal},
		{"vertical", models.Grid{{"Header"}, {"a"}, {"b"}}, Vertical},
		{"table", models.Grid{{"", "c"}, {"r", 1.0}}, NotList},
	}

	for _, tt := range tests {
		result := ListOrientation(tt.input)
		if result != tt.expected {
			t.Errorf("ListOrientation(%s) = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    models.Grid
		expected models.ShapeKind
	}{
		{
			name:     "empty",
			input:    models.Grid{},
			expected: models.ShapeUnknown,
		},
		{
			name:     "single cell",
			input:    models.Grid{{"only"}},
			expected: models.ShapeUnknown,
		},
		{
			name:     "horizontal list",
			input:    models.Grid{{"Header", "a", "b", "c"}},
			expected: models.ShapeList,
		},
		{
			name:     "vertical list",
			input:    models.Grid{{"Header"}, {"a"}, {"b"}, {"c"}},
			expected: models.ShapeList,
		},
		{
			name: "numeric table",
			input: models.Grid{
				{"", "Col1", "Col2"},
				{"Row1", 1.0, 2.0},
				{"Row2", 3.0, 4.0},
			},
			expected: models.ShapeNumeric,
		},
		{
			name: "numeric strings with comma decimals",
			input: models.Grid{
				{"Ad", "Fiyat"},
				{"a", "3,5"},
				{"b", "4,25"},
				{"c", "x"},
				{"d", "1"},
			},
			expected: models.ShapeNumeric,
		},
		{
			name: "date strings",
			input: models.Grid{
				{"Ad", "Değer"},
				{"a", "12/03/2024"},
				{"b", "2024-01-15"},
				{"c", "5 Ocak 2024"},
			},
			expected: models.ShapeDate,
		},
		{
			name: "date header keyword",
			input: models.Grid{
				{"Ad", "TARİH"},
				{"a", "dün"},
				{"b", "bugün"},
			},
			expected: models.ShapeDate,
		},
		{
			name: "text",
			input: models.Grid{
				{"Ad", "Şehir"},
				{"Ali", "Ankara"},
				{"Veli", "İzmir"},
			},
			expected: models.ShapeText,
		},
		{
			name: "below numeric threshold",
			input: models.Grid{
				{"Ad", "Değer"},
				{"a", 1.0},
				{"b", "x"},
				{"c", "y"},
			},
			expected: models.ShapeText,
		},
	}

	for _, tt := range tests {
		result := Classify(tt.input)
		if result != tt.expected {
			t.Errorf("Classify(%s) = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}

// ratioGrid returns a header row and ten data rows, the first n of which
// carry value in the second column.
func ratioGrid(n int, value string) models.Grid {
	grid := models.Grid{{"Ad", "Değer"}}
	for i := 0; i < 10; i++ {
		cell := "x"
		if i < n {
			cell = value
		}
		grid = append(grid, []any{fmt.Sprintf("r%d", i+1), cell})
	}
	return grid
}

func TestClassifyRatioBoundary(t *testing.T) {
	tests := []struct {
		name     string
		input    models.Grid
		expected models.ShapeKind
	}{
		{"numeric 7 of 10", ratioGrid(7, "1,5"), models.ShapeNumeric},
		{"numeric 6 of 10", ratioGrid(6, "1,5"), models.ShapeText},
		{"date 7 of 10", ratioGrid(7, "12/03/2024"), models.ShapeDate},
		{"date 6 of 10", ratioGrid(6, "12/03/2024"), models.ShapeText},
	}

	for _, tt := range tests {
		result := Classify(tt.input)
		if result != tt.expected {
			t.Errorf("Classify(%s) = %v, expected %v", tt.name, result, tt.expected)
		}
		for i := 0; i < 3; i++ {
			if again := Classify(tt.input); again != result {
				t.Errorf("Classify(%s) call %d = %v, expected %v", tt.name, i+2, again, result)
			}
		}
	}
}

func TestClassifyNeverInfersTable(t *testing.T) {
	grids := []models.Grid{
		{{"", "a", "b"}, {"r1", "x", "y"}, {"r2", "z", "w"}},
		{{"", "a"}, {"r1", 1.0}},
		{{"a", "b"}},
	}
	for _, g := range grids {
		if k := Classify(g); k == models.ShapeTable {
			t.Errorf("Classify(%v) = %v", g, k)
		}
	}
}

func TestClassifyWithParams(t *testing.T) {
	grid := models.Grid{
		{"Ad", "Değer"},
		{"a", 1.0},
		{"b", "x"},
	}
	params := DefaultClassifyParams()
	params.NumericRatioMin = 0.5
	if k := ClassifyWith(grid, params); k != models.ShapeNumeric {
		t.Errorf("ClassifyWith(ratio 0.5) = %v, expected %v", k, models.ShapeNumeric)
	}
}

func TestIsDateHeader(t *testing.T) {
	tests := []struct {
		input    any
		expected bool
	}{
		{"Tarih", true},
		{"TARİH", true},
		{"TARIH", true},
		{"Date of birth", true},
		{"Yıl", true},
		{"YIL", true},
		{"Fiyat", false},
		{"", false},
		{nil, false},
		{2024.0, false},
	}

	for _, tt := range tests {
		result := isDateHeader(tt.input)
		if result != tt.expected {
			t.Errorf("isDateHeader(%#v) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
