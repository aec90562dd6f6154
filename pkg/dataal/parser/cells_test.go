package parser

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")
	f.SetCellValue(sheetName, "B3", "007")
	f.SetCellValue(sheetName, "A4", true)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ExtractCells(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(grid) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(grid))
	}
	if grid[0][0] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", grid[0][0])
	}
	if grid[1][0] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", grid[1][0], grid[1][0])
	}
	if grid[1][1] != 200.5 {
		t.Errorf("Expected 200.5, got %v", grid[1][1])
	}
	// Text cells stay text even when they look numeric.
	if grid[2][1] != "007" {
		t.Errorf("Expected '007', got %v (type: %T)", grid[2][1], grid[2][1])
	}
	if grid[3][0] != true {
		t.Errorf("Expected true, got %v (type: %T)", grid[3][0], grid[3][0])
	}
}

func TestDecodeXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Header")
	f.SetCellValue("Sheet1", "A2", "a")
	f.SetCellValue("Sheet1", "A4", "b")
	if _, err := f.NewSheet("Second"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Second", "A1", "ignored")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	grid, err := DecodeXLSX(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeXLSX failed: %v", err)
	}
	grid = Normalize(grid)

	want := []any{"Header", "a", "b"}
	if len(grid) != len(want) {
		t.Fatalf("Expected %d rows, got %d: %v", len(want), len(grid), grid)
	}
	for i, w := range want {
		if grid[i][0] != w {
			t.Errorf("grid[%d][0] = %v, expected %v", i, grid[i][0], w)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", nil},
		{"NaN", "NaN"},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
