package dataal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"github.com/ukaji3/dataal-go/pkg/dataal/parser"
	"github.com/xuri/excelize/v2"
)

func newTestFile(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	sheet := "Sheet1"
	f.SetCellValue(sheet, "B1", "Col1")
	f.SetCellValue(sheet, "C1", "Col2")
	f.SetCellValue(sheet, "A2", "Row1")
	f.SetCellValue(sheet, "B2", 1)
	f.SetCellValue(sheet, "C2", 2)
	f.SetCellValue(sheet, "A3", "Row2")
	f.SetCellValue(sheet, "B3", 3)
	f.SetCellValue(sheet, "C3", 4)
	return f
}

func TestImportXLSXFile(t *testing.T) {
	f := newTestFile(t)
	path := filepath.Join(t.TempDir(), "fiyatlar.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	res, err := Import(FromFile(path), DefaultOptions())
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if res.Name != "fiyatlar.xlsx" {
		t.Errorf("Name = %q, expected fiyatlar.xlsx", res.Name)
	}
	if res.Format != parser.FormatXLSX {
		t.Errorf("Format = %q, expected xlsx", res.Format)
	}
	if res.Kind != models.ShapeNumeric {
		t.Errorf("Kind = %v, expected %v", res.Kind, models.ShapeNumeric)
	}
	if len(res.Checksum) != 16 {
		t.Errorf("Checksum = %q, expected 16 hex digits", res.Checksum)
	}
	if res.Envelope.Type != models.EnvelopeTable {
		t.Errorf("Envelope.Type = %v, expected tablo", res.Envelope.Type)
	}
	row, ok := res.Envelope.Row("Row2")
	if !ok {
		t.Fatalf("row Row2 missing")
	}
	if v, _ := row.Get("Col2"); v != int64(4) {
		t.Errorf("Row2.Col2 = %v (type: %T), expected 4", v, v)
	}
}

func TestPreviewExcelize(t *testing.T) {
	f := newTestFile(t)
	p, err := Preview(FromExcelize(f), Options{Kind: models.ShapeTable})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if p.Type != models.ShapeTable {
		t.Errorf("Type = %v, expected %v", p.Type, models.ShapeTable)
	}
	if len(p.PreviewRows) != 2 {
		t.Errorf("len(PreviewRows) = %d, expected 2", len(p.PreviewRows))
	}
}

func TestPreviewCSVBytes(t *testing.T) {
	data := []byte("Renkler\nkırmızı\n\nmavi\n")
	p, err := Preview(FromBytes("renkler.csv", data), DefaultOptions())
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if p.Type != models.ShapeList {
		t.Errorf("Type = %v, expected %v", p.Type, models.ShapeList)
	}
	if len(p.PreviewRows) != 2 {
		t.Errorf("len(PreviewRows) = %d, expected 2", len(p.PreviewRows))
	}

	env := Convert(p, p.Type)
	if got := env.XLabels; len(got) != 2 || got[0] != "kırmızı" || got[1] != "mavi" {
		t.Errorf("XLabels = %v, expected [kırmızı mavi]", got)
	}
}

func TestPreviewWorkbook(t *testing.T) {
	wb := &models.Workbook{
		BookName: "book",
		Sheets: []models.Sheet{
			{Name: "first", Rows: models.Grid{{"H", nil, "a", ""}, {nil, nil, "b", nil}}},
			{Name: "second", Rows: models.Grid{{"ignored"}}},
		},
	}

	p, err := Preview(FromWorkbook(wb), Options{DropEmptyColumns: true})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if p.Raw.Cols() != 2 {
		t.Errorf("Raw.Cols() = %d, expected 2", p.Raw.Cols())
	}
}

func TestDecodeEmptyCSVIsNotAnError(t *testing.T) {
	p, err := Preview(FromBytes("empty.csv", []byte{}), DefaultOptions())
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if p.Type != models.ShapeUnknown {
		t.Errorf("Type = %v, expected %v", p.Type, models.ShapeUnknown)
	}
	env := Convert(p, p.Type)
	if !env.IsEmpty() || env.Type != models.EnvelopeTable {
		t.Errorf("Convert(empty) = %+v, expected empty tablo", env)
	}
}

func TestDecodeErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.xlsx")

	tests := []struct {
		name string
		src  Source
		err  error
	}{
		{"zero source", Source{}, ErrInvalidFormat},
		{"nil bytes", FromBytes("a.csv", nil), ErrInvalidFormat},
		{"nil workbook", FromWorkbook(nil), ErrInvalidFormat},
		{"workbook without sheets", FromWorkbook(&models.Workbook{}), ErrInvalidFormat},
		{"nil excelize", FromExcelize(nil), ErrInvalidFormat},
		{"missing file", FromFile(missing), ErrFileNotFound},
		{"binary", FromBytes("blob", []byte{0, 1, 2}), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		_, err := Decode(tt.src)
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: Decode() error = %v, expected %v", tt.name, err, tt.err)
		}
	}
}

func TestDecodeCorruptXLSX(t *testing.T) {
	data := append([]byte("PK\x03\x04"), []byte("not really a zip")...)
	_, err := Decode(FromBytes("bad.xlsx", data))

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Decode() error = %v, expected *DecodeError", err)
	}
	if decodeErr.Format != parser.FormatXLSX || decodeErr.Name != "bad.xlsx" {
		t.Errorf("DecodeError = %+v", decodeErr)
	}
}

func TestChecksumStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	first, err := Decode(FromFile(path))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	second, err := Decode(FromBytes("a.csv", []byte("a,b\n1,2\n")))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if first.Checksum != second.Checksum {
		t.Errorf("checksums differ: %s vs %s", first.Checksum, second.Checksum)
	}
}
