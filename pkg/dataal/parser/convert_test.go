package parser

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

func envelopeJSON(t *testing.T, env models.Envelope) string {
	t.Helper()
	b, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	return string(b)
}

func TestConvertGrid(t *testing.T) {
	tests := []struct {
		name     string
		input    models.Grid
		kind     models.ShapeKind
		expected string
	}{
		{
			name:     "empty",
			input:    models.Grid{},
			kind:     models.ShapeTable,
			expected: `{"type":"tablo","x_labels":[],"y_labels":[],"data":{}}`,
		},
		{
			name:     "single cell",
			input:    models.Grid{{"x"}},
			kind:     models.ShapeTable,
			expected: `{"type":"tablo","x_labels":[],"y_labels":[],"data":{}}`,
		},
		{
			name:     "vertical list",
			input:    models.Grid{{"Header"}, {"a"}, {"b"}, {"c"}},
			kind:     models.ShapeList,
			expected: `{"type":"liste","x_labels":["a","b","c"],"y_labels":["Header"],"data":{"Header":["a","b","c"]}}`,
		},
		{
			name:     "horizontal list with typed values",
			input:    models.Grid{{"Oranlar", "3,14", "", "x"}},
			kind:     models.ShapeList,
			expected: `{"type":"liste","x_labels":["3.14","","x"],"y_labels":["Oranlar"],"data":{"Oranlar":[3.14,null,"x"]}}`,
		},
		{
			name:     "list ignores table selection",
			input:    models.Grid{{nil}, {"a"}},
			kind:     models.ShapeTable,
			expected: `{"type":"liste","x_labels":["a"],"y_labels":["Liste"],"data":{"Liste":["a"]}}`,
		},
		{
			name: "numeric table",
			input: models.Grid{
				{"", "Col1", "Col2"},
				{"Row1", 1, 2},
				{"Row2", 3, 4},
			},
			kind:     models.ShapeNumeric,
			expected: `{"type":"tablo","x_labels":["Row1","Row2"],"y_labels":["Col1","Col2"],"data":{"Row1":{"Col1":1,"Col2":2},"Row2":{"Col1":3,"Col2":4}}}`,
		},
		{
			name: "placeholders",
			input: models.Grid{
				{"", "A", "  "},
				{nil, "x", "y"},
			},
			kind:     models.ShapeText,
			expected: `{"type":"tablo","x_labels":["Satır 1"],"y_labels":["A","Sütun 2"],"data":{"Satır 1":{"A":"x","Sütun 2":"y"}}}`,
		},
		{
			name: "list from table",
			input: models.Grid{
				{"", "Fiyat", "Adet"},
				{"a", "1,5", 2},
				{"b", 3, 4},
			},
			kind:     models.ShapeList,
			expected: `{"type":"liste","x_labels":["1.5","3"],"y_labels":["Fiyat"],"data":{"Fiyat":[1.5,3]}}`,
		},
		{
			name: "unknown falls back to table",
			input: models.Grid{
				{"", "c"},
				{"r", 1.0},
			},
			kind:     models.ShapeUnknown,
			expected: `{"type":"tablo","x_labels":["r"],"y_labels":["c"],"data":{"r":{"c":1}}}`,
		},
	}

	for _, tt := range tests {
		env := ConvertGrid(tt.input, tt.kind)
		if got := envelopeJSON(t, env); got != tt.expected {
			t.Errorf("%s: ConvertGrid() = %s, expected %s", tt.name, got, tt.expected)
		}
		if err := env.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", tt.name, err)
		}
	}
}

func TestConvertGridDuplicateKeys(t *testing.T) {
	grid := models.Grid{
		{"", "c", "c", "d"},
		{"r", 1.0, 2.0, 3.0},
		{"s", 4.0, 5.0, 6.0},
		{"r", 7.0, 8.0, 9.0},
	}
	env := ConvertGrid(grid, models.ShapeTable)

	if !reflect.DeepEqual(env.XLabels, []string{"r", "s"}) {
		t.Errorf("XLabels = %v, expected [r s]", env.XLabels)
	}
	if !reflect.DeepEqual(env.YLabels, []string{"c", "d"}) {
		t.Errorf("YLabels = %v, expected [c d]", env.YLabels)
	}
	row, ok := env.Row("r")
	if !ok {
		t.Fatalf("row r missing")
	}
	if v, _ := row.Get("c"); v != 8.0 {
		t.Errorf("r.c = %v, expected 8", v)
	}
	if err := env.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConvertGridTableInvariants(t *testing.T) {
	grid := models.Grid{
		{"", "a", "b", "c"},
		{"r1", 1.0, nil, "x"},
		{"r2", "2,5", 3.0, ""},
	}
	env := ConvertGrid(grid, models.ShapeTable)

	if len(env.XLabels) != len(grid)-1 {
		t.Errorf("len(XLabels) = %d, expected %d", len(env.XLabels), len(grid)-1)
	}
	for _, r := range env.XLabels {
		row, ok := env.Row(r)
		if !ok {
			t.Fatalf("row %q missing", r)
		}
		if !reflect.DeepEqual(row.Keys(), env.YLabels) {
			t.Errorf("row %q keys = %v, expected %v", r, row.Keys(), env.YLabels)
		}
	}
}

func TestConvert(t *testing.T) {
	if got := envelopeJSON(t, Convert(nil, models.ShapeTable)); got != `{"type":"tablo","x_labels":[],"y_labels":[],"data":{}}` {
		t.Errorf("Convert(nil) = %s", got)
	}

	grid := models.Grid{{"Header"}, {"a"}}
	p := mustPreview(t, grid, models.ShapeList)
	env := Convert(p, models.ShapeList)
	if env.Type != models.EnvelopeList {
		t.Errorf("Type = %v, expected %v", env.Type, models.EnvelopeList)
	}
}
