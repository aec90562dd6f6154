package models

import (
	"fmt"
	"strings"
)

// ShapeKind is the inferred semantic category of a grid.
type ShapeKind string

const (
	// ShapeList is a one-dimensional list: a single row or a single column.
	ShapeList ShapeKind = "list"
	// ShapeTable is a two-dimensional table with a header row and a
	// row-header column.
	ShapeTable ShapeKind = "table"
	// ShapeNumeric is a table whose data rows are mostly numeric.
	ShapeNumeric ShapeKind = "numeric"
	// ShapeText is a table with no dominant numeric or date content.
	ShapeText ShapeKind = "text"
	// ShapeDate is a table whose data rows mostly carry dates.
	ShapeDate ShapeKind = "date"
	// ShapeUnknown is used for empty or degenerate grids.
	ShapeUnknown ShapeKind = "unknown"
)

// ShapeKinds lists every kind in display order.
var ShapeKinds = []ShapeKind{ShapeList, ShapeTable, ShapeNumeric, ShapeText, ShapeDate, ShapeUnknown}

// IsTableFamily reports whether the kind is persisted as a "tablo" envelope.
func (k ShapeKind) IsTableFamily() bool {
	switch k {
	case ShapeTable, ShapeNumeric, ShapeText, ShapeDate:
		return true
	}
	return false
}

// String returns the kind name.
func (k ShapeKind) String() string {
	return string(k)
}

// ParseShapeKind parses a kind name case-insensitively.
func ParseShapeKind(s string) (ShapeKind, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, k := range ShapeKinds {
		if string(k) == want {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid shape kind: %q", s)
}
