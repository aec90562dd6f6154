package models

// PreviewRowLimit is the maximum number of sample rows in a preview.
const PreviewRowLimit = 5

// RowHeaderKey is the key of the row label in table preview rows.
const RowHeaderKey = "Satır/Sütun"

// PreviewData is a bounded rendering of a grid's inferred structure, shown
// to the user before the data is converted and stored.
type PreviewData struct {
	// Raw is the full normalized grid, kept for the final conversion.
	Raw Grid `json:"raw"`
	// Type is the shape the preview was laid out for.
	Type ShapeKind `json:"type"`
	// Headers holds the column labels. A list preview has exactly one.
	Headers []string `json:"headers"`
	// RowHeaders holds the row labels of a table preview.
	RowHeaders []string `json:"rowHeaders,omitempty"`
	// PreviewRows holds at most PreviewRowLimit sample rows.
	PreviewRows []*OrderedMap `json:"previewRows"`
}

// DataRowCount returns the number of data rows of the underlying grid for
// the preview's layout.
func (p *PreviewData) DataRowCount() int {
	if p == nil || len(p.Raw) == 0 {
		return 0
	}
	if p.Type == ShapeList && len(p.Raw) == 1 {
		if len(p.Raw[0]) == 0 {
			return 0
		}
		return len(p.Raw[0]) - 1
	}
	return len(p.Raw) - 1
}
