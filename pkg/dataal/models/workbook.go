package models

// Sheet is one decoded sheet of a workbook.
type Sheet struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows holds the cell values, header row first.
	Rows Grid `json:"rows"`
}

// Workbook is an already-decoded workbook with its sheets in file order.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets in workbook order. Only the first is used.
	Sheets []Sheet `json:"sheets"`
}

// FirstSheet returns the first sheet, or false when the workbook has none.
func (w *Workbook) FirstSheet() (Sheet, bool) {
	if w == nil || len(w.Sheets) == 0 {
		return Sheet{}, false
	}
	return w.Sheets[0], true
}
