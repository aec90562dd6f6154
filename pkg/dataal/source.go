package dataal

import (
	"path/filepath"

	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"github.com/xuri/excelize/v2"
)

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceBytes
	sourceFile
	sourceWorkbook
	sourceExcelize
)

// Source is the input of a preview or import: spreadsheet bytes, a file
// path, a decoded workbook or an open excelize file. The zero value is
// invalid.
type Source struct {
	kind     sourceKind
	name     string
	data     []byte
	workbook *models.Workbook
	file     *excelize.File
}

// FromBytes returns a source for raw file contents. name is used for
// format detection and error messages and may be empty.
func FromBytes(name string, data []byte) Source {
	return Source{kind: sourceBytes, name: name, data: data}
}

// FromFile returns a source reading the file at path.
func FromFile(path string) Source {
	return Source{kind: sourceFile, name: path}
}

// FromWorkbook returns a source for an already decoded workbook.
func FromWorkbook(wb *models.Workbook) Source {
	s := Source{kind: sourceWorkbook, workbook: wb}
	if wb != nil {
		s.name = wb.BookName
	}
	return s
}

// FromExcelize returns a source for an open excelize file. The caller keeps
// ownership of f.
func FromExcelize(f *excelize.File) Source {
	s := Source{kind: sourceExcelize, file: f}
	if f != nil {
		s.name = f.Path
	}
	return s
}

// Name returns the base name of the source, or "" when it has none.
func (s Source) Name() string {
	if s.name == "" {
		return ""
	}
	return filepath.Base(s.name)
}
