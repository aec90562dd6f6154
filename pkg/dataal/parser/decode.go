// Package parser provides spreadsheet decoding and shape inference.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/richardlehane/mscfb"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

// Format is a supported spreadsheet file format.
type Format string

const (
	FormatUnknown Format = ""
	FormatXLSX    Format = "xlsx"
	FormatXLS     Format = "xls"
	FormatCSV     Format = "csv"
)

var (
	// ErrUnsupportedFormat is returned when data is not xlsx, xls or csv.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEncryptedWorkbook is returned for password-protected workbooks.
	ErrEncryptedWorkbook = errors.New("workbook is encrypted")
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// FormatFromName returns the format implied by a file name's extension.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	case ".csv":
		return FormatCSV
	}
	return FormatUnknown
}

// DetectFormat determines the format of data. Binary signatures take
// precedence over the extension of name; text without a known extension
// is read as csv.
func DetectFormat(name string, data []byte) (Format, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX, nil
	case bytes.HasPrefix(data, oleMagic):
		return sniffCompound(data)
	}
	if f := FormatFromName(name); f != FormatUnknown {
		return f, nil
	}
	if looksLikeText(data) {
		return FormatCSV, nil
	}
	return FormatUnknown, ErrUnsupportedFormat
}

// sniffCompound inspects the streams of an OLE compound file.
func sniffCompound(data []byte) (Format, error) {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return FormatXLS, fmt.Errorf("failed to read compound file: %w", err)
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "Workbook", "Book":
			return FormatXLS, nil
		case "EncryptedPackage":
			return FormatXLSX, ErrEncryptedWorkbook
		}
	}
	return FormatUnknown, ErrUnsupportedFormat
}

// looksLikeText reports whether data is plausibly a text file. Data with a
// UTF-16 byte order mark counts as text.
func looksLikeText(data []byte) bool {
	if bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || bytes.HasPrefix(data, []byte{0xFE, 0xFF}) {
		return true
	}
	sample := data[:min(len(data), 8192)]
	if bytes.IndexByte(sample, 0) >= 0 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}
	// Legacy single-byte encodings: reject control bytes other than
	// whitespace.
	for _, b := range sample {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			return false
		}
	}
	return true
}

// DecodeBytes decodes data in the given format and returns its first sheet.
func DecodeBytes(format Format, data []byte) (models.Grid, error) {
	switch format {
	case FormatXLSX:
		return DecodeXLSX(bytes.NewReader(data))
	case FormatXLS:
		return DecodeXLS(bytes.NewReader(data))
	case FormatCSV:
		return DecodeCSV(data)
	}
	return nil, ErrUnsupportedFormat
}
