package parser

import (
	"strings"
	"unicode/utf8"
)

// validExtensions are the accepted spreadsheet file extensions.
var validExtensions = []string{".xlsx", ".xls", ".csv"}

// FileRef describes a user-supplied file. Any of the name fields may be
// set; the first non-empty one is checked.
type FileRef struct {
	Name     string
	FileName string
	FilePath string
}

// displayName returns the name to validate.
func (f FileRef) displayName() string {
	for _, s := range []string{f.Name, f.FileName, f.FilePath} {
		if s != "" {
			return s
		}
	}
	return ""
}

// IsValidFileExtension reports whether the file has an accepted extension.
func IsValidFileExtension(f FileRef) bool {
	return HasValidExtension(f.displayName())
}

// HasValidExtension reports whether name ends with .xlsx, .xls or .csv,
// ignoring case.
func HasValidExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range validExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

var categoryDisplayNames = map[string]string{
	"yapiSiniflari":   "Yapı Sınıfları",
	"birimFiyatlar":   "Birim Fiyatlar",
	"binaYasGruplari": "Bina Yaş Grupları",
	"yapiTeknikleri":  "Yapı Teknikleri",
	"mevzuatlar":      "Mevzuatlar",
	"guncelBilgiler":  "Güncel Bilgiler",
}

// CategoryDisplayName returns a readable name for a category key.
// Known keys have fixed names; others are split at ASCII capitals, so
// "yeniKategori" becomes "Yeni Kategori".
func CategoryDisplayName(category string) string {
	if name, ok := categoryDisplayNames[category]; ok {
		return name
	}

	var b strings.Builder
	for i, r := range category {
		if i == 0 && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// ValidCategoryName reports whether name can be used as a category key.
func ValidCategoryName(name string) bool {
	return utf8.ValidString(name) && strings.TrimSpace(name) != ""
}
