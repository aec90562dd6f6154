package parser

import (
	"regexp"
	"strings"
	"time"
)

const monthWord = `[A-Za-zÇçĞğİıÖöŞşÜü]+`

// datePatterns are tried in order; the first match wins.
var datePatterns = []*regexp.Regexp{
	// day-month-year: 31/12/2024, 1-2-24, 01.02.2024
	regexp.MustCompile(`^\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}$`),
	// year-month-day: 2024-12-31, 2024/1/2
	regexp.MustCompile(`^\d{2,4}[/\-.]\d{1,2}[/\-.]\d{1,2}$`),
	// day month-name year: 5 Ocak 2024, 12 March 2023
	regexp.MustCompile(`^\d{1,2}\s+` + monthWord + `\s+\d{2,4}$`),
	// month-name day, year: March 12, 2023
	regexp.MustCompile(`^` + monthWord + `\s+\d{1,2},?\s+\d{2,4}$`),
}

// dateLayouts is the generic parse fallback.
var dateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
	"Jan 2 2006",
	"January 2 2006",
	"Mon Jan 2 2006",
	"2 Jan 2006 15:04",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
}

// IsDateString reports whether s looks like a date. It only classifies;
// nothing is parsed into a time value by callers.
func IsDateString(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}
	for _, re := range datePatterns {
		if re.MatchString(t) {
			return true
		}
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, t); err == nil {
			return true
		}
	}
	return false
}
