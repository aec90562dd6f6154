package parser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// delimiters are the separators considered when sniffing a csv file.
var delimiters = []rune{',', ';', '\t'}

// DecodeCSV reads delimited text and returns its records as a grid.
// Numeric fields become numbers; all others stay strings.
func DecodeCSV(data []byte) (models.Grid, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode text: %w", err)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = sniffDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, 0, len(records))
	for _, record := range records {
		row := make([]any, len(record))
		for i, field := range record {
			row[i] = parseValue(field)
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// decodeText converts data to UTF-8. A byte order mark selects UTF-8 or
// UTF-16 and is dropped. Without one, invalid UTF-8 is read as
// Windows-1254.
func decodeText(data []byte) (string, error) {
	var fallback transform.Transformer = encoding.Nop.NewDecoder()
	if !utf8.Valid(data) {
		fallback = charmap.Windows1254.NewDecoder()
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(fallback), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// sniffDelimiter picks the candidate delimiter occurring most often outside
// quotes on the first non-empty line. Defaults to ','.
func sniffDelimiter(text string) rune {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var line string
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			line = sc.Text()
			break
		}
	}

	best, bestCount := ',', 0
	for _, d := range delimiters {
		count, quoted := 0, false
		for _, c := range line {
			switch {
			case c == '"':
				quoted = !quoted
			case c == d && !quoted:
				count++
			}
		}
		if count > bestCount {
			best, bestCount = d, count
		}
	}
	return best
}
