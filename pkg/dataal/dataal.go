package dataal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"github.com/ukaji3/dataal-go/pkg/dataal/parser"
)

// Decoded is the first sheet of a source together with what was learned
// while reading it.
type Decoded struct {
	// Name is the base name of the source.
	Name string
	// Format is the detected file format; empty for workbook sources.
	Format parser.Format
	// Grid is the raw, not yet normalized, first sheet.
	Grid models.Grid
	// Checksum is the xxhash64 of the source bytes in hex. For workbook
	// sources it is computed over the JSON encoding of the grid.
	Checksum string
}

// Result is the outcome of an import: the preview shown to the user and the
// envelope to persist.
type Result struct {
	Name     string
	Format   parser.Format
	Checksum string
	Kind     models.ShapeKind
	Preview  *models.PreviewData
	Envelope models.Envelope
}

// Decode resolves src to the first sheet of its workbook.
func Decode(src Source) (*Decoded, error) {
	switch src.kind {
	case sourceFile:
		data, err := os.ReadFile(src.name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, src.name)
			}
			return nil, err
		}
		return decodeBytes(src.Name(), data)
	case sourceBytes:
		if src.data == nil {
			return nil, ErrInvalidFormat
		}
		return decodeBytes(src.Name(), src.data)
	case sourceWorkbook:
		if src.workbook == nil {
			return nil, ErrInvalidFormat
		}
		sheet, ok := src.workbook.FirstSheet()
		if !ok {
			return nil, ErrInvalidFormat
		}
		return withGridChecksum(&Decoded{Name: src.Name(), Grid: sheet.Rows})
	case sourceExcelize:
		if src.file == nil {
			return nil, ErrInvalidFormat
		}
		if len(src.file.GetSheetList()) == 0 {
			return nil, ErrInvalidFormat
		}
		grid, err := parser.ExtractGrid(src.file)
		if err != nil {
			return nil, NewDecodeError(parser.FormatXLSX, src.Name(), err)
		}
		return withGridChecksum(&Decoded{Name: src.Name(), Format: parser.FormatXLSX, Grid: grid})
	}
	return nil, ErrInvalidFormat
}

func decodeBytes(name string, data []byte) (*Decoded, error) {
	format, err := parser.DetectFormat(name, data)
	if err != nil {
		if errors.Is(err, parser.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
		}
		return nil, NewDecodeError(format, name, err)
	}

	grid, err := parser.DecodeBytes(format, data)
	if err != nil {
		return nil, NewDecodeError(format, name, err)
	}

	return &Decoded{
		Name:     name,
		Format:   format,
		Grid:     grid,
		Checksum: checksum(data),
	}, nil
}

func withGridChecksum(d *Decoded) (*Decoded, error) {
	b, err := json.Marshal(d.Grid)
	if err != nil {
		return nil, fmt.Errorf("failed to encode grid: %w", err)
	}
	d.Checksum = checksum(b)
	return d, nil
}

func checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Prepare normalizes a raw grid according to opts.
func Prepare(grid models.Grid, opts Options) models.Grid {
	grid = parser.Normalize(grid)
	if opts.DropEmptyColumns {
		grid = parser.DropEmptyColumns(grid)
	}
	return grid
}

// Preview decodes src and builds the preview of its first sheet.
func Preview(src Source, opts Options) (*models.PreviewData, error) {
	d, err := Decode(src)
	if err != nil {
		return nil, err
	}
	grid := Prepare(d.Grid, opts)
	return parser.BuildPreview(grid, opts.ResolveKind(grid))
}

// Convert turns a preview into the envelope for kind.
func Convert(preview *models.PreviewData, kind models.ShapeKind) models.Envelope {
	return parser.Convert(preview, kind)
}

// Import decodes src, previews it and converts it in one step.
func Import(src Source, opts Options) (*Result, error) {
	d, err := Decode(src)
	if err != nil {
		return nil, err
	}

	grid := Prepare(d.Grid, opts)
	kind := opts.ResolveKind(grid)
	preview, err := parser.BuildPreview(grid, kind)
	if err != nil {
		return nil, err
	}

	return &Result{
		Name:     d.Name,
		Format:   d.Format,
		Checksum: d.Checksum,
		Kind:     preview.Type,
		Preview:  preview,
		Envelope: parser.Convert(preview, kind),
	}, nil
}
