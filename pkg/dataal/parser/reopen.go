package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

// ErrInvalidEnvelope is returned for JSON documents that are neither an
// envelope nor one of the legacy list or table layouts.
var ErrInvalidEnvelope = errors.New("invalid data document")

// EnvelopeGrid rebuilds a grid from a stored envelope so it can be
// previewed and converted again.
func EnvelopeGrid(env models.Envelope) models.Grid {
	switch env.Type {
	case models.EnvelopeList:
		header := ListPlaceholder
		if len(env.YLabels) > 0 {
			header = env.YLabels[0]
		}
		grid := models.Grid{{header}}
		for _, v := range env.ListValues() {
			grid = append(grid, []any{v})
		}
		return grid
	case models.EnvelopeTable:
		if len(env.XLabels) == 0 && len(env.YLabels) == 0 {
			return models.Grid{}
		}
		header := make([]any, 0, len(env.YLabels)+1)
		header = append(header, "")
		for _, c := range env.YLabels {
			header = append(header, c)
		}
		grid := models.Grid{header}
		for _, r := range env.XLabels {
			row := make([]any, 0, len(env.YLabels)+1)
			row = append(row, r)
			values, _ := env.Row(r)
			for _, c := range env.YLabels {
				v, _ := values.Get(c)
				row = append(row, v)
			}
			grid = append(grid, row)
		}
		return grid
	}
	return models.Grid{}
}

// ReopenPreview builds the preview of a stored envelope.
func ReopenPreview(env models.Envelope) (*models.PreviewData, error) {
	grid := EnvelopeGrid(env)
	if env.Type == models.EnvelopeList && len(grid) == 1 {
		return &models.PreviewData{
			Raw:         grid,
			Type:        models.ShapeList,
			Headers:     []string{Stringify(grid[0][0])},
			PreviewRows: []*models.OrderedMap{},
		}, nil
	}
	// A stored table stays a table even when it has a single column.
	if env.Type == models.EnvelopeTable && len(grid) > 0 {
		return tablePreview(grid, models.ShapeTable), nil
	}
	kind := models.ShapeTable
	if env.Type == models.EnvelopeList {
		kind = models.ShapeList
	}
	return BuildPreview(grid, kind)
}

// DecodeEnvelope parses a stored data document.
//
// Besides envelopes it accepts a bare JSON array, read as a list, and an
// object of row objects, read as a table.
func DecodeEnvelope(data []byte) (models.Envelope, error) {
	v, err := models.DecodeOrderedJSON(data)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}

	var env models.Envelope
	switch doc := v.(type) {
	case []any:
		env = legacyList(ListPlaceholder, doc)
	case *models.OrderedMap:
		if doc.Has("type") && doc.Has("data") {
			env, err = envelopeFromMap(doc)
			if err != nil {
				return models.Envelope{}, err
			}
		} else {
			env, err = legacyTable(doc)
			if err != nil {
				return models.Envelope{}, err
			}
		}
	default:
		return models.Envelope{}, fmt.Errorf("%w: unexpected %T", ErrInvalidEnvelope, v)
	}

	if err := env.Validate(); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	return env, nil
}

func envelopeFromMap(doc *models.OrderedMap) (models.Envelope, error) {
	t, _ := doc.Get("type")
	typ, _ := t.(string)
	data, _ := doc.Get("data")
	xLabels := stringList(doc, "x_labels")
	yLabels := stringList(doc, "y_labels")

	switch models.EnvelopeType(typ) {
	case models.EnvelopeList:
		header := ListPlaceholder
		if len(yLabels) > 0 {
			header = yLabels[0]
		}
		switch d := data.(type) {
		case []any:
			return legacyList(header, d), nil
		case *models.OrderedMap:
			if len(yLabels) == 0 && d.Len() == 1 {
				header = d.Keys()[0]
			}
			v, _ := d.Get(header)
			values, ok := v.([]any)
			if !ok {
				return models.Envelope{}, fmt.Errorf("%w: list data for %q is not an array", ErrInvalidEnvelope, header)
			}
			env := legacyList(header, values)
			if xLabels != nil {
				env.XLabels = xLabels
			}
			return env, nil
		}
		return models.Envelope{}, fmt.Errorf("%w: list data is %T", ErrInvalidEnvelope, data)
	case models.EnvelopeTable:
		d, ok := data.(*models.OrderedMap)
		if !ok {
			return models.Envelope{}, fmt.Errorf("%w: table data is not an object", ErrInvalidEnvelope)
		}
		env, err := legacyTable(d)
		if err != nil {
			return models.Envelope{}, err
		}
		if xLabels != nil {
			env.XLabels = xLabels
		}
		if yLabels != nil {
			env.YLabels = yLabels
		}
		return env, nil
	}
	return models.Envelope{}, fmt.Errorf("%w: unknown type %q", ErrInvalidEnvelope, typ)
}

func legacyList(header string, values []any) models.Envelope {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = Stringify(v)
	}
	data := models.NewOrderedMap()
	data.Set(header, values)
	return models.Envelope{
		Type:    models.EnvelopeList,
		XLabels: labels,
		YLabels: []string{header},
		Data:    data,
	}
}

// legacyTable reads an object of row objects. Column keys are collected in
// first-seen order.
func legacyTable(doc *models.OrderedMap) (models.Envelope, error) {
	var cols []string
	seen := make(map[string]bool)
	for _, r := range doc.Keys() {
		v, _ := doc.Get(r)
		row, ok := v.(*models.OrderedMap)
		if !ok {
			return models.Envelope{}, fmt.Errorf("%w: row %q is not an object", ErrInvalidEnvelope, r)
		}
		for _, c := range row.Keys() {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
	}
	if cols == nil {
		cols = []string{}
	}
	return models.Envelope{
		Type:    models.EnvelopeTable,
		XLabels: doc.Keys(),
		YLabels: cols,
		Data:    doc,
	}, nil
}

func stringList(doc *models.OrderedMap, key string) []string {
	v, ok := doc.Get(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = Stringify(item)
	}
	return out
}
