package models

import "fmt"

// EnvelopeType is the persisted structure tag of an Envelope.
type EnvelopeType string

const (
	// EnvelopeList tags a one-dimensional list envelope.
	EnvelopeList EnvelopeType = "liste"
	// EnvelopeTable tags a row-key to column-key table envelope.
	EnvelopeTable EnvelopeType = "tablo"
)

// Envelope is the persisted document for one category.
//
// For a list, Data maps the single header in YLabels to a []any of typed
// values and XLabels holds the stringified values. For a table, Data maps
// each row key in XLabels to an *OrderedMap of column key to typed value.
type Envelope struct {
	// Type is "liste" or "tablo".
	Type EnvelopeType `json:"type"`
	// XLabels holds list values or table row keys.
	XLabels []string `json:"x_labels"`
	// YLabels holds the list header or table column keys.
	YLabels []string `json:"y_labels"`
	// Data holds the typed values.
	Data *OrderedMap `json:"data"`
}

// EmptyTableEnvelope returns the well-formed empty document used for
// degenerate input.
func EmptyTableEnvelope() Envelope {
	return Envelope{
		Type:    EnvelopeTable,
		XLabels: []string{},
		YLabels: []string{},
		Data:    NewOrderedMap(),
	}
}

// IsEmpty reports whether the envelope carries no data.
func (e Envelope) IsEmpty() bool {
	return e.Data.Len() == 0
}

// ListValues returns the values of a list envelope.
func (e Envelope) ListValues() []any {
	if e.Type != EnvelopeList || len(e.YLabels) == 0 {
		return nil
	}
	v, _ := e.Data.Get(e.YLabels[0])
	values, _ := v.([]any)
	return values
}

// Row returns the column map of a table row.
func (e Envelope) Row(key string) (*OrderedMap, bool) {
	if e.Type != EnvelopeTable {
		return nil, false
	}
	v, ok := e.Data.Get(key)
	if !ok {
		return nil, false
	}
	row, ok := v.(*OrderedMap)
	return row, ok
}

// Validate checks the structural invariants of the envelope.
func (e Envelope) Validate() error {
	switch e.Type {
	case EnvelopeList:
		if len(e.YLabels) != 1 {
			return fmt.Errorf("list envelope needs exactly one y label, got %d", len(e.YLabels))
		}
		v, ok := e.Data.Get(e.YLabels[0])
		if !ok {
			return fmt.Errorf("list envelope has no data for %q", e.YLabels[0])
		}
		values, ok := v.([]any)
		if !ok {
			return fmt.Errorf("list envelope data for %q is %T, not an array", e.YLabels[0], v)
		}
		if len(values) != len(e.XLabels) {
			return fmt.Errorf("list envelope has %d values but %d x labels", len(values), len(e.XLabels))
		}
		if e.Data.Len() != 1 {
			return fmt.Errorf("list envelope data has %d keys", e.Data.Len())
		}
	case EnvelopeTable:
		cols := make(map[string]bool, len(e.YLabels))
		for _, c := range e.YLabels {
			if cols[c] {
				return fmt.Errorf("duplicate column key %q", c)
			}
			cols[c] = true
		}
		rows := make(map[string]bool, len(e.XLabels))
		for _, r := range e.XLabels {
			if rows[r] {
				return fmt.Errorf("duplicate row key %q", r)
			}
			rows[r] = true
			if !e.Data.Has(r) {
				return fmt.Errorf("row key %q has no data", r)
			}
		}
		for _, r := range e.Data.Keys() {
			if !rows[r] {
				return fmt.Errorf("row %q missing from x labels", r)
			}
			row, ok := e.Row(r)
			if !ok {
				return fmt.Errorf("row %q is not an object", r)
			}
			for _, c := range row.Keys() {
				if !cols[c] {
					return fmt.Errorf("column %q of row %q missing from y labels", c, r)
				}
			}
		}
	default:
		return fmt.Errorf("unknown envelope type %q", e.Type)
	}
	return nil
}
