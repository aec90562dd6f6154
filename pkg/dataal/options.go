// Package dataal infers the shape of spreadsheet data and converts it into
// list or table documents.
package dataal

import (
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"github.com/ukaji3/dataal-go/pkg/dataal/parser"
)

// Options configures preview and import behavior.
type Options struct {
	// Kind overrides the inferred shape. Empty means infer it.
	Kind models.ShapeKind
	// DropEmptyColumns removes columns without any value before the grid
	// is classified.
	DropEmptyColumns bool
	// Classify holds the ratios used for inference.
	// If nil, parser.DefaultClassifyParams is used.
	Classify *parser.ClassifyParams
}

// DefaultOptions returns default options: infer the shape, keep columns.
func DefaultOptions() Options {
	return Options{}
}

// ClassifyParams returns the classification parameters to use.
func (o Options) ClassifyParams() parser.ClassifyParams {
	if o.Classify != nil {
		return *o.Classify
	}
	return parser.DefaultClassifyParams()
}

// ResolveKind returns the override when set, or infers the kind of grid.
func (o Options) ResolveKind(grid models.Grid) models.ShapeKind {
	if o.Kind != "" {
		return o.Kind
	}
	return parser.ClassifyWith(grid, o.ClassifyParams())
}
