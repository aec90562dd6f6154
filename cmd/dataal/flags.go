package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/ukaji3/dataal-go/pkg/dataal"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

// kindFlag is a --type flag holding an optional shape override.
type kindFlag struct {
	kind models.ShapeKind
}

var _ pflag.Value = (*kindFlag)(nil)

func (f *kindFlag) String() string {
	return string(f.kind)
}

func (f *kindFlag) Set(s string) error {
	k, err := models.ParseShapeKind(s)
	if err != nil {
		return err
	}
	f.kind = k
	return nil
}

func (f *kindFlag) Type() string {
	return "kind"
}

func kindNames() string {
	names := make([]string, len(models.ShapeKinds))
	for i, k := range models.ShapeKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// conversionFlags are shared by the commands that read a spreadsheet.
type conversionFlags struct {
	kind             kindFlag
	dropEmptyColumns bool
}

func (c *conversionFlags) register(fs *pflag.FlagSet) {
	fs.Var(&c.kind, "type", "Shape override: "+kindNames())
	fs.BoolVar(&c.dropEmptyColumns, "drop-empty-columns", false, "Remove columns without any value before inference")
}

// options merges the flags into the configured defaults. The flag only
// turns column dropping on.
func (c *conversionFlags) options(base dataal.Options) dataal.Options {
	opts := base
	opts.Kind = c.kind.kind
	if c.dropEmptyColumns {
		opts.DropEmptyColumns = true
	}
	return opts
}
