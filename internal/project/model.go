package project

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"github.com/ukaji3/dataal-go/pkg/dataal/parser"
)

// Info identifies a project.
type Info struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

// Project is a named collection of data categories, each holding one
// envelope. It is stored and loaded as a whole.
type Project struct {
	Info Info        `json:"info"`
	Data *Categories `json:"data"`
}

// Summary is a lightweight representation for listing.
type Summary struct {
	Info
	CategoryCount int `json:"categoryCount"`
}

// CategoryInfo describes one category of a project.
type CategoryInfo struct {
	Name        string              `json:"name"`
	DisplayName string              `json:"displayName"`
	Type        models.EnvelopeType `json:"type"`
	Items       int                 `json:"items"`
}

// ImportRecord is an audit entry for an import into a category.
type ImportRecord struct {
	ID         int64            `json:"id"`
	ProjectID  string           `json:"projectId"`
	Category   string           `json:"category"`
	SourceName string           `json:"sourceName"`
	Kind       models.ShapeKind `json:"kind"`
	Checksum   string           `json:"checksum"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// Categories maps category names to envelopes in insertion order.
type Categories struct {
	m *models.OrderedMap
}

// NewCategories returns an empty category set.
func NewCategories() *Categories {
	return &Categories{m: models.NewOrderedMap()}
}

func (c *Categories) init() {
	if c.m == nil {
		c.m = models.NewOrderedMap()
	}
}

// Names returns the category names in insertion order.
func (c *Categories) Names() []string {
	if c == nil {
		return nil
	}
	return c.m.Keys()
}

// Len returns the number of categories.
func (c *Categories) Len() int {
	if c == nil {
		return 0
	}
	return c.m.Len()
}

// Has reports whether the category exists.
func (c *Categories) Has(name string) bool {
	return c != nil && c.m.Has(name)
}

// Get returns the envelope of a category.
func (c *Categories) Get(name string) (models.Envelope, bool) {
	if c == nil {
		return models.Envelope{}, false
	}
	v, ok := c.m.Get(name)
	if !ok {
		return models.Envelope{}, false
	}
	env, ok := v.(models.Envelope)
	return env, ok
}

// Set stores the envelope of a category, keeping its position if it exists.
func (c *Categories) Set(name string, env models.Envelope) {
	c.init()
	c.m.Set(name, env)
}

// Delete removes a category.
func (c *Categories) Delete(name string) bool {
	if c == nil {
		return false
	}
	return c.m.Delete(name)
}

// MarshalJSON encodes the categories as an object in insertion order.
func (c *Categories) MarshalJSON() ([]byte, error) {
	c.init()
	return c.m.MarshalJSON()
}

// UnmarshalJSON decodes an object of envelopes. Legacy bare arrays and row
// objects are accepted per category.
func (c *Categories) UnmarshalJSON(data []byte) error {
	var raw models.OrderedMap
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := NewCategories()
	for _, name := range raw.Keys() {
		v, _ := raw.Get(name)
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode category %q: %w", name, err)
		}
		env, err := parser.DecodeEnvelope(b)
		if err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		out.Set(name, env)
	}
	*c = *out
	return nil
}

// Category returns the summary of one category.
func (p *Project) Category(name string) (CategoryInfo, bool) {
	env, ok := p.Data.Get(name)
	if !ok {
		return CategoryInfo{}, false
	}
	items := len(env.XLabels)
	return CategoryInfo{
		Name:        name,
		DisplayName: parser.CategoryDisplayName(name),
		Type:        env.Type,
		Items:       items,
	}, true
}
