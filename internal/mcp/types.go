package mcp

import (
	"github.com/ukaji3/dataal-go/internal/project"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"github.com/ukaji3/dataal-go/pkg/dataal/parser"
)

type PreviewFileParams struct {
	Path string `json:"path" jsonschema:"path of the xlsx, xls or csv file"`
	Type string `json:"type,omitempty" jsonschema:"shape override: list, table, numeric, text, date or unknown"`
}

type ConvertFileParams struct {
	Path string `json:"path" jsonschema:"path of the xlsx, xls or csv file"`
	Type string `json:"type,omitempty" jsonschema:"shape override: list, table, numeric, text, date or unknown"`
}

type ImportFileParams struct {
	ProjectID   string `json:"project_id" jsonschema:"target project ID"`
	Category    string `json:"category" jsonschema:"target category name"`
	Path        string `json:"path" jsonschema:"path of the xlsx, xls or csv file"`
	Type        string `json:"type,omitempty" jsonschema:"shape override: list, table, numeric, text, date or unknown"`
	NewCategory bool   `json:"new_category,omitempty" jsonschema:"create the category instead of replacing an existing one"`
}

type CreateProjectParams struct {
	Name string `json:"name" jsonschema:"project display name"`
}

type ListProjectsParams struct{}

type ListCategoriesParams struct {
	ProjectID string `json:"project_id" jsonschema:"project ID"`
}

type GetCategoryParams struct {
	ProjectID string `json:"project_id" jsonschema:"project ID"`
	Category  string `json:"category" jsonschema:"category name"`
}

// PreviewResponse is the preview of a file together with its detected
// format.
type PreviewResponse struct {
	Name        string               `json:"name"`
	Format      parser.Format        `json:"format,omitempty"`
	Type        models.ShapeKind     `json:"type"`
	Headers     []string             `json:"headers"`
	RowHeaders  []string             `json:"row_headers,omitempty"`
	PreviewRows []*models.OrderedMap `json:"preview_rows"`
	DataRows    int                  `json:"data_rows"`
}

type ConvertResponse struct {
	Name     string           `json:"name"`
	Format   parser.Format    `json:"format,omitempty"`
	Checksum string           `json:"checksum"`
	Type     models.ShapeKind `json:"type"`
	Envelope models.Envelope  `json:"envelope"`
}

type ImportResponse struct {
	ProjectID string               `json:"project_id"`
	Category  project.CategoryInfo `json:"category"`
	Checksum  string               `json:"checksum"`
}

type ProjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
