package project

import "context"

// Repository provides persistence for whole project documents.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]Summary, error)
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, id string) error
}

// ImportLog records the imports applied to project categories.
type ImportLog interface {
	RecordImport(ctx context.Context, rec *ImportRecord) error
	ListImports(ctx context.Context, projectID string) ([]ImportRecord, error)
}
