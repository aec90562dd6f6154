package project

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/dataal-go/internal/repository"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
	"github.com/ukaji3/dataal-go/pkg/dataal/output"
	"github.com/ukaji3/dataal-go/pkg/dataal/parser"
)

// Service handles project and category operations.
type Service struct {
	repo    Repository
	imports ImportLog
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new project service. imports and logger may be nil.
func NewService(repo Repository, imports ImportLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		repo:    repo,
		imports: imports,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create creates a new empty project.
func (s *Service) Create(ctx context.Context, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	ts := s.now()
	proj := &Project{
		Info: Info{
			ID:           uuid.NewString(),
			Name:         name,
			CreatedAt:    ts,
			LastModified: ts,
		},
		Data: NewCategories(),
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "id", proj.Info.ID, "name", proj.Info.Name)
	return proj, nil
}

// List returns project summaries.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	if proj.Data == nil {
		proj.Data = NewCategories()
	}
	return proj, nil
}

// Save stores the whole project and bumps its modification time.
func (s *Service) Save(ctx context.Context, proj *Project) error {
	if proj == nil || proj.Info.ID == "" {
		return ErrInvalidInput
	}
	proj.Info.LastModified = s.now()
	if err := s.repo.Update(ctx, proj); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	s.logger.Info("project deleted", "id", id)
	return nil
}

// AddCategory adds an empty category to a project.
func (s *Service) AddCategory(ctx context.Context, id, name string) (*Project, error) {
	if !parser.ValidCategoryName(name) {
		return nil, ErrInvalidInput
	}
	proj, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if proj.Data.Has(name) {
		return nil, ErrCategoryExists
	}

	proj.Data.Set(name, models.EmptyTableEnvelope())
	if err := s.Save(ctx, proj); err != nil {
		return nil, err
	}
	return proj, nil
}

// RemoveCategory removes a category from a project.
func (s *Service) RemoveCategory(ctx context.Context, id, name string) (*Project, error) {
	proj, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !proj.Data.Delete(name) {
		return nil, ErrCategoryNotFound
	}
	if err := s.Save(ctx, proj); err != nil {
		return nil, err
	}
	return proj, nil
}

// ListCategories returns the categories of a project in insertion order.
func (s *Service) ListCategories(ctx context.Context, id string) ([]CategoryInfo, error) {
	proj, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryInfo, 0, proj.Data.Len())
	for _, name := range proj.Data.Names() {
		if info, ok := proj.Category(name); ok {
			out = append(out, info)
		}
	}
	return out, nil
}

// GetCategory returns the envelope stored in a category.
func (s *Service) GetCategory(ctx context.Context, id, name string) (models.Envelope, error) {
	proj, err := s.Get(ctx, id)
	if err != nil {
		return models.Envelope{}, err
	}
	env, ok := proj.Data.Get(name)
	if !ok {
		return models.Envelope{}, ErrCategoryNotFound
	}
	return env, nil
}

// SetCategory replaces the envelope of an existing category.
func (s *Service) SetCategory(ctx context.Context, id, name string, env models.Envelope) (*Project, error) {
	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	proj, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !proj.Data.Has(name) {
		return nil, ErrCategoryNotFound
	}
	proj.Data.Set(name, env)
	if err := s.Save(ctx, proj); err != nil {
		return nil, err
	}
	return proj, nil
}

// ImportOptions describes where and how an envelope is imported.
type ImportOptions struct {
	// NewCategory creates the category; otherwise it must exist.
	NewCategory bool
	SourceName  string
	Checksum    string
	Kind        models.ShapeKind
}

// ImportEnvelope stores an imported envelope in a category and records the
// import.
func (s *Service) ImportEnvelope(ctx context.Context, id, category string, env models.Envelope, opts ImportOptions) (*Project, error) {
	if !parser.ValidCategoryName(category) {
		return nil, ErrInvalidInput
	}
	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	proj, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	exists := proj.Data.Has(category)
	switch {
	case opts.NewCategory && exists:
		return nil, ErrCategoryExists
	case !opts.NewCategory && !exists:
		return nil, ErrCategoryNotFound
	}

	proj.Data.Set(category, env)
	if err := s.Save(ctx, proj); err != nil {
		return nil, err
	}

	if s.imports != nil {
		rec := &ImportRecord{
			ProjectID:  id,
			Category:   category,
			SourceName: opts.SourceName,
			Kind:       opts.Kind,
			Checksum:   opts.Checksum,
			CreatedAt:  s.now(),
		}
		if err := s.imports.RecordImport(ctx, rec); err != nil {
			s.logger.Warn("failed to record import", "project", id, "category", category, "error", err)
		}
	}

	s.logger.Info("category imported",
		"project", id,
		"category", category,
		"type", env.Type,
		"items", len(env.XLabels),
		"source", opts.SourceName,
	)
	return proj, nil
}

// ListImports returns the import history of a project.
func (s *Service) ListImports(ctx context.Context, id string) ([]ImportRecord, error) {
	if s.imports == nil {
		return nil, nil
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.imports.ListImports(ctx, id)
}

var whitespace = regexp.MustCompile(`\s+`)

// ExportFileName returns the export file name for a project name.
func ExportFileName(name string) string {
	return "data_" + whitespace.ReplaceAllString(name, "_") + ".json"
}

// Export renders the data map of a project as indented JSON.
func (s *Service) Export(ctx context.Context, id string) (string, []byte, error) {
	proj, err := s.Get(ctx, id)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	if err := output.Write(&buf, proj.Data, true); err != nil {
		return "", nil, fmt.Errorf("encoding project data: %w", err)
	}
	return ExportFileName(proj.Info.Name), buf.Bytes(), nil
}
