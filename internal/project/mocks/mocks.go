package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ukaji3/dataal-go/internal/project"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Summary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ImportLog is a mock for project.ImportLog.
type ImportLog struct {
	mock.Mock
}

func (m *ImportLog) RecordImport(ctx context.Context, rec *project.ImportRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *ImportLog) ListImports(ctx context.Context, projectID string) ([]project.ImportRecord, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]project.ImportRecord); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
