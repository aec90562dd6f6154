package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ukaji3/dataal-go/internal/project"
	"github.com/ukaji3/dataal-go/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create stores a new project document
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	doc, err := json.Marshal(proj)
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	query := `
		INSERT INTO projects (id, name, document, created_at, last_modified)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		proj.Info.ID,
		proj.Info.Name,
		string(doc),
		proj.Info.CreatedAt,
		proj.Info.LastModified,
	)

	if isUniqueViolation(err) {
		return repository.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get loads a project document by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `
		SELECT document
		FROM projects
		WHERE id = ?
	`

	var doc string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&doc)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var proj project.Project
	if err := json.Unmarshal([]byte(doc), &proj); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", id, err)
	}

	return &proj, nil
}

// List returns all projects with summary information, most recently
// modified first
func (r *ProjectRepository) List(ctx context.Context) ([]project.Summary, error) {
	query := `
		SELECT
			id,
			name,
			created_at,
			last_modified,
			(SELECT COUNT(*) FROM json_each(document, '$.data')) AS category_count
		FROM projects
		ORDER BY last_modified DESC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	summaries := []project.Summary{}
	for rows.Next() {
		var summary project.Summary
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.CreatedAt,
			&summary.LastModified,
			&summary.CategoryCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return summaries, nil
}

// Update replaces a stored project document
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	doc, err := json.Marshal(proj)
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	query := `
		UPDATE projects
		SET name = ?, document = ?, last_modified = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		proj.Info.Name,
		string(doc),
		proj.Info.LastModified,
		proj.Info.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a project and its import history
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
