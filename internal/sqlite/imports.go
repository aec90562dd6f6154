package sqlite

import (
	"context"
	"fmt"

	"github.com/ukaji3/dataal-go/internal/project"
	"github.com/ukaji3/dataal-go/internal/repository"
	"github.com/ukaji3/dataal-go/pkg/dataal/models"
)

// ImportRepository implements project.ImportLog for SQLite
type ImportRepository struct {
	db *DB
}

// NewImportRepository creates a new ImportRepository
func NewImportRepository(db *DB) *ImportRepository {
	return &ImportRepository{db: db}
}

// RecordImport appends an import audit entry and sets rec.ID
func (r *ImportRepository) RecordImport(ctx context.Context, rec *project.ImportRecord) error {
	query := `
		INSERT INTO imports (project_id, category, source_name, kind, checksum, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		rec.ProjectID,
		rec.Category,
		rec.SourceName,
		string(rec.Kind),
		rec.Checksum,
		rec.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return repository.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get import id: %w", err)
	}
	rec.ID = id

	return nil
}

// ListImports returns the imports of a project, oldest first
func (r *ImportRepository) ListImports(ctx context.Context, projectID string) ([]project.ImportRecord, error) {
	query := `
		SELECT id, project_id, category, source_name, kind, checksum, created_at
		FROM imports
		WHERE project_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	defer rows.Close()

	records := []project.ImportRecord{}
	for rows.Next() {
		var rec project.ImportRecord
		var kind string
		err := rows.Scan(
			&rec.ID,
			&rec.ProjectID,
			&rec.Category,
			&rec.SourceName,
			&kind,
			&rec.Checksum,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan import: %w", err)
		}
		rec.Kind = models.ShapeKind(kind)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating import rows: %w", err)
	}

	return records, nil
}
