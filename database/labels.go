package database

import (
	"context"
	"database/sql"
	"errors"

	"notes-labels/models"
)

// ==================== LABEL OPERATIONS ====================

type LabelRepository struct {
	db *DB
}

func NewLabelRepository(db *DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// List returns every label. An empty table yields an empty slice.
func (r *LabelRepository) List(ctx context.Context) ([]models.Label, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM labels`)
	if err != nil {
		return nil, storeError("list labels", err)
	}
	defer rows.Close()

	labels := make([]models.Label, 0)
	for rows.Next() {
		var label models.Label
		if err := rows.Scan(&label.ID, &label.Name); err != nil {
			return nil, storeError("scan label", err)
		}
		labels = append(labels, label)
	}

	return labels, storeError("list labels", rows.Err())
}

// GetByID fetches a single label
func (r *LabelRepository) GetByID(ctx context.Context, id int64) (*models.Label, error) {
	var label models.Label
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM labels
		WHERE id = ?
	`, id).Scan(&label.ID, &label.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeError("get label", err)
	}

	return &label, nil
}

// Create inserts a label and returns the row as stored.
func (r *LabelRepository) Create(ctx context.Context, name string) (*models.Label, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO labels (name) VALUES (?)`, name)
	if err != nil {
		return nil, storeError("create label", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeError("create label", err)
	}

	return r.GetByID(ctx, id)
}

// Update renames the label and re-reads it. A missing id surfaces as
// ErrNotFound from the re-read.
func (r *LabelRepository) Update(ctx context.Context, label models.Label) (*models.Label, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE labels SET
			name = ?
		WHERE id = ?
	`, label.Name, label.ID)
	if err != nil {
		return nil, storeError("update label", err)
	}

	return r.GetByID(ctx, label.ID)
}

// Delete removes the label. Deleting an unknown id is not an error.
func (r *LabelRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM labels WHERE id = ?", id)
	return storeError("delete label", err)
}
