package database

import (
	"context"
	"database/sql"
	"errors"

	"notes-labels/models"
)

// ==================== NOTE <-> LABEL OPERATIONS ====================

// NoteLabelRepository manages rows of the notes_labels junction table.
// It holds no entity state; every call names the note and label by id.
type NoteLabelRepository struct {
	db *DB
}

func NewNoteLabelRepository(db *DB) *NoteLabelRepository {
	return &NoteLabelRepository{db: db}
}

// AddLabel attaches a label to a note. Attaching twice is a no-op.
// A missing note or label fails the foreign key and comes back as a
// StoreError (see IsConstraintViolation).
func (r *NoteLabelRepository) AddLabel(ctx context.Context, noteID, labelID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notes_labels (note_id, label_id)
		VALUES (?, ?)
		ON CONFLICT(note_id, label_id) DO NOTHING
	`, noteID, labelID)
	return storeError("add label to note", err)
}

// RemoveLabel detaches a label from a note. Nothing to remove is not an error.
func (r *NoteLabelRepository) RemoveLabel(ctx context.Context, noteID, labelID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM notes_labels
		WHERE note_id = ? AND label_id = ?
	`, noteID, labelID)
	return storeError("remove label from note", err)
}

// ListLabels returns the labels attached to a note.
func (r *NoteLabelRepository) ListLabels(ctx context.Context, noteID int64) ([]models.Label, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, l.name
		FROM labels l
		INNER JOIN notes_labels nl ON nl.label_id = l.id
		WHERE nl.note_id = ?
	`, noteID)
	if err != nil {
		return nil, storeError("list note labels", err)
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

	return labels, storeError("list note labels", rows.Err())
}

// GetLabel returns the label only if it is attached to the note.
func (r *NoteLabelRepository) GetLabel(ctx context.Context, noteID, labelID int64) (*models.Label, error) {
	var label models.Label
	err := r.db.QueryRowContext(ctx, `
		SELECT l.id, l.name
		FROM labels l
		INNER JOIN notes_labels nl ON nl.label_id = l.id
		WHERE nl.note_id = ? AND nl.label_id = ?
	`, noteID, labelID).Scan(&label.ID, &label.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeError("get note label", err)
	}

	return &label, nil
}

// ListNotes returns the notes carrying a label.
func (r *NoteLabelRepository) ListNotes(ctx context.Context, labelID int64) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT n.id, n.title, n.body, n.created_at, n.updated_at
		FROM notes n
		INNER JOIN notes_labels nl ON nl.note_id = n.id
		WHERE nl.label_id = ?
	`, labelID)
	if err != nil {
		return nil, storeError("list label notes", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := scanNote(rows, &note); err != nil {
			return nil, storeError("scan note", err)
		}
		notes = append(notes, note)
	}

	return notes, storeError("list label notes", rows.Err())
}
