package database

import (
	"context"
	"database/sql"
	"errors"

	"notes-labels/models"
)

// ==================== NOTE OPERATIONS ====================

type NoteRepository struct {
	db    *DB
	clock Clock
}

// NewNoteRepository creates a note repository. A nil clock means SystemClock.
func NewNoteRepository(db *DB, clock Clock) *NoteRepository {
	if clock == nil {
		clock = SystemClock
	}
	return &NoteRepository{db: db, clock: clock}
}

const noteColumns = `id, title, body, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner, note *models.Note) error {
	return row.Scan(&note.ID, &note.Title, &note.Body, &note.CreatedAt, &note.UpdatedAt)
}

// List returns every note
func (r *NoteRepository) List(ctx context.Context) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+noteColumns+` FROM notes`)
	if err != nil {
		return nil, storeError("list notes", err)
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

	return notes, storeError("list notes", rows.Err())
}

func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	var note models.Note
	err := scanNote(r.db.QueryRowContext(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE id = ?
	`, id), &note)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeError("get note", err)
	}

	return &note, nil
}

// Create inserts a note. Both timestamps come from a single clock reading.
// A nil body is stored as the empty string.
func (r *NoteRepository) Create(ctx context.Context, title string, body *string) (*models.Note, error) {
	text := ""
	if body != nil {
		text = *body
	}
	now := r.clock()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, title, text, now, now)
	if err != nil {
		return nil, storeError("create note", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeError("create note", err)
	}

	return r.GetByID(ctx, id)
}

// Update overwrites title and body and refreshes updated_at.
// created_at is never written here.
func (r *NoteRepository) Update(ctx context.Context, note models.Note) (*models.Note, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notes SET
			title = ?,
			body = ?,
			updated_at = ?
		WHERE id = ?
	`, note.Title, note.Body, r.clock(), note.ID)
	if err != nil {
		return nil, storeError("update note", err)
	}

	return r.GetByID(ctx, note.ID)
}

// Delete removes the note; its label memberships go with it (ON DELETE CASCADE).
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	return storeError("delete note", err)
}
