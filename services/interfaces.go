package services

import (
	"context"

	"notes-labels/models"
)

// LabelRepository defines the interface for label data access
type LabelRepository interface {
	List(ctx context.Context) ([]models.Label, error)
	GetByID(ctx context.Context, id int64) (*models.Label, error)
	Create(ctx context.Context, name string) (*models.Label, error)
	Update(ctx context.Context, label models.Label) (*models.Label, error)
	Delete(ctx context.Context, id int64) error
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	List(ctx context.Context) ([]models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	Create(ctx context.Context, title string, body *string) (*models.Note, error)
	Update(ctx context.Context, note models.Note) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
}

// NoteLabelRepository defines the interface for note/label membership
type NoteLabelRepository interface {
	AddLabel(ctx context.Context, noteID, labelID int64) error
	RemoveLabel(ctx context.Context, noteID, labelID int64) error
	ListLabels(ctx context.Context, noteID int64) ([]models.Label, error)
	GetLabel(ctx context.Context, noteID, labelID int64) (*models.Label, error)
	ListNotes(ctx context.Context, labelID int64) ([]models.Note, error)
}
