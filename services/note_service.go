package services

import (
	"context"
	"strings"

	"notes-labels/models"

	"golang.org/x/sync/errgroup"
)

// NoteService handles business logic for notes and their labels
type NoteService struct {
	notes      NoteRepository
	labels     LabelRepository
	noteLabels NoteLabelRepository
}

// NewNoteService creates a new note service
func NewNoteService(notes NoteRepository, labels LabelRepository, noteLabels NoteLabelRepository) *NoteService {
	return &NoteService{
		notes:      notes,
		labels:     labels,
		noteLabels: noteLabels,
	}
}

// List retrieves every note
func (ns *NoteService) List(ctx context.Context) ([]models.Note, error) {
	return ns.notes.List(ctx)
}

// Get retrieves a note by id
func (ns *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	note, err := ns.notes.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrNoteNotFound)
	}
	return note, nil
}

// GetWithLabels retrieves a note together with its labels
func (ns *NoteService) GetWithLabels(ctx context.Context, id int64) (*models.NoteWithLabels, error) {
	var (
		g, gctx = errgroup.WithContext(ctx)
		note    *models.Note
		labels  []models.Label
	)

	g.Go(func() error {
		var err error
		note, err = ns.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		labels, err = ns.noteLabels.ListLabels(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.NoteWithLabels{Note: *note, Labels: labels}, nil
}

// Create creates a note; an omitted body is stored empty
func (ns *NoteService) Create(ctx context.Context, req models.NewNote) (*models.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidName
	}

	return ns.notes.Create(ctx, title, req.Body)
}

// Update overwrites title and body of an existing note
func (ns *NoteService) Update(ctx context.Context, id int64, req models.UpdateNoteRequest) (*models.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidName
	}

	note, err := ns.notes.Update(ctx, models.Note{ID: id, Title: title, Body: req.Body})
	if err != nil {
		return nil, mapNotFound(err, ErrNoteNotFound)
	}
	return note, nil
}

// Delete removes a note and its label memberships
func (ns *NoteService) Delete(ctx context.Context, id int64) error {
	return ns.notes.Delete(ctx, id)
}

// AttachLabel adds a label to a note. Both must exist; attaching twice is fine.
func (ns *NoteService) AttachLabel(ctx context.Context, noteID, labelID int64) error {
	if _, err := ns.Get(ctx, noteID); err != nil {
		return err
	}
	if _, err := ns.labels.GetByID(ctx, labelID); err != nil {
		return mapNotFound(err, ErrLabelNotFound)
	}

	return ns.noteLabels.AddLabel(ctx, noteID, labelID)
}

// DetachLabel removes a label from a note
func (ns *NoteService) DetachLabel(ctx context.Context, noteID, labelID int64) error {
	return ns.noteLabels.RemoveLabel(ctx, noteID, labelID)
}

// Labels lists the labels of a note
func (ns *NoteService) Labels(ctx context.Context, noteID int64) ([]models.Label, error) {
	if _, err := ns.Get(ctx, noteID); err != nil {
		return nil, err
	}
	return ns.noteLabels.ListLabels(ctx, noteID)
}

// Label returns one label of a note, if attached
func (ns *NoteService) Label(ctx context.Context, noteID, labelID int64) (*models.Label, error) {
	label, err := ns.noteLabels.GetLabel(ctx, noteID, labelID)
	if err != nil {
		return nil, mapNotFound(err, ErrLabelNotAttached)
	}
	return label, nil
}
