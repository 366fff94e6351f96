package services

import (
	"context"
	"strings"

	"notes-labels/models"
)

// LabelService handles business logic for labels
type LabelService struct {
	labels     LabelRepository
	noteLabels NoteLabelRepository
}

// NewLabelService creates a new label service
func NewLabelService(labels LabelRepository, noteLabels NoteLabelRepository) *LabelService {
	return &LabelService{
		labels:     labels,
		noteLabels: noteLabels,
	}
}

// List retrieves every label
func (ls *LabelService) List(ctx context.Context) ([]models.Label, error) {
	return ls.labels.List(ctx)
}

// Get retrieves a label by id
func (ls *LabelService) Get(ctx context.Context, id int64) (*models.Label, error) {
	label, err := ls.labels.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrLabelNotFound)
	}
	return label, nil
}

// Create creates a label with a trimmed name
func (ls *LabelService) Create(ctx context.Context, name string) (*models.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	return ls.labels.Create(ctx, name)
}

// Rename changes the name of an existing label
func (ls *LabelService) Rename(ctx context.Context, id int64, name string) (*models.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	label, err := ls.labels.Update(ctx, models.Label{ID: id, Name: name})
	if err != nil {
		return nil, mapNotFound(err, ErrLabelNotFound)
	}
	return label, nil
}

// Delete removes a label; notes carrying it lose the membership
func (ls *LabelService) Delete(ctx context.Context, id int64) error {
	return ls.labels.Delete(ctx, id)
}

// Notes lists the notes carrying a label
func (ls *LabelService) Notes(ctx context.Context, id int64) ([]models.Note, error) {
	if _, err := ls.Get(ctx, id); err != nil {
		return nil, err
	}
	return ls.noteLabels.ListNotes(ctx, id)
}
