package services

import (
	"context"

	"notes-labels/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

type MockLabelRepository struct {
	mock.Mock
}

var _ LabelRepository = (*MockLabelRepository)(nil)

func (m *MockLabelRepository) List(ctx context.Context) ([]models.Label, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Label), args.Error(1)
}

func (m *MockLabelRepository) GetByID(ctx context.Context, id int64) (*models.Label, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockLabelRepository) Create(ctx context.Context, name string) (*models.Label, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockLabelRepository) Update(ctx context.Context, label models.Label) (*models.Label, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockLabelRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNoteRepository struct {
	mock.Mock
}

var _ NoteRepository = (*MockNoteRepository)(nil)

func (m *MockNoteRepository) List(ctx context.Context) ([]models.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) Create(ctx context.Context, title string, body *string) (*models.Note, error) {
	args := m.Called(ctx, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, note models.Note) (*models.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNoteLabelRepository struct {
	mock.Mock
}

var _ NoteLabelRepository = (*MockNoteLabelRepository)(nil)

func (m *MockNoteLabelRepository) AddLabel(ctx context.Context, noteID, labelID int64) error {
	args := m.Called(ctx, noteID, labelID)
	return args.Error(0)
}

func (m *MockNoteLabelRepository) RemoveLabel(ctx context.Context, noteID, labelID int64) error {
	args := m.Called(ctx, noteID, labelID)
	return args.Error(0)
}

func (m *MockNoteLabelRepository) ListLabels(ctx context.Context, noteID int64) ([]models.Label, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Label), args.Error(1)
}

func (m *MockNoteLabelRepository) GetLabel(ctx context.Context, noteID, labelID int64) (*models.Label, error) {
	args := m.Called(ctx, noteID, labelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockNoteLabelRepository) ListNotes(ctx context.Context, labelID int64) ([]models.Note, error) {
	args := m.Called(ctx, labelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}
