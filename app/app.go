package app

import (
	"log/slog"

	"notes-labels/database"
	"notes-labels/services"
	"notes-labels/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB           *database.DB
	Labels       *database.LabelRepository
	Notes        *database.NoteRepository
	NoteLabels   *database.NoteLabelRepository
	LabelService *services.LabelService
	NoteService  *services.NoteService
	Validator    *validator.Validator
	Logger       *slog.Logger
}

// New creates a new App instance with all dependencies.
// A nil clock means database.SystemClock.
func New(db *database.DB, clock database.Clock, logger *slog.Logger) *App {
	labels := database.NewLabelRepository(db)
	notes := database.NewNoteRepository(db, clock)
	noteLabels := database.NewNoteLabelRepository(db)

	return &App{
		DB:           db,
		Labels:       labels,
		Notes:        notes,
		NoteLabels:   noteLabels,
		LabelService: services.NewLabelService(labels, noteLabels),
		NoteService:  services.NewNoteService(notes, labels, noteLabels),
		Validator:    validator.New(),
		Logger:       logger,
	}
}
