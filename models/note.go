package models

import "time"

type Label struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteWithLabels is the detail view of a note.
type NoteWithLabels struct {
	Note
	Labels []Label `json:"labels"`
}

type NewLabel struct {
	Name string `json:"name" validate:"required,max=100,notblank"`
}

type UpdateLabelRequest struct {
	Name string `json:"name" validate:"required,max=100,notblank"`
}

// NewNote is the creation payload. Body may be omitted.
type NewNote struct {
	Title string  `json:"title" validate:"required,max=200,notblank"`
	Body  *string `json:"body,omitempty"`
}

type UpdateNoteRequest struct {
	Title string `json:"title" validate:"required,max=200,notblank"`
	Body  string `json:"body"`
}
