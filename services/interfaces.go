package services

import (
	"context"
	"notes-api/models"
)

// NoteRepository defines the interface for note data access.
// Absence is reported as a nil note (or false for delete) with a nil error.
type NoteRepository interface {
	CreateNote(ctx context.Context, text string) (*models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id int64) (*models.Note, error)
	UpdateNote(ctx context.Context, id int64, text string) (*models.Note, error)
	DeleteNote(ctx context.Context, id int64) (bool, error)
}
