package services

import (
	"context"
	"fmt"
	"notes-api/database"
	"notes-api/models"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Create stores a new note
func (ns *NoteService) Create(ctx context.Context, text string) (*models.Note, error) {
	note, err := ns.repo.CreateNote(ctx, text)
	if err != nil {
		return nil, classify(err)
	}
	return note, nil
}

// List returns all notes
func (ns *NoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := ns.repo.ListNotes(ctx)
	if err != nil {
		return nil, classify(err)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// Get retrieves a note by id, returning ErrNoteNotFound when absent
func (ns *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	note, err := ns.repo.GetNote(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Update replaces the text of an existing note. It never creates one.
func (ns *NoteService) Update(ctx context.Context, id int64, text string) (*models.Note, error) {
	note, err := ns.repo.UpdateNote(ctx, id, text)
	if err != nil {
		return nil, classify(err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Delete removes a note
func (ns *NoteService) Delete(ctx context.Context, id int64) error {
	deleted, err := ns.repo.DeleteNote(ctx, id)
	if err != nil {
		return classify(err)
	}
	if !deleted {
		return ErrNoteNotFound
	}
	return nil
}

// classify tags connectivity failures with ErrStorageUnavailable, keeping
// the original error in the chain.
func classify(err error) error {
	if database.IsUnavailable(err) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return err
}
