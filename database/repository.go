package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"notes-api/models"
)

type Repository struct {
	q       Querier
	dialect dialect
}

// ==================== NOTES ====================

// CreateNote inserts a row and returns it with the id the store assigned
func (r *Repository) CreateNote(ctx context.Context, text string) (*models.Note, error) {
	var note models.Note
	err := r.q.QueryRowContext(ctx, r.dialect.rebind(`
		INSERT INTO notes (text) VALUES (?)
		RETURNING id, text
	`), text).Scan(&note.ID, &note.Text)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	return &note, nil
}

// ListNotes returns every note ordered by id
func (r *Repository) ListNotes(ctx context.Context) ([]models.Note, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, text
		FROM notes
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Text); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// GetNote returns nil, nil when no row has this id
func (r *Repository) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	var note models.Note
	err := r.q.QueryRowContext(ctx, r.dialect.rebind(`
		SELECT id, text
		FROM notes
		WHERE id = ?
	`), id).Scan(&note.ID, &note.Text)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get note %d: %w", id, err)
	}

	return &note, nil
}

// UpdateNote replaces the text of an existing note. It returns nil, nil
// and writes nothing when the id is unknown.
func (r *Repository) UpdateNote(ctx context.Context, id int64, text string) (*models.Note, error) {
	var note models.Note
	err := r.q.QueryRowContext(ctx, r.dialect.rebind(`
		UPDATE notes SET text = ?
		WHERE id = ?
		RETURNING id, text
	`), text, id).Scan(&note.ID, &note.Text)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update note %d: %w", id, err)
	}

	return &note, nil
}

// DeleteNote reports whether a row was removed
func (r *Repository) DeleteNote(ctx context.Context, id int64) (bool, error) {
	result, err := r.q.ExecContext(ctx, r.dialect.rebind(`
		DELETE FROM notes
		WHERE id = ?
	`), id)
	if err != nil {
		return false, fmt.Errorf("delete note %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete note %d: %w", id, err)
	}

	return affected > 0, nil
}
