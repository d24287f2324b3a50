package handlers

import (
	"notes-api/app"
	"notes-api/models"

	"github.com/gofiber/fiber/v2"
)

// CreateNote stores a new note and returns it with its assigned id
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		text, err := noteText(a, c)
		if err != nil {
			return invalidInput(c, err)
		}

		svc, err := noteService(a, c)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create note", err)
		}

		note, err := svc.Create(c.UserContext(), text)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create note", err)
		}

		return success(c, models.NewNoteOut(note))
	}
}

// ListNotes returns every note
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc, err := noteService(a, c)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}

		notes, err := svc.List(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}

		return success(c, models.NewNoteOutList(notes))
	}
}

// GetNote returns a single note by id
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := noteID(a, c)
		if err != nil {
			return invalidInput(c, err)
		}

		svc, err := noteService(a, c)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch note", err)
		}

		note, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return storageError(c, "Failed to fetch note", err)
		}

		return success(c, models.NewNoteOut(note))
	}
}

// UpdateNote replaces the text of an existing note
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := noteID(a, c)
		if err != nil {
			return invalidInput(c, err)
		}

		text, err := noteText(a, c)
		if err != nil {
			return invalidInput(c, err)
		}

		svc, err := noteService(a, c)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to update note", err)
		}

		note, err := svc.Update(c.UserContext(), id, text)
		if err != nil {
			return storageError(c, "Failed to update note", err)
		}

		return success(c, models.NewNoteOut(note))
	}
}

// DeleteNote removes a note and echoes its id
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := noteID(a, c)
		if err != nil {
			return invalidInput(c, err)
		}

		svc, err := noteService(a, c)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to delete note", err)
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return storageError(c, "Failed to delete note", err)
		}

		return success(c, models.DeleteResult{Deleted: id})
	}
}
