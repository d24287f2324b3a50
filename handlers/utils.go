package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"notes-api/app"
	"notes-api/middleware"
	"notes-api/models"
	"notes-api/services"
	"notes-api/validator"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
}

func unprocessable(c *fiber.Ctx, err error) error {
	var details validator.ValidationErrors
	if errors.As(err, &details) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}
	// Only a misconfigured validator gets here
	return serverErrorWithDetails(c, "Failed to validate request", err)
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, services.ErrStorageUnavailable) {
		status = fiber.StatusServiceUnavailable
	}

	slog.Error("server error",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(status).JSON(fiber.Map{"error": message})
}

// storageError maps a service error to a response: 404 for a missing note,
// 503 or 500 for anything else.
func storageError(c *fiber.Ctx, message string, err error) error {
	if errors.Is(err, services.ErrNoteNotFound) {
		return notFound(c)
	}
	return serverErrorWithDetails(c, message, err)
}

// noteID validates the :id path parameter.
func noteID(a *app.App, c *fiber.Ctx) (int64, error) {
	param := c.Params("id")
	if err := a.Validator.Validate(models.NoteIDParam{ID: param}); err != nil {
		return 0, err
	}
	return strconv.ParseInt(param, 10, 64)
}

var errInvalidBody = errors.New("invalid request body")

// noteText parses and validates a NoteIn body.
func noteText(a *app.App, c *fiber.Ctx) (string, error) {
	var req models.NoteIn
	if err := c.BodyParser(&req); err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	if err := a.Validator.Validate(req); err != nil {
		return "", err
	}
	return *req.Text, nil
}

// invalidInput answers 400 for an unparseable body and 422 for input that
// parsed but failed validation.
func invalidInput(c *fiber.Ctx, err error) error {
	if errors.Is(err, errInvalidBody) {
		return badRequest(c, "Invalid request body")
	}
	return unprocessable(c, err)
}

// noteService builds a service over the request's session connection,
// falling back to the pool outside the /notes group. Handlers call it only
// after input validation, so bad input never waits on the pool.
func noteService(a *app.App, c *fiber.Ctx) (*services.NoteService, error) {
	sess := middleware.GetSession(c)
	if sess == nil {
		return services.NewNoteService(a.DB.Repository(a.DB.DB)), nil
	}

	conn, err := sess.Conn(c.UserContext())
	if err != nil {
		return nil, errors.Join(services.ErrStorageUnavailable, err)
	}
	return services.NewNoteService(a.DB.Repository(conn)), nil
}
