package handlers

import (
	"errors"
	"notes-api/app"
	"notes-api/database"
	"notes-api/services"
	"time"

	"github.com/gofiber/fiber/v2"
)

const greeting = "Hello, Lieutenant Hansen"

func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": greeting})
}

// DBTime reports the database server's clock, not this process's
func DBTime(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now, err := a.DB.Now(c.UserContext())
		if err != nil {
			if database.IsUnavailable(err) {
				err = errors.Join(services.ErrStorageUnavailable, err)
			}
			return serverErrorWithDetails(c, "Failed to query database time", err)
		}

		return c.JSON(fiber.Map{"database_time": now.Format(time.RFC3339Nano)})
	}
}

// Health pings the database
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.DB.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
