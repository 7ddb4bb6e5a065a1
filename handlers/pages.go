package handlers

import (
	"action-notes/app"
	"action-notes/config"
	"action-notes/templates/pages"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/html; charset=utf-8")
		return pages.Index(config.AppConfig.Env, a.Extractor.Name()).Render(c.Context(), c.Response().BodyWriter())
	}
}

// Health reports whether the server and its database are up
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := a.Repo.Ping(ctx); err != nil {
			return serviceUnavailable(c, "database unavailable", err)
		}
		return success(c, fiber.Map{"status": "ok"})
	}
}
