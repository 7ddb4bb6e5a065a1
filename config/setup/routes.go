package setup

import (
	"action-notes/app"
	"action-notes/handlers"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/", handlers.HomePage(application))
	fiberApp.Get("/health", handlers.Health(application))

	notes := fiberApp.Group("/notes")
	notes.Post("/", handlers.CreateNote(application))
	notes.Get("/", handlers.ListNotes(application))
	notes.Get("/search", handlers.ListNotes(application))
	notes.Get("/:id", handlers.GetNote(application))
	notes.Patch("/:id", handlers.UpdateNote(application))
	notes.Delete("/:id", handlers.DeleteNote(application))
	notes.Get("/:id/action-items", handlers.ListNoteActionItems(application))

	items := fiberApp.Group("/action-items")
	// Extraction gets its own, smaller per-IP budget.
	items.Post("/extract", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "extract:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Extraction rate limit exceeded",
			})
		},
	}), handlers.ExtractActionItems(application))
	items.Post("/", handlers.CreateActionItem(application))
	items.Get("/", handlers.ListActionItems(application))
	items.Get("/:id", handlers.GetActionItem(application))
	items.Put("/:id/complete", handlers.CompleteActionItem(application))
	items.Post("/:id/done", handlers.MarkActionItemDone(application))
	items.Patch("/:id", handlers.UpdateActionItem(application))
	items.Delete("/:id", handlers.DeleteActionItem(application))
}
