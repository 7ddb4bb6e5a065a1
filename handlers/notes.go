package handlers

import (
	"action-notes/app"
	"action-notes/database"
	"action-notes/models"

	"github.com/gofiber/fiber/v2"
)

// listParams are the query parameters shared by the list endpoints
type listParams struct {
	Query     string `query:"q"`
	Skip      int    `query:"skip"`
	Limit     int    `query:"limit"`
	Sort      string `query:"sort"`
	Completed *bool  `query:"completed"`
	NoteID    *int64 `query:"note_id"`
}

func parseListParams(c *fiber.Ctx) (listParams, error) {
	params := listParams{Limit: database.DefaultLimit}
	if err := c.QueryParser(&params); err != nil {
		return params, err
	}
	return params, nil
}

// CreateNote stores a new note
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		note, err := a.Notes.Create(c.UserContext(), req)
		if err != nil {
			return handleError(c, err, "Failed to create note")
		}

		return created(c, note)
	}
}

// ListNotes lists, searches, sorts and paginates notes
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, err := parseListParams(c)
		if err != nil {
			return badRequest(c, "Invalid query parameters")
		}

		page, err := a.Notes.List(c.UserContext(), models.NoteQuery{
			Query:  params.Query,
			Sort:   params.Sort,
			Offset: params.Skip,
			Limit:  params.Limit,
		})
		if err != nil {
			return handleError(c, err, "Failed to list notes")
		}

		return success(c, page)
	}
}

// GetNote retrieves a note by id
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		note, err := a.Notes.Get(c.UserContext(), id)
		if err != nil {
			return handleError(c, err, "Failed to fetch note")
		}

		return success(c, note)
	}
}

// UpdateNote applies a partial update to a note
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		var patch models.NotePatch
		if err := c.BodyParser(&patch); err != nil {
			return badRequest(c, "Invalid request body")
		}

		note, err := a.Notes.Update(c.UserContext(), id, patch)
		if err != nil {
			return handleError(c, err, "Failed to update note")
		}

		return success(c, note)
	}
}

// DeleteNote removes a note, detaching its action items
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		if err := a.Notes.Delete(c.UserContext(), id); err != nil {
			return handleError(c, err, "Failed to delete note")
		}

		return noContent(c)
	}
}

// ListNoteActionItems lists the action items attached to a note
func ListNoteActionItems(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid note id")
		}

		params, err := parseListParams(c)
		if err != nil {
			return badRequest(c, "Invalid query parameters")
		}

		page, err := a.ActionItems.ListForNote(c.UserContext(), id, models.ActionItemQuery{
			Completed: params.Completed,
			Sort:      params.Sort,
			Offset:    params.Skip,
			Limit:     params.Limit,
		})
		if err != nil {
			return handleError(c, err, "Failed to list action items")
		}

		return success(c, page)
	}
}
