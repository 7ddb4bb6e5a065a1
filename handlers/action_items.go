package handlers

import (
	"action-notes/app"
	"action-notes/models"

	"github.com/gofiber/fiber/v2"
)

// CreateActionItem stores a new action item, optionally linked to a note
func CreateActionItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateActionItemRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		item, err := a.ActionItems.Create(c.UserContext(), req)
		if err != nil {
			return handleError(c, err, "Failed to create action item")
		}

		return created(c, item)
	}
}

// ListActionItems lists action items filtered by completion and note
func ListActionItems(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, err := parseListParams(c)
		if err != nil {
			return badRequest(c, "Invalid query parameters")
		}

		page, err := a.ActionItems.List(c.UserContext(), models.ActionItemQuery{
			Completed: params.Completed,
			NoteID:    params.NoteID,
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

// GetActionItem retrieves an action item by id
func GetActionItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid action item id")
		}

		item, err := a.ActionItems.Get(c.UserContext(), id)
		if err != nil {
			return handleError(c, err, "Failed to fetch action item")
		}

		return success(c, item)
	}
}

// CompleteActionItem marks an action item as completed
func CompleteActionItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid action item id")
		}

		item, err := a.ActionItems.MarkDone(c.UserContext(), id, true)
		if err != nil {
			return handleError(c, err, "Failed to complete action item")
		}

		return success(c, item)
	}
}

// MarkActionItemDone sets the completed flag from {"done": bool}. A missing
// body or field means done.
func MarkActionItemDone(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid action item id")
		}

		var req models.MarkDoneRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return badRequest(c, "Invalid request body")
			}
		}
		done := true
		if req.Done != nil {
			done = *req.Done
		}

		item, err := a.ActionItems.MarkDone(c.UserContext(), id, done)
		if err != nil {
			return handleError(c, err, "Failed to update action item")
		}

		return success(c, item)
	}
}

// UpdateActionItem applies a partial update to an action item
func UpdateActionItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid action item id")
		}

		var patch models.ActionItemPatch
		if err := c.BodyParser(&patch); err != nil {
			return badRequest(c, "Invalid request body")
		}

		item, err := a.ActionItems.Update(c.UserContext(), id, patch)
		if err != nil {
			return handleError(c, err, "Failed to update action item")
		}

		return success(c, item)
	}
}

// DeleteActionItem removes an action item
func DeleteActionItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid action item id")
		}

		if err := a.ActionItems.Delete(c.UserContext(), id); err != nil {
			return handleError(c, err, "Failed to delete action item")
		}

		return noContent(c)
	}
}

// ExtractActionItems runs the language model over text and stores what it finds
func ExtractActionItems(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ExtractRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		result, err := a.Extraction.Extract(c.UserContext(), req)
		if err != nil {
			return handleError(c, err, "Failed to extract action items")
		}

		return success(c, result)
	}
}
