package services

import (
	"action-notes/database"
	"action-notes/models"
	"context"
	"errors"
	"strings"
)

// ActionItemService handles business logic for action items
type ActionItemService struct {
	repo      ActionItemRepository
	notes     NoteRepository
	validator Validator
}

// NewActionItemService creates a new action item service
func NewActionItemService(repo ActionItemRepository, notes NoteRepository, v Validator) *ActionItemService {
	return &ActionItemService{
		repo:      repo,
		notes:     notes,
		validator: v,
	}
}

// ActionItemPage is one page of an action item listing plus the total match count
type ActionItemPage struct {
	Items []models.ActionItem `json:"items"`
	Total int                 `json:"total"`
	Skip  int                 `json:"skip"`
	Limit int                 `json:"limit"`
}

// Create validates and stores a new action item
func (as *ActionItemService) Create(ctx context.Context, req models.CreateActionItemRequest) (*models.ActionItem, error) {
	req.Description = strings.TrimSpace(req.Description)

	if err := as.validator.Validate(req); err != nil {
		return nil, err
	}

	item, err := as.repo.CreateActionItem(ctx, req.Description, req.NoteID)
	if errors.Is(err, database.ErrInvalidReference) {
		return nil, ErrInvalidNoteReference
	}
	return item, err
}

// Get retrieves an action item by id
func (as *ActionItemService) Get(ctx context.Context, id int64) (*models.ActionItem, error) {
	item, err := as.repo.GetActionItem(ctx, id)
	if err != nil {
		return nil, mapActionItemErr(err)
	}
	return item, nil
}

// List returns a page of action items filtered by completion and note
func (as *ActionItemService) List(ctx context.Context, q models.ActionItemQuery) (*ActionItemPage, error) {
	if err := checkPage(q.Limit, q.Offset); err != nil {
		return nil, err
	}

	items, err := as.repo.ListActionItems(ctx, q)
	if err != nil {
		return nil, err
	}

	total, err := as.repo.CountActionItems(ctx, q.Completed, q.NoteID)
	if err != nil {
		return nil, err
	}

	return &ActionItemPage{Items: items, Total: total, Skip: q.Offset, Limit: q.Limit}, nil
}

// ListForNote lists the action items of one note, failing if the note is absent
func (as *ActionItemService) ListForNote(ctx context.Context, noteID int64, q models.ActionItemQuery) (*ActionItemPage, error) {
	if _, err := as.notes.GetNote(ctx, noteID); err != nil {
		return nil, mapNoteErr(err)
	}

	q.NoteID = &noteID
	return as.List(ctx, q)
}

// Update applies a partial update
func (as *ActionItemService) Update(ctx context.Context, id int64, patch models.ActionItemPatch) (*models.ActionItem, error) {
	if patch.Description != nil {
		desc := strings.TrimSpace(*patch.Description)
		patch.Description = &desc
	}

	if err := as.validator.Validate(patch); err != nil {
		return nil, err
	}

	item, err := as.repo.UpdateActionItem(ctx, id, patch)
	if err != nil {
		return nil, mapActionItemErr(err)
	}
	return item, nil
}

// MarkDone sets the completed flag
func (as *ActionItemService) MarkDone(ctx context.Context, id int64, done bool) (*models.ActionItem, error) {
	item, err := as.repo.SetActionItemCompleted(ctx, id, done)
	if err != nil {
		return nil, mapActionItemErr(err)
	}
	return item, nil
}

// Delete removes an action item
func (as *ActionItemService) Delete(ctx context.Context, id int64) error {
	return mapActionItemErr(as.repo.DeleteActionItem(ctx, id))
}

func mapActionItemErr(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrActionItemNotFound
	}
	return err
}
