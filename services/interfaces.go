package services

import (
	"action-notes/models"
	"context"
)

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	CreateNote(ctx context.Context, title, content string) (*models.Note, error)
	GetNote(ctx context.Context, id int64) (*models.Note, error)
	ListNotes(ctx context.Context, q models.NoteQuery) ([]models.Note, error)
	CountNotes(ctx context.Context, query string) (int, error)
	UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (*models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	CreateActionItem(ctx context.Context, description string, noteID *int64) (*models.ActionItem, error)
	GetActionItem(ctx context.Context, id int64) (*models.ActionItem, error)
	ListActionItems(ctx context.Context, q models.ActionItemQuery) ([]models.ActionItem, error)
	CountActionItems(ctx context.Context, completed *bool, noteID *int64) (int, error)
	UpdateActionItem(ctx context.Context, id int64, patch models.ActionItemPatch) (*models.ActionItem, error)
	SetActionItemCompleted(ctx context.Context, id int64, completed bool) (*models.ActionItem, error)
	DeleteActionItem(ctx context.Context, id int64) error
}

// ExtractionRepository defines the writes performed after an extraction
type ExtractionRepository interface {
	CreateActionItems(ctx context.Context, descriptions []string, noteID *int64) ([]models.ActionItem, error)
	CreateNoteWithActionItems(ctx context.Context, title, content string, descriptions []string) (*models.Note, []models.ActionItem, error)
}

// Validator checks request structs
type Validator interface {
	Validate(i interface{}) error
}
