package models

import "time"

type ActionItem struct {
	ID          int64     `json:"id"`
	NoteID      *int64    `json:"note_id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateActionItemRequest struct {
	Description string `json:"description" validate:"notblank,max=500"`
	NoteID      *int64 `json:"note_id" validate:"omitempty,gt=0"`
}

// ActionItemPatch carries the fields of a partial update. Nil fields are left untouched.
type ActionItemPatch struct {
	Description *string `json:"description" validate:"omitempty,notblank,max=500"`
	Completed   *bool   `json:"completed"`
}

// Apply copies the present fields onto item.
func (p ActionItemPatch) Apply(item *ActionItem) {
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Completed != nil {
		item.Completed = *p.Completed
	}
}

type MarkDoneRequest struct {
	Done *bool `json:"done"`
}

type ActionItemQuery struct {
	Completed *bool
	NoteID    *int64
	Sort      string
	Offset    int
	Limit     int
}

type ExtractRequest struct {
	Text     string `json:"text" validate:"notblank,max=10000"`
	SaveNote bool   `json:"save_note"`
}

type ExtractResult struct {
	NoteID *int64       `json:"note_id"`
	Items  []ActionItem `json:"items"`
}
