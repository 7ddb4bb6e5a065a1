package services

import (
	"action-notes/database"
	"action-notes/models"
	"context"
	"errors"
	"strings"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo      NoteRepository
	validator Validator
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository, v Validator) *NoteService {
	return &NoteService{
		repo:      repo,
		validator: v,
	}
}

// NotePage is one page of a note listing plus the total match count
type NotePage struct {
	Items []models.Note `json:"items"`
	Total int           `json:"total"`
	Skip  int           `json:"skip"`
	Limit int           `json:"limit"`
}

// Create validates and stores a new note
func (ns *NoteService) Create(ctx context.Context, req models.CreateNoteRequest) (*models.Note, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if err := ns.validator.Validate(req); err != nil {
		return nil, err
	}

	return ns.repo.CreateNote(ctx, req.Title, req.Content)
}

// Get retrieves a note by id
func (ns *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	note, err := ns.repo.GetNote(ctx, id)
	if err != nil {
		return nil, mapNoteErr(err)
	}
	return note, nil
}

// List returns a page of notes matching q.Query, which is trimmed first
func (ns *NoteService) List(ctx context.Context, q models.NoteQuery) (*NotePage, error) {
	if err := checkPage(q.Limit, q.Offset); err != nil {
		return nil, err
	}
	q.Query = strings.TrimSpace(q.Query)

	notes, err := ns.repo.ListNotes(ctx, q)
	if err != nil {
		return nil, err
	}

	total, err := ns.repo.CountNotes(ctx, q.Query)
	if err != nil {
		return nil, err
	}

	return &NotePage{Items: notes, Total: total, Skip: q.Offset, Limit: q.Limit}, nil
}

// Update applies a partial update. Present fields are trimmed and validated;
// an empty patch only refreshes updated_at.
func (ns *NoteService) Update(ctx context.Context, id int64, patch models.NotePatch) (*models.Note, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	if patch.Content != nil {
		content := strings.TrimSpace(*patch.Content)
		patch.Content = &content
	}

	if err := ns.validator.Validate(patch); err != nil {
		return nil, err
	}

	note, err := ns.repo.UpdateNote(ctx, id, patch)
	if err != nil {
		return nil, mapNoteErr(err)
	}
	return note, nil
}

// Delete removes a note. Its action items survive with no note.
func (ns *NoteService) Delete(ctx context.Context, id int64) error {
	return mapNoteErr(ns.repo.DeleteNote(ctx, id))
}

func mapNoteErr(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrNoteNotFound
	}
	return err
}
