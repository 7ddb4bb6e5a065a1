package services

import (
	"action-notes/extract"
	"action-notes/models"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const maxTitleLen = 200

// ExtractionService turns free text into stored action items
type ExtractionService struct {
	repo      ExtractionRepository
	extractor extract.Extractor
	validator Validator
	logger    *slog.Logger
}

// NewExtractionService creates a new extraction service
func NewExtractionService(repo ExtractionRepository, extractor extract.Extractor, v Validator, logger *slog.Logger) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionService{
		repo:      repo,
		extractor: extractor,
		validator: v,
		logger:    logger,
	}
}

// Extract asks the extractor for action items in req.Text and stores them.
// With SaveNote the text is also stored as a note owning the items.
func (es *ExtractionService) Extract(ctx context.Context, req models.ExtractRequest) (*models.ExtractResult, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := es.validator.Validate(req); err != nil {
		return nil, err
	}
	text := req.Text

	start := time.Now()
	raw, err := es.extractor.Extract(ctx, text)
	if err != nil {
		es.logger.Warn("extraction failed",
			"extractor", es.extractor.Name(),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	descriptions := extract.Normalize(raw)
	es.logger.Info("extraction completed",
		"extractor", es.extractor.Name(),
		"raw_items", len(raw),
		"items", len(descriptions),
		"elapsed", time.Since(start),
	)

	result := &models.ExtractResult{Items: []models.ActionItem{}}

	if req.SaveNote {
		note, items, err := es.repo.CreateNoteWithActionItems(ctx, noteTitle(text), text, descriptions)
		if err != nil {
			return nil, err
		}
		result.NoteID = &note.ID
		result.Items = items
		return result, nil
	}

	if len(descriptions) == 0 {
		return result, nil
	}

	items, err := es.repo.CreateActionItems(ctx, descriptions, nil)
	if err != nil {
		return nil, err
	}
	result.Items = items
	return result, nil
}

// noteTitle uses the first non-empty line of text
func noteTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return truncateRunes(line, maxTitleLen)
		}
	}
	return "Extracted note"
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
