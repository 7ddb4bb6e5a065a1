package services

import "errors"

// Common service-level errors
var (
	// Note errors
	ErrNoteNotFound         = errors.New("note not found")
	ErrInvalidNoteReference = errors.New("note_id does not reference an existing note")

	// Action item errors
	ErrActionItemNotFound = errors.New("action item not found")

	// Extraction errors
	ErrExtractionFailed = errors.New("action item extraction failed")
)
