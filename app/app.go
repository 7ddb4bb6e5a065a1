package app

import (
	"action-notes/database"
	"action-notes/extract"
	"action-notes/services"
	"action-notes/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo        *database.Repository
	Extractor   extract.Extractor
	Notes       *services.NoteService
	ActionItems *services.ActionItemService
	Extraction  *services.ExtractionService
	Validator   *validator.Validator
	Logger      *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, extractor extract.Extractor, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	v := validator.New()

	return &App{
		Repo:        repo,
		Extractor:   extractor,
		Notes:       services.NewNoteService(repo, v),
		ActionItems: services.NewActionItemService(repo, repo, v),
		Extraction:  services.NewExtractionService(repo, extractor, v, logger),
		Validator:   v,
		Logger:      logger,
	}
}
