package setup

import (
	"action-notes/app"
	"action-notes/config"
	"action-notes/database"
	"action-notes/extract"
	"context"
	"fmt"
	"log/slog"
)

// InitDatabase opens the SQLite database and runs migrations
func InitDatabase(cfg *config.Config, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(cfg.DBDriver, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "driver", cfg.DBDriver, "path", cfg.DBPath)
	return db, nil
}

// InitExtractor builds the language model client selected by EXTRACTOR
func InitExtractor(ctx context.Context, cfg *config.Config, logger *slog.Logger) (extract.Extractor, error) {
	switch cfg.Extractor {
	case "gemini":
		ext, err := extract.NewGemini(ctx, extract.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.ExtractTimeout,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("extractor configured", "extractor", ext.Name())
		return ext, nil

	case "ollama":
		ext := extract.NewOllama(extract.OllamaConfig{
			ServerURL: cfg.OllamaURL,
			Model:     cfg.OllamaModel,
			Timeout:   cfg.ExtractTimeout,
			Logger:    logger,
		})
		// The server may come up after us; a failed health check is only logged.
		if err := ext.Health(ctx); err != nil {
			logger.Warn("ollama server not reachable", "url", cfg.OllamaURL, "error", err)
		}
		logger.Info("extractor configured", "extractor", ext.Name())
		return ext, nil

	default:
		return nil, fmt.Errorf("unknown extractor %q", cfg.Extractor)
	}
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, extractor extract.Extractor, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(repo, extractor, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
