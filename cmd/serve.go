package cmd

import (
	"action-notes/config"
	"action-notes/config/setup"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.AppConfig

		db, err := setup.InitDatabase(cfg, logger)
		if err != nil {
			return err
		}

		extractor, err := setup.InitExtractor(cmd.Context(), cfg, logger)
		if err != nil {
			db.Close()
			return err
		}

		application := setup.InitApp(db, extractor, logger)

		fiberApp := setup.NewFiberApp(cfg, logger)
		setup.ApplyMiddleware(fiberApp, cfg, logger)
		setup.RegisterRoutes(fiberApp, application)

		logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

		errCh := make(chan error, 1)
		go func() {
			errCh <- fiberApp.Listen(":" + cfg.Port)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			logger.Error("server failed", "error", err)
			setup.Shutdown(db, logger)
			return err
		case <-quit:
		}

		logger.Info("shutting down server gracefully")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := fiberApp.ShutdownWithContext(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}

		setup.Shutdown(db, logger)
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
