package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/papersoccer/internal/config"
	"github.com/rocketscienceinc/papersoccer/internal/papersoccer"
	"github.com/rocketscienceinc/papersoccer/internal/transport/tui"
	"github.com/rocketscienceinc/papersoccer/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController := papersoccer.NewGameController()
	gameManager := usecase.NewGameManager(logger, gameController, conf.Board.Width, conf.Board.Height)
	gameManager.Start()

	log.Info("Starting terminal UI")
	if err := tui.New(logger, gameManager).Start(ctx); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}
