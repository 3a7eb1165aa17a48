package suite

import (
	"log/slog"
	"os"
	"testing"

	"github.com/rocketscienceinc/papersoccer/internal/papersoccer"
	"github.com/rocketscienceinc/papersoccer/internal/usecase"
)

const (
	boardWidth  = 9
	boardHeight = 11
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Manager *usecase.GameManager
}

// New - returns a suite with a started 9x11 game.
func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	manager := usecase.NewGameManager(logger, papersoccer.NewGameController(), boardWidth, boardHeight)
	manager.Start()

	return &Suite{
		T:       t,
		Logger:  logger,
		Manager: manager,
	}
}
