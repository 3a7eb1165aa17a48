package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/papersoccer/internal/apperror"
	"github.com/rocketscienceinc/papersoccer/internal/entity"
)

type gameController interface {
	Initialize(width, height int) *entity.Game
	Reset(game *entity.Game, width, height int) *entity.Game
	ApplyMove(game *entity.Game, target entity.Coord) (bool, error)
	ToggleTurn(game *entity.Game) error
}

// GameManager owns the single game session of the process and is the only entry point
// presentation code uses to change it. It is not safe for concurrent use.
type GameManager struct {
	logger     *slog.Logger
	controller gameController

	width  int
	height int
	game   *entity.Game
}

func NewGameManager(logger *slog.Logger, controller gameController, width, height int) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		controller: controller,

		width:  width,
		height: height,
		game:   &entity.Game{Turn: entity.DefaultTurn},
	}
}

// Game - returns the current session for rendering. Callers must not modify it.
func (that *GameManager) Game() *entity.Game {
	return that.game
}

func (that *GameManager) Start() *entity.Game {
	that.game = that.controller.Initialize(that.width, that.height)

	that.logger.Info("game started",
		"game_id", that.game.ID,
		"width", that.game.Board.Width,
		"height", that.game.Board.Height,
		"turn", that.game.Turn,
	)

	return that.game
}

func (that *GameManager) Reset() *entity.Game {
	previousID := that.game.ID
	that.game = that.controller.Reset(that.game, that.width, that.height)

	that.logger.Info("game reset", "previous_game_id", previousID, "game_id", that.game.ID, "turn", that.game.Turn)

	return that.game
}

// MoveTo - moves from the current point to (x, y). Unavailable targets are ignored and
// reported as false.
func (that *GameManager) MoveTo(x, y int) (bool, error) {
	log := that.logger.With("method", "MoveTo", "game_id", that.game.ID)

	turn := that.game.Turn
	from := that.game.Current
	target := entity.Coord{X: x, Y: y}

	applied, err := that.controller.ApplyMove(that.game, target)
	if err != nil {
		log.Error("failed to apply move", "from", from, "to", target, "error", err)
		return false, fmt.Errorf("failed to apply move: %w", err)
	}

	if !applied {
		log.Debug("move ignored", "from", from, "to", target)
		return false, nil
	}

	log.Debug("move applied", "from", from, "to", target, "color", turn)

	if that.game.Turn != turn {
		log.Info("turn passed", "turn", that.game.Turn)
	}

	return true, nil
}

// MoveBy - moves one step from the current point in the given direction.
func (that *GameManager) MoveBy(direction entity.Direction) (bool, error) {
	if !that.game.IsActive() {
		return false, apperror.ErrGameIsNotStarted
	}

	offset, ok := direction.Offset()
	if !ok {
		return false, fmt.Errorf("%w: %q", entity.ErrInvalidDirection, direction)
	}

	target := that.game.Current.Add(offset)

	return that.MoveTo(target.X, target.Y)
}

func (that *GameManager) ToggleTurn() error {
	log := that.logger.With("method", "ToggleTurn", "game_id", that.game.ID)

	if err := that.controller.ToggleTurn(that.game); err != nil {
		return fmt.Errorf("failed to toggle turn: %w", err)
	}

	log.Info("turn changed manually", "turn", that.game.Turn)

	return nil
}
