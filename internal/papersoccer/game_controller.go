package papersoccer

import (
	"fmt"

	"github.com/rocketscienceinc/papersoccer/internal/apperror"
	"github.com/rocketscienceinc/papersoccer/internal/entity"
	"github.com/rocketscienceinc/papersoccer/internal/pkg"
)

// GameController applies the rules of the game to an explicit game value.
// It holds no state of its own.
type GameController struct{}

func NewGameController() *GameController {
	return &GameController{}
}

// Initialize - builds an active game on a width x height board.
func (that *GameController) Initialize(width, height int) *entity.Game {
	game := &entity.Game{Turn: entity.DefaultTurn}
	start(game, width, height)

	return game
}

// Reset - discards the board of game and starts it again from scratch.
func (that *GameController) Reset(game *entity.Game, width, height int) *entity.Game {
	game.Turn = entity.DefaultTurn
	start(game, width, height)

	return game
}

func start(game *entity.Game, width, height int) {
	board := entity.NewBoard(width, height)

	game.ID = pkg.GenerateGameID()
	game.Board = board
	game.Current = board.Center()
	game.Turn = game.Turn.Opposite()

	if current, ok := board.PointAt(game.Current.X, game.Current.Y); ok {
		current.Taken = true
	}
}

// PointAt - bounds-checked lookup on the game board.
func (that *GameController) PointAt(game *entity.Game, x, y int) (*entity.Point, bool) {
	if !game.IsActive() {
		return nil, false
	}
	return game.Board.PointAt(x, y)
}

// ApplyMove - draws a path from the current point to target.
// It returns false without touching the game when target is not available from the current point.
func (that *GameController) ApplyMove(game *entity.Game, target entity.Coord) (bool, error) {
	current, ok := game.CurrentPoint()
	if !ok {
		return false, apperror.ErrGameIsNotStarted
	}

	if !current.IsAvailable(target) {
		return false, nil
	}

	next, ok := game.Board.PointAt(target.X, target.Y)
	if !ok {
		return false, nil
	}

	direction, err := entity.DirectionOf(next.X-current.X, next.Y-current.Y)
	if err != nil {
		return false, fmt.Errorf("%w: from %d,%d to %d,%d: %w", apperror.ErrInvalidMove, current.X, current.Y, next.X, next.Y, err)
	}

	current.RemoveAvailable(next.Coord())
	next.RemoveAvailable(current.Coord())

	current.OutgoingPaths = append(current.OutgoingPaths, entity.Path{Direction: direction, Color: game.Turn})

	// landing on a taken point lets the same player move again
	if !next.Taken {
		game.Turn = game.Turn.Opposite()
	}

	next.Taken = true
	game.Current = next.Coord()

	return true, nil
}

// ToggleTurn - hands the move to the other player regardless of the board.
func (that *GameController) ToggleTurn(game *entity.Game) error {
	if !game.IsActive() {
		return apperror.ErrGameIsNotStarted
	}

	game.Turn = game.Turn.Opposite()

	return nil
}
