package usecase

import (
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/papersoccer/internal/entity"
)

type mockGameController struct {
	mock.Mock
}

func (that *mockGameController) Initialize(width, height int) *entity.Game {
	args := that.Called(width, height)
	return args.Get(0).(*entity.Game)
}

func (that *mockGameController) Reset(game *entity.Game, width, height int) *entity.Game {
	args := that.Called(game, width, height)
	return args.Get(0).(*entity.Game)
}

func (that *mockGameController) ApplyMove(game *entity.Game, target entity.Coord) (bool, error) {
	args := that.Called(game, target)
	return args.Bool(0), args.Error(1)
}

func (that *mockGameController) ToggleTurn(game *entity.Game) error {
	args := that.Called(game)
	return args.Error(0)
}
