package apperror

import "errors"

var (
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrInvalidMove      = errors.New("invalid move")
)
