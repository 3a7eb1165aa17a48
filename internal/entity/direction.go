package entity

import (
	"errors"
	"fmt"
)

type Direction string

const (
	DirectionUp        Direction = "up"
	DirectionDown      Direction = "down"
	DirectionLeft      Direction = "left"
	DirectionRight     Direction = "right"
	DirectionUpLeft    Direction = "up-left"
	DirectionUpRight   Direction = "up-right"
	DirectionDownLeft  Direction = "down-left"
	DirectionDownRight Direction = "down-right"
)

var ErrInvalidDirection = errors.New("invalid direction")

// Offset is a single step on the lattice. Y grows downwards.
type Offset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

var directionOffsets = map[Direction]Offset{
	DirectionUp:        {DX: 0, DY: -1},
	DirectionDown:      {DX: 0, DY: 1},
	DirectionLeft:      {DX: -1, DY: 0},
	DirectionRight:     {DX: 1, DY: 0},
	DirectionUpLeft:    {DX: -1, DY: -1},
	DirectionUpRight:   {DX: 1, DY: -1},
	DirectionDownLeft:  {DX: -1, DY: 1},
	DirectionDownRight: {DX: 1, DY: 1},
}

// DirectionOf - classifies a single step between two adjacent points.
func DirectionOf(dx, dy int) (Direction, error) {
	for direction, offset := range directionOffsets {
		if offset.DX == dx && offset.DY == dy {
			return direction, nil
		}
	}

	return "", fmt.Errorf("%w: dx=%d dy=%d", ErrInvalidDirection, dx, dy)
}

// Offset - returns the step for the direction, false for an unknown label.
func (that Direction) Offset() (Offset, bool) {
	offset, ok := directionOffsets[that]
	return offset, ok
}
