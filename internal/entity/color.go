package entity

type Color string

const (
	ColorRed  Color = "red"
	ColorBlue Color = "blue"

	// DefaultTurn is the colour a game holds before it is initialised.
	DefaultTurn = ColorRed
)

// Opposite - returns the other player's colour.
func (that Color) Opposite() Color {
	if that == ColorRed {
		return ColorBlue
	}
	return ColorRed
}
