package entity

// Coord addresses a point on the board.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add - returns the coordinate one step away.
func (that Coord) Add(offset Offset) Coord {
	return Coord{X: that.X + offset.DX, Y: that.Y + offset.DY}
}

// Path is a move drawn from the point that holds it.
type Path struct {
	Direction Direction `json:"direction"`
	Color     Color     `json:"color,omitempty"`
}

// Point is one lattice cell. AvailablePoints references neighbours by coordinate,
// the board resolves them.
type Point struct {
	X               int     `json:"x"`
	Y               int     `json:"y"`
	Taken           bool    `json:"taken"`
	OutgoingPaths   []Path  `json:"outgoing_paths"`
	AvailablePoints []Coord `json:"available_points"`
}

func (that *Point) Coord() Coord {
	return Coord{X: that.X, Y: that.Y}
}

// IsAvailable - reports whether a move towards c is still unused.
func (that *Point) IsAvailable(c Coord) bool {
	for _, available := range that.AvailablePoints {
		if available == c {
			return true
		}
	}
	return false
}

// RemoveAvailable - drops c from the available set, keeping the order of the rest.
func (that *Point) RemoveAvailable(c Coord) bool {
	for i, available := range that.AvailablePoints {
		if available == c {
			that.AvailablePoints = append(that.AvailablePoints[:i:i], that.AvailablePoints[i+1:]...)
			return true
		}
	}
	return false
}
