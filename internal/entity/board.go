package entity

type Board struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Points []Point `json:"points"`
}

// NewBoard - builds a board with odd dimensions, even sizes grow by one.
// Points on the outer frame start taken.
func NewBoard(width, height int) *Board {
	width, height = forceOdd(width), forceOdd(height)

	board := &Board{
		Width:  width,
		Height: height,
		Points: make([]Point, width*height),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			point := &board.Points[board.index(x, y)]
			point.X = x
			point.Y = y
			point.OutgoingPaths = []Path{}
			point.AvailablePoints = board.neighbors(x, y)
			point.Taken = board.IsBoundary(x, y)
		}
	}

	return board
}

func forceOdd(size int) int {
	if size < 1 {
		return 1
	}
	if size%2 == 0 {
		return size + 1
	}
	return size
}

// neighbors resolves geometry offsets into in-bounds coordinates.
func (that *Board) neighbors(x, y int) []Coord {
	offsets := NeighborOffsets(x, y, that.Width, that.Height)
	coords := make([]Coord, 0, len(offsets))

	for _, offset := range offsets {
		next := Coord{X: x, Y: y}.Add(offset)
		if that.Contains(next.X, next.Y) {
			coords = append(coords, next)
		}
	}

	return coords
}

func (that *Board) index(x, y int) int {
	return y*that.Width + x
}

func (that *Board) Contains(x, y int) bool {
	return x >= 0 && x < that.Width && y >= 0 && y < that.Height
}

// PointAt - bounds-checked lookup, false when (x, y) is off the board.
func (that *Board) PointAt(x, y int) (*Point, bool) {
	if !that.Contains(x, y) {
		return nil, false
	}
	return &that.Points[that.index(x, y)], true
}

func (that *Board) IsBoundary(x, y int) bool {
	return x == 0 || x == that.Width-1 || y == 0 || y == that.Height-1
}

func (that *Board) Center() Coord {
	return Coord{X: (that.Width - 1) / 2, Y: (that.Height - 1) / 2}
}

// IsGoal - goal posts sit on the top and bottom rows, one column either side of the centre.
func (that *Board) IsGoal(x, y int) bool {
	if y != 0 && y != that.Height-1 {
		return false
	}

	center := (that.Width - 1) / 2
	return x == center-1 || x == center+1
}
