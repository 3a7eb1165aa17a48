package entity

// Game is one session. A game without a board is idle.
type Game struct {
	ID      string `json:"id"`
	Board   *Board `json:"board,omitempty"`
	Current Coord  `json:"current"`
	Turn    Color  `json:"turn"`
}

func (that *Game) IsActive() bool {
	return that.Board != nil
}

func (that *Game) CurrentPoint() (*Point, bool) {
	if !that.IsActive() {
		return nil, false
	}
	return that.Board.PointAt(that.Current.X, that.Current.Y)
}

func (that *Game) IsCurrentPoint(c Coord) bool {
	return that.IsActive() && that.Current == c
}

// IsAvailableFromCurrent - reports whether a move from the current point to c is legal.
func (that *Game) IsAvailableFromCurrent(c Coord) bool {
	current, ok := that.CurrentPoint()
	if !ok {
		return false
	}
	return current.IsAvailable(c)
}

// PointView is the read-only projection of a point used for rendering.
type PointView struct {
	X                      int    `json:"x"`
	Y                      int    `json:"y"`
	Taken                  bool   `json:"taken"`
	OutgoingPaths          []Path `json:"outgoing_paths"`
	IsCurrentPoint         bool   `json:"is_current_point"`
	IsAvailableFromCurrent bool   `json:"is_available_from_current"`
	IsGoal                 bool   `json:"is_goal"`
}

func (that *Game) View(x, y int) (PointView, bool) {
	if !that.IsActive() {
		return PointView{}, false
	}

	point, ok := that.Board.PointAt(x, y)
	if !ok {
		return PointView{}, false
	}

	paths := make([]Path, len(point.OutgoingPaths))
	copy(paths, point.OutgoingPaths)

	return PointView{
		X:                      x,
		Y:                      y,
		Taken:                  point.Taken,
		OutgoingPaths:          paths,
		IsCurrentPoint:         that.IsCurrentPoint(point.Coord()),
		IsAvailableFromCurrent: that.IsAvailableFromCurrent(point.Coord()),
		IsGoal:                 that.Board.IsGoal(x, y),
	}, true
}
