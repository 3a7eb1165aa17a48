package entity

var allOffsets = [8]Offset{
	{DX: -1, DY: 0}, {DX: 1, DY: 0}, {DX: 0, DY: -1}, {DX: 0, DY: 1},
	{DX: -1, DY: -1}, {DX: 1, DY: -1}, {DX: -1, DY: 1}, {DX: 1, DY: 1},
}

// NeighborOffsets - returns the steps allowed from (x, y) on a width x height board.
// Corners win over edges and edges win over the interior. Points on the frame may only
// move inwards, never along the frame.
func NeighborOffsets(x, y, width, height int) []Offset {
	top, bottom := y == 0, y == height-1
	left, right := x == 0, x == width-1

	switch {
	case top && left:
		return []Offset{{DX: 1, DY: 1}}
	case top && right:
		return []Offset{{DX: -1, DY: 1}}
	case bottom && left:
		return []Offset{{DX: 1, DY: -1}}
	case bottom && right:
		return []Offset{{DX: -1, DY: -1}}
	case top:
		return []Offset{{DX: -1, DY: 1}, {DX: 0, DY: 1}, {DX: 1, DY: 1}}
	case bottom:
		return []Offset{{DX: -1, DY: -1}, {DX: 0, DY: -1}, {DX: 1, DY: -1}}
	case left:
		return []Offset{{DX: 1, DY: 0}, {DX: 1, DY: -1}, {DX: 1, DY: 1}}
	case right:
		return []Offset{{DX: -1, DY: 0}, {DX: -1, DY: -1}, {DX: -1, DY: 1}}
	default:
		offsets := allOffsets
		return offsets[:]
	}
}
