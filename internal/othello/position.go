package othello

import (
	"fmt"
	"strings"
)

const (
	MaxX = 8
	MaxY = 8
)

// Position is a cell on the board. X is the column, Y is the row.
type Position struct {
	X int
	Y int
}

// NoMove is the sentinel for "no move": there was no preceding opponent move, or the side to move passed.
var NoMove = Position{X: -1, Y: -1}

// InBounds checks if the position is a cell on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < MaxX && p.Y >= 0 && p.Y < MaxY
}

// Add returns the component-wise sum. The result may be out of bounds.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Index returns the bit offset of the position in a plane.
// It does not check bounds, callers must do so.
func (p Position) Index() int {
	return p.X + MaxX*p.Y
}

// PositionFromIndex is the inverse of Index.
func PositionFromIndex(index int) Position {
	return Position{X: index % MaxX, Y: index / MaxX}
}

// String returns the field notation, e.g. "c4".
func (p Position) String() string {
	if p == NoMove {
		return "--"
	}

	if !p.InBounds() {
		return fmt.Sprintf("(%d, %d)", p.X, p.Y)
	}

	return string([]byte{byte('a' + p.X), byte('1' + p.Y)})
}

// ParsePosition converts a field notation (e.g. "a1", "h8") to a Position.
// NoMove is returned if the field is "--", "ps" or "pa".
func ParsePosition(field string) (Position, error) {
	if len(field) != 2 {
		return Position{}, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if field == "--" || field == "ps" || field == "pa" {
		return NoMove, nil
	}

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Position{}, fmt.Errorf("invalid field: %q", field)
	}

	return Position{X: int(field[0] - 'a'), Y: int(field[1] - '1')}, nil
}
