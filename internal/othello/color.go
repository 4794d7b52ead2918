package othello

// Color is the color of a stone. Black moves first.
type Color int

const (
	Black Color = iota
	White
)

// Other returns the opponent color.
func (c Color) Other() Color {
	return Black + White - c
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}
