package othello

// Direction is the step between two consecutive cells of a line.
type Direction Position

var (
	Right     = Direction{X: 1, Y: 0}
	Down      = Direction{X: 0, Y: 1}
	DownRight = Direction{X: 1, Y: 1}
	DownLeft  = Direction{X: -1, Y: 1}
)

// line is a row, column or diagonal, walked from a cell on the board edge.
type line struct {
	start  Position
	dir    Direction
	length int
}

// allLines contains every row, column and diagonal of the board.
var allLines = makeLines()

func makeLines() []line {
	lines := make([]line, 0, 2*MaxY+2*(MaxX+MaxY-1))

	for y := range MaxY {
		lines = append(lines, newLine(Position{X: 0, Y: y}, Right))
	}

	for x := range MaxX {
		lines = append(lines, newLine(Position{X: x, Y: 0}, Down))
	}

	// Down-right diagonals start on the left column or the top row.
	for y := range MaxY {
		lines = append(lines, newLine(Position{X: 0, Y: y}, DownRight))
	}
	for x := 1; x < MaxX; x++ {
		lines = append(lines, newLine(Position{X: x, Y: 0}, DownRight))
	}

	// Down-left diagonals start on the top row or the right column.
	for x := range MaxX {
		lines = append(lines, newLine(Position{X: x, Y: 0}, DownLeft))
	}
	for y := 1; y < MaxY; y++ {
		lines = append(lines, newLine(Position{X: MaxX - 1, Y: y}, DownLeft))
	}

	return lines
}

func newLine(start Position, dir Direction) line {
	l := line{start: start, dir: dir}
	for l.length < 8 && l.at(l.length).InBounds() {
		l.length++
	}
	return l
}

// at returns the i-th cell of the line.
func (l line) at(i int) Position {
	return l.start.Add(Position{X: i * l.dir.X, Y: i * l.dir.Y})
}

// extract packs the cells of the line into a byte: bit i is set if the i-th cell is set in plane.
// Bits at or beyond the line length are zero.
func (l line) extract(plane uint64) uint8 {
	switch l.dir {
	case Right:
		return extractRow(plane, l.start.Y)
	case Down:
		return extractCol(plane, l.start.X)
	default:
		packed, _ := extractDiagonal(plane, l.start, l.dir)
		return packed
	}
}

func extractRow(plane uint64, row int) uint8 {
	return uint8(plane >> (MaxX * row))
}

func extractCol(plane uint64, col int) uint8 {
	var packed uint8
	for y := range MaxY {
		packed |= uint8((plane>>(col+MaxX*y))&1) << y
	}
	return packed
}

// extractDiagonal returns the packed diagonal starting at start and its length.
func extractDiagonal(plane uint64, start Position, dir Direction) (uint8, int) {
	l := newLine(start, dir)

	var packed uint8
	for i := range l.length {
		if getBit(plane, l.at(i).Index()) {
			packed |= 1 << i
		}
	}
	return packed, l.length
}

// findMovesOnLine returns the offsets on a line where mine can play and capture along that line.
// An empty offset is a move if it is adjacent to a non-empty run of theirs that is closed by mine.
// The result is sorted ascending and only contains offsets below length.
func findMovesOnLine(mine, theirs uint8, length int) []int {
	var moves []int

	for i := range length {
		if (mine|theirs)&(1<<i) != 0 {
			continue
		}

		if closesRun(mine, theirs, length, i, 1) || closesRun(mine, theirs, length, i, -1) {
			moves = append(moves, i)
		}
	}

	return moves
}

// closesRun scans from offset i in step direction for a run of theirs followed by mine.
func closesRun(mine, theirs uint8, length, i, step int) bool {
	j := i + step
	for j >= 0 && j < length && theirs&(1<<j) != 0 {
		j += step
	}

	if j == i+step || j < 0 || j >= length {
		return false
	}

	return mine&(1<<j) != 0
}
