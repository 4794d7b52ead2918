package othello

import (
	"fmt"
	"math/bits"
	"strconv"
)

// directions are the eight steps a capture can run along.
var directions = [8]Position{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Board holds one occupancy plane per color. A Board is never modified after creation.
type Board struct {
	black uint64
	white uint64
}

// NewBoard creates a board with the starting position.
func NewBoard() Board {
	var black, white uint64
	setBit(&black, Position{X: 4, Y: 3}.Index())
	setBit(&black, Position{X: 3, Y: 4}.Index())
	setBit(&white, Position{X: 3, Y: 3}.Index())
	setBit(&white, Position{X: 4, Y: 4}.Index())
	return Board{black: black, white: white}
}

// NewBoardFromPlanes creates a board from a black and white plane.
func NewBoardFromPlanes(black, white uint64) (Board, error) {
	if black&white != 0 {
		return Board{}, fmt.Errorf("invalid board: black and white discs cannot overlap")
	}

	return Board{black: black, white: white}, nil
}

// NewBoardFromPlanesMust creates a board from a black and white plane
// and panics if the board is invalid.
func NewBoardFromPlanesMust(black, white uint64) Board {
	b, err := NewBoardFromPlanes(black, white)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardFromString parses the output of Board.String.
func NewBoardFromString(s string) (Board, error) {
	if len(s) != 32 {
		return Board{}, fmt.Errorf("board string must be 32 characters long, got %d", len(s))
	}

	black, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid black plane: %w", err)
	}

	white, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid white plane: %w", err)
	}

	return NewBoardFromPlanes(black, white)
}

// Stones returns the plane of a color.
func (b Board) Stones(color Color) uint64 {
	if color == White {
		return b.white
	}
	return b.black
}

// StoneAt returns the color of the stone at pos. The bool is false for an empty cell.
func (b Board) StoneAt(pos Position) (Color, bool, error) {
	if !pos.InBounds() {
		return Black, false, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}

	index := pos.Index()
	switch {
	case getBit(b.black, index):
		return Black, true, nil
	case getBit(b.white, index):
		return White, true, nil
	default:
		return Black, false, nil
	}
}

// IsOccupied checks if any stone is at pos.
func (b Board) IsOccupied(pos Position) (bool, error) {
	if !pos.InBounds() {
		return false, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	return getBit(b.black|b.white, pos.Index()), nil
}

// Count returns the number of discs of a color.
func (b Board) Count(color Color) int {
	return bits.OnesCount64(b.Stones(color))
}

// CountDiscs returns the number of discs on the board.
func (b Board) CountDiscs() int {
	return bits.OnesCount64(b.black | b.white)
}

// IsFull checks if every cell is occupied.
func (b Board) IsFull() bool {
	return b.black|b.white == ^uint64(0)
}

// MovesMask returns a bitset with all legal moves for color.
func (b Board) MovesMask(color Color) uint64 {
	me := b.Stones(color)
	opp := b.Stones(color.Other())

	var moves uint64
	for _, l := range allLines {
		for _, offset := range findMovesOnLine(l.extract(me), l.extract(opp), l.length) {
			setBit(&moves, l.at(offset).Index())
		}
	}

	return moves
}

// LegalMoves returns all legal moves for color, sorted by index.
func (b Board) LegalMoves(color Color) []Position {
	mask := b.MovesMask(color)

	moves := make([]Position, 0, bits.OnesCount64(mask))
	for mask != 0 {
		index := bits.TrailingZeros64(mask)
		moves = append(moves, PositionFromIndex(index))
		mask &= mask - 1
	}

	return moves
}

// HasMoves checks if color has any legal move.
func (b Board) HasMoves(color Color) bool {
	return b.MovesMask(color) != 0
}

// IsLegalMove checks if color can play on pos.
func (b Board) IsLegalMove(color Color, pos Position) bool {
	return pos.InBounds() && getBit(b.MovesMask(color), pos.Index())
}

// Flipped returns a bitset with all the opponent discs that would be flipped if color played on pos.
func (b Board) Flipped(color Color, pos Position) uint64 {
	me := b.Stones(color)
	opp := b.Stones(color.Other())

	var flipped uint64
	for _, dir := range directions {
		var run uint64
		cur := pos.Add(dir)
		for cur.InBounds() && getBit(opp, cur.Index()) {
			setBit(&run, cur.Index())
			cur = cur.Add(dir)
		}

		if run != 0 && cur.InBounds() && getBit(me, cur.Index()) {
			flipped |= run
		}
	}

	return flipped
}

// ApplyMove places a stone of color on pos and flips all captured discs.
// The move does not need to capture anything. The receiver is left untouched.
func (b Board) ApplyMove(color Color, pos Position) (Board, error) {
	if !pos.InBounds() {
		return Board{}, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}

	if getBit(b.black|b.white, pos.Index()) {
		return Board{}, fmt.Errorf("%w: %s", ErrOccupied, pos)
	}

	changed := b.Flipped(color, pos)
	setBit(&changed, pos.Index())

	if color == White {
		return Board{black: b.black &^ changed, white: b.white | changed}, nil
	}
	return Board{black: b.black | changed, white: b.white &^ changed}, nil
}

// MustApplyMove is ApplyMove that panics on error.
func (b Board) MustApplyMove(color Color, pos Position) Board {
	next, err := b.ApplyMove(color, pos)
	if err != nil {
		panic(err)
	}
	return next
}

// ASCIIArtLines returns the ascii art lines for the board, marking the legal moves of toMove.
func (b Board) ASCIIArtLines(toMove Color) []string {
	moves := b.MovesMask(toMove)
	lines := make([]string, MaxY+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for y := range MaxY {
		row := fmt.Sprintf("%d ", y+1)

		for x := range MaxX {
			index := Position{X: x, Y: y}.Index()

			switch {
			case getBit(b.white, index):
				row += "○ "
			case getBit(b.black, index):
				row += "● "
			case getBit(moves, index):
				row += "· "
			default:
				row += "  "
			}
		}

		lines[y+1] = row + "|"
	}

	lines[MaxY+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print(toMove Color) {
	for _, row := range b.ASCIIArtLines(toMove) {
		fmt.Println(row)
	}
}

// String returns the black and white planes as hex.
func (b Board) String() string {
	return fmt.Sprintf("%016x%016x", b.black, b.white)
}
