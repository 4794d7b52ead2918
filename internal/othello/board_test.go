package othello //nolint:testpackage

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func positionsOf(plane uint64) []Position {
	positions := make([]Position, 0)
	for index := range 64 {
		if getBit(plane, index) {
			positions = append(positions, PositionFromIndex(index))
		}
	}
	return positions
}

func requireBoard(t *testing.T, board Board, black, white []Position) {
	t.Helper()

	require.ElementsMatch(t, black, positionsOf(board.black))
	require.ElementsMatch(t, white, positionsOf(board.white))
}

func TestNewBoard(t *testing.T) {
	board := NewBoard()

	requireBoard(t, board,
		[]Position{{X: 3, Y: 4}, {X: 4, Y: 3}},
		[]Position{{X: 3, Y: 3}, {X: 4, Y: 4}},
	)

	require.Equal(t, 4, board.CountDiscs())
	require.Equal(t, 2, board.Count(Black))
	require.Equal(t, 2, board.Count(White))
	require.False(t, board.IsFull())

	want := map[Position]Color{
		{X: 3, Y: 3}: White,
		{X: 4, Y: 4}: White,
		{X: 3, Y: 4}: Black,
		{X: 4, Y: 3}: Black,
	}

	for index := range 64 {
		pos := PositionFromIndex(index)
		color, ok, err := board.StoneAt(pos)
		require.NoError(t, err)

		wantColor, wantOK := want[pos]
		require.Equal(t, wantOK, ok, "position %s", pos)
		if wantOK {
			require.Equal(t, wantColor, color, "position %s", pos)
		}
	}
}

func TestNewBoardFromPlanes(t *testing.T) {
	tests := []struct {
		name       string
		black      uint64
		white      uint64
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:  "empty board",
			black: 0x0000000000000000,
			white: 0x0000000000000000,
		},
		{
			name:  "start board",
			black: 0x0000000810000000,
			white: 0x0000001008000000,
		},
		{
			name:       "overlapping planes",
			black:      0x0000000000000001,
			white:      0x0000000000000001,
			wantErr:    true,
			wantErrMsg: "invalid board: black and white discs cannot overlap",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := NewBoardFromPlanes(test.black, test.white)
			if test.wantErr {
				require.Error(t, err)
				require.Equal(t, test.wantErrMsg, err.Error())
				require.Panics(t, func() { NewBoardFromPlanesMust(test.black, test.white) })
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.black, board.Stones(Black))
			require.Equal(t, test.white, board.Stones(White))
		})
	}
}

func TestNewBoardStartPlanes(t *testing.T) {
	require.Equal(t, NewBoardFromPlanesMust(0x0000000810000000, 0x0000001008000000), NewBoard())
}

func TestBoardString(t *testing.T) {
	board := NewBoard()
	require.Equal(t, "00000008100000000000001008000000", board.String())

	parsed, err := NewBoardFromString(board.String())
	require.NoError(t, err)
	require.Equal(t, board, parsed)

	_, err = NewBoardFromString("abc")
	require.Error(t, err)
	require.Equal(t, "board string must be 32 characters long, got 3", err.Error())

	_, err = NewBoardFromString("zz000008100000000000001008000000")
	require.ErrorContains(t, err, "invalid black plane")

	_, err = NewBoardFromString("0000000810000000zz00001008000000")
	require.ErrorContains(t, err, "invalid white plane")

	_, err = NewBoardFromString("00000000000000010000000000000001")
	require.ErrorContains(t, err, "cannot overlap")
}

func TestBoardOutOfBounds(t *testing.T) {
	board := NewBoard()

	for _, pos := range []Position{{X: 8, Y: 0}, {X: -1, Y: 3}, {X: 0, Y: 8}, {X: 3, Y: -1}, NoMove} {
		_, ok, err := board.StoneAt(pos)
		require.ErrorIs(t, err, ErrOutOfBounds)
		require.False(t, ok)

		_, err = board.IsOccupied(pos)
		require.ErrorIs(t, err, ErrOutOfBounds)

		_, err = board.ApplyMove(Black, pos)
		require.ErrorIs(t, err, ErrOutOfBounds)

		require.Panics(t, func() { board.MustApplyMove(White, pos) })
		require.False(t, board.IsLegalMove(Black, pos))
	}

	_, _, err := board.StoneAt(Position{X: 8, Y: 0})
	require.Equal(t, "position out of bounds: (8, 0)", err.Error())
}

func TestBoardLegalMovesStart(t *testing.T) {
	board := NewBoard()

	moves := board.LegalMoves(Black)
	require.Equal(t, []Position{{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 5, Y: 4}, {X: 4, Y: 5}}, moves)
	require.Equal(t, uint64(1<<19|1<<26|1<<37|1<<44), board.MovesMask(Black))

	moves = board.LegalMoves(White)
	require.ElementsMatch(t, []Position{{X: 4, Y: 2}, {X: 5, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 5}}, moves)

	require.True(t, board.HasMoves(Black))
	require.True(t, board.IsLegalMove(Black, Position{X: 2, Y: 3}))
	require.False(t, board.IsLegalMove(Black, Position{X: 0, Y: 0}))
	require.False(t, board.IsLegalMove(Black, Position{X: 3, Y: 3}))
}

func TestBoardApplyMoveStart(t *testing.T) {
	start := NewBoard()

	board, err := start.ApplyMove(Black, Position{X: 2, Y: 3})
	require.NoError(t, err)
	requireBoard(t, board,
		[]Position{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 3}},
		[]Position{{X: 4, Y: 4}},
	)

	// The start board is left untouched.
	require.Equal(t, NewBoard(), start)
}

func TestBoardGameSequence(t *testing.T) {
	board := NewBoard()

	board = board.MustApplyMove(Black, Position{X: 3, Y: 2})
	requireBoard(t, board,
		[]Position{{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 3}},
		[]Position{{X: 4, Y: 4}},
	)
	require.ElementsMatch(t, []Position{{X: 2, Y: 4}, {X: 4, Y: 2}, {X: 2, Y: 2}}, board.LegalMoves(White))

	board = board.MustApplyMove(White, Position{X: 4, Y: 2})
	requireBoard(t, board,
		[]Position{{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}},
		[]Position{{X: 4, Y: 2}, {X: 4, Y: 3}, {X: 4, Y: 4}},
	)

	// Covers both diagonal families: f2 captures down-left, f6 captures up-left.
	require.ElementsMatch(t, []Position{
		{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}, {X: 5, Y: 4}, {X: 5, Y: 5},
	}, board.LegalMoves(Black))
}

func TestBoardApplyMoveCaptures(t *testing.T) {
	tests := []struct {
		name      string
		black     uint64
		white     uint64
		color     Color
		move      Position
		wantBlack []Position
		wantWhite []Position
	}{
		{
			name:      "no adjacent opponent",
			black:     0x0000000810000000,
			white:     0x0000001008000000,
			color:     Black,
			move:      Position{X: 0, Y: 0},
			wantBlack: []Position{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 4, Y: 3}},
			wantWhite: []Position{{X: 3, Y: 3}, {X: 4, Y: 4}},
		},
		{
			name:      "run to the edge is not captured",
			black:     0,
			white:     1<<0 | 1<<1,
			color:     Black,
			move:      Position{X: 2, Y: 0},
			wantBlack: []Position{{X: 2, Y: 0}},
			wantWhite: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}},
		},
		{
			name:      "long diagonal run",
			black:     1 << 63,
			white:     1<<9 | 1<<18 | 1<<27 | 1<<36 | 1<<45 | 1<<54,
			color:     Black,
			move:      Position{X: 0, Y: 0},
			wantBlack: []Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}, {X: 5, Y: 5}, {X: 6, Y: 6}, {X: 7, Y: 7}},
			wantWhite: []Position{},
		},
		{
			name:      "anti diagonal from the corner",
			black:     1<<14 | 1<<21,
			white:     1 << 28,
			color:     White,
			move:      Position{X: 7, Y: 0},
			wantBlack: []Position{},
			wantWhite: []Position{{X: 7, Y: 0}, {X: 6, Y: 1}, {X: 5, Y: 2}, {X: 4, Y: 3}},
		},
		{
			name:      "capture in several directions",
			black:     1<<0 | 1<<4 | 1<<32,
			white:     1<<1 | 1<<3 | 1<<10 | 1<<16 | 1<<24,
			color:     Black,
			move:      Position{X: 2, Y: 0},
			wantBlack: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}},
			wantWhite: []Position{{X: 2, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
		},
		{
			name:      "white captures",
			black:     1<<9 | 1<<10,
			white:     1 << 11,
			color:     White,
			move:      Position{X: 0, Y: 1},
			wantBlack: []Position{},
			wantWhite: []Position{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := NewBoardFromPlanesMust(test.black, test.white)

			next, err := board.ApplyMove(test.color, test.move)
			require.NoError(t, err)
			requireBoard(t, next, test.wantBlack, test.wantWhite)
			require.Equal(t, board.CountDiscs()+1, next.CountDiscs())
		})
	}
}

func TestBoardApplyMoveOccupied(t *testing.T) {
	board := NewBoard()

	_, err := board.ApplyMove(Black, Position{X: 3, Y: 3})
	require.ErrorIs(t, err, ErrOccupied)
	require.Equal(t, "position is occupied: d4", err.Error())
}

// flippedReference is a cell-by-cell version of Flipped used to cross-check the line based move generation.
func flippedReference(board Board, color Color, pos Position) int {
	flipped := 0
	for _, dir := range directions {
		run := 0
		cur := pos.Add(dir)
		for cur.InBounds() {
			stone, ok, err := board.StoneAt(cur)
			if err != nil || !ok {
				run = 0
				break
			}
			if stone == color {
				break
			}
			run++
			cur = cur.Add(dir)
		}
		if !cur.InBounds() {
			run = 0
		}
		flipped += run
	}
	return flipped
}

func requireBoardInvariants(t *testing.T, board Board) {
	t.Helper()

	require.Zero(t, board.black&board.white)

	for index := range 64 {
		pos := PositionFromIndex(index)

		_, ok, err := board.StoneAt(pos)
		require.NoError(t, err)

		occupied, err := board.IsOccupied(pos)
		require.NoError(t, err)
		require.Equal(t, ok, occupied)
	}

	for _, color := range []Color{Black, White} {
		var want uint64
		for index := range 64 {
			pos := PositionFromIndex(index)
			occupied, _ := board.IsOccupied(pos)
			if !occupied && flippedReference(board, color, pos) > 0 {
				setBit(&want, index)
			}
		}
		require.Equal(t, want, board.MovesMask(color), "board %s color %s", board, color)

		moves := board.LegalMoves(color)
		require.Len(t, moves, bits.OnesCount64(want))
		for _, move := range moves {
			require.Equal(t, bits.OnesCount64(board.Flipped(color, move)), flippedReference(board, color, move))
		}
	}
}

func TestBoardRandomGames(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) //nolint:gosec

	for range 50 {
		board := NewBoard()
		turn := Black

		for {
			requireBoardInvariants(t, board)

			moves := board.LegalMoves(turn)
			if len(moves) == 0 {
				if !board.HasMoves(turn.Other()) {
					break
				}
				turn = turn.Other()
				continue
			}

			require.Equal(t, moves, board.LegalMoves(turn))

			move := moves[rng.Intn(len(moves))]
			flipped := board.Flipped(turn, move)
			next := board.MustApplyMove(turn, move)

			require.Equal(t, board.CountDiscs()+1, next.CountDiscs())
			require.Equal(t, board.Count(turn)+bits.OnesCount64(flipped)+1, next.Count(turn))
			require.Equal(t, board.Stones(turn.Other())&^flipped, next.Stones(turn.Other()))

			board = next
			turn = turn.Other()
		}
	}
}

func TestBoardASCIIArtLines(t *testing.T) {
	lines := NewBoard().ASCIIArtLines(Black)

	require.Equal(t, []string{
		"+-a-b-c-d-e-f-g-h-+",
		"1                 |",
		"2                 |",
		"3       ·         |",
		"4     · ○ ●       |",
		"5       ● ○ ·     |",
		"6         ·       |",
		"7                 |",
		"8                 |",
		"+-----------------+",
	}, lines)
}
