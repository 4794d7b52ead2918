package othello

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Move is a stone placed by a color. Position is NoMove for a pass.
type Move struct {
	Color    Color
	Position Position

	// automatic is set for passes recorded by PushMove.
	automatic bool
}

// IsPass checks if the move is a pass.
func (m Move) IsPass() bool {
	return m.Position == NoMove
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s", m.Color, m.Position)
}

// Game represents an Othello game, either complete or in progress.
type Game struct {
	id uuid.UUID

	// moves is the list of moves in the game, including passes.
	moves []Move

	// boards[i] is the board before moves[i] is played, the last board is the current one.
	boards []Board

	// startTurn is the color that moves first from the start board.
	startTurn Color
}

// NewGameWithStart creates a new empty game with a custom start board.
func NewGameWithStart(start Board, turn Color) *Game {
	return &Game{
		id:        uuid.New(),
		moves:     make([]Move, 0),
		boards:    []Board{start},
		startTurn: turn,
	}
}

// NewGame creates a new game from the starting position, black to move.
func NewGame() *Game {
	return NewGameWithStart(NewBoard(), Black)
}

// NewGameFromMoves creates a new game from a list of non-pass moves.
func NewGameFromMoves(moves []Position) (*Game, error) {
	game := NewGame()

	for _, move := range moves {
		if err := game.PushMove(move); err != nil {
			return nil, fmt.Errorf("failed to push move: %w", err)
		}
	}

	return game, nil
}

// ID returns the unique game ID.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.boards[len(g.boards)-1]
}

// Turn returns the color to move.
func (g *Game) Turn() Color {
	if len(g.moves) == 0 {
		return g.startTurn
	}
	return g.moves[len(g.moves)-1].Color.Other()
}

// Moves returns a copy of the moves played so far, including passes.
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// Placements returns the moves that placed a stone.
func (g *Game) Placements() []Move {
	return lo.Reject(g.moves, func(m Move, _ int) bool {
		return m.IsPass()
	})
}

// PushMove plays a move for the color to move.
func (g *Game) PushMove(pos Position) error {
	board := g.Board()
	turn := g.Turn()

	if !board.IsLegalMove(turn, pos) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, pos, turn)
	}

	g.push(Move{Color: turn, Position: pos}, board.MustApplyMove(turn, pos))

	// Add pass move if current player doesn't have moves but opponent does.
	board = g.Board()
	turn = g.Turn()
	if !board.HasMoves(turn) && board.HasMoves(turn.Other()) {
		g.push(Move{Color: turn, Position: NoMove, automatic: true}, board)
	}

	return nil
}

// Pass passes the turn. This is only allowed when the color to move has no legal moves
// and the game is not over.
func (g *Game) Pass() error {
	board := g.Board()
	turn := g.Turn()

	if g.IsOver() {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}

	if board.HasMoves(turn) {
		return fmt.Errorf("%w: %s cannot pass with moves available", ErrIllegalMove, turn)
	}

	g.push(Move{Color: turn, Position: NoMove}, board)
	return nil
}

func (g *Game) push(move Move, next Board) {
	g.moves = append(g.moves, move)
	g.boards = append(g.boards, next)
}

// PopMove undoes the last move. An automatic pass is undone together with the move before it.
func (g *Game) PopMove() {
	if len(g.moves) == 0 {
		return
	}

	poppedMoves := 1
	// Prevent having a last board without moves.
	if g.moves[len(g.moves)-1].automatic && len(g.moves) > 1 {
		poppedMoves = 2
	}

	g.moves = g.moves[:len(g.moves)-poppedMoves]
	g.boards = g.boards[:len(g.boards)-poppedMoves]
}

// IsOver checks if neither color can move.
func (g *Game) IsOver() bool {
	board := g.Board()
	return board.IsFull() || (!board.HasMoves(Black) && !board.HasMoves(White))
}

// Winner returns the color with the most discs. The bool is false on a draw.
func (g *Game) Winner() (Color, bool) {
	board := g.Board()
	black, white := board.Count(Black), board.Count(White)

	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return Black, false
	}
}
