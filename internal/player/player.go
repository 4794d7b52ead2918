package player

import (
	"fmt"
	"log/slog"

	"github.com/lk16/reversi/internal/othello"
)

// Player keeps track of the board of one side of a game and picks its moves.
type Player struct {
	board    othello.Board
	color    othello.Color
	strategy Strategy

	// started is set once ChooseMove succeeded, only black may receive NoMove before that.
	started bool
}

// NewPlayer creates a player for color, starting from the start position.
func NewPlayer(color othello.Color, strategy Strategy) *Player {
	return &Player{
		board:    othello.NewBoard(),
		color:    color,
		strategy: strategy,
	}
}

// Board returns the board as the player sees it.
func (p *Player) Board() othello.Board {
	return p.board
}

// Color returns the color the player plays with.
func (p *Player) Color() othello.Color {
	return p.color
}

// ChooseMove applies the opponent's move and returns the move of the player.
// Pass othello.NoMove if the opponent did not move, either because this is black's first move of the game or because
// the opponent passed. A pass is rejected with othello.ErrIllegalMove if the opponent had a legal move.
// The returned move is othello.NoMove if the player has to pass.
func (p *Player) ChooseMove(opponentMove othello.Position) (othello.Position, error) {
	opponent := p.color.Other()

	firstMove := !p.started && p.color == othello.Black

	switch {
	case opponentMove == othello.NoMove:
		if !firstMove && p.board.HasMoves(opponent) {
			return othello.NoMove, fmt.Errorf("opponent move: %w: pass with moves available", othello.ErrIllegalMove)
		}
	case !p.board.IsLegalMove(opponent, opponentMove):
		return othello.NoMove, fmt.Errorf("opponent move: %w: %s", othello.ErrIllegalMove, opponentMove)
	default:
		p.board = p.board.MustApplyMove(opponent, opponentMove)
	}

	p.started = true

	moves := p.board.LegalMoves(p.color)
	if len(moves) == 0 {
		slog.Debug("No moves, passing", "color", p.color, "board", p.board)
		return othello.NoMove, nil
	}

	move := p.strategy.Choose(p.board, p.color, moves)
	p.board = p.board.MustApplyMove(p.color, move)

	slog.Debug("Chose move", "color", p.color, "move", move, "options", len(moves), "board", p.board)
	return move, nil
}
