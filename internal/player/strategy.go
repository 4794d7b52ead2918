package player

import (
	"math/rand"

	"github.com/lk16/reversi/internal/othello"
)

// Strategy picks one of the legal moves. moves is never empty.
type Strategy interface {
	Choose(board othello.Board, color othello.Color, moves []othello.Position) othello.Position
}

// FirstMove always picks the first legal move.
type FirstMove struct{}

func (FirstMove) Choose(_ othello.Board, _ othello.Color, moves []othello.Position) othello.Position {
	return moves[0]
}

// Random picks a legal move uniformly at random. It is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random strategy with a fixed seed, so games can be replayed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))} //nolint:gosec
}

func (r *Random) Choose(_ othello.Board, _ othello.Color, moves []othello.Position) othello.Position {
	return moves[r.rng.Intn(len(moves))]
}
