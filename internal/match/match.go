package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/player"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Config controls a self-play match.
type Config struct {
	Games   int
	Workers int
}

// StrategyFactory creates the strategy for one side of one game.
// Strategies are not shared between games, so they don't need to be safe for concurrent use.
type StrategyFactory func(gameIndex int, color othello.Color) player.Strategy

// Result is the outcome of one game.
type Result struct {
	GameIndex  int
	GameID     uuid.UUID
	BlackDiscs int
	WhiteDiscs int
	Moves      int
	Winner     othello.Color
	Draw       bool
}

// Run plays cfg.Games independent games, at most cfg.Workers at the same time.
// Results are returned in game index order.
func Run(ctx context.Context, cfg Config, newStrategy StrategyFactory) ([]Result, error) {
	if cfg.Games < 0 {
		return nil, fmt.Errorf("invalid game count: %d", cfg.Games)
	}

	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid worker count: %d", cfg.Workers)
	}

	results := make([]Result, cfg.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range cfg.Games {
		g.Go(func() error {
			result, err := playGame(ctx, i, newStrategy(i, othello.Black), newStrategy(i, othello.White))
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}

			// Each goroutine writes its own index.
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

var errTooManyMoves = errors.New("game did not end")

func playGame(ctx context.Context, index int, black, white player.Strategy) (Result, error) {
	game := othello.NewGame()

	players := map[othello.Color]*player.Player{
		othello.Black: player.NewPlayer(othello.Black, black),
		othello.White: player.NewPlayer(othello.White, white),
	}

	// Every turn either places a disc or passes, and two passes in a row end the game.
	const maxTurns = 2 * 64

	lastMove := othello.NoMove
	for turn := 0; !game.IsOver(); turn++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if turn == maxTurns {
			return Result{}, errTooManyMoves
		}

		color := game.Turn()
		move, err := players[color].ChooseMove(lastMove)
		if err != nil {
			return Result{}, err
		}

		if move == othello.NoMove {
			err = game.Pass()
		} else {
			err = game.PushMove(move)
		}
		if err != nil {
			return Result{}, err
		}

		lastMove = move

		// The game adds passes automatically, the player that was skipped still needs to know about it.
		if game.Turn() == color && !game.IsOver() {
			if _, err = players[color.Other()].ChooseMove(lastMove); err != nil {
				return Result{}, err
			}
			lastMove = othello.NoMove
		}
	}

	board := game.Board()
	winner, won := game.Winner()

	result := Result{
		GameIndex:  index,
		GameID:     game.ID(),
		BlackDiscs: board.Count(othello.Black),
		WhiteDiscs: board.Count(othello.White),
		Moves:      len(game.Placements()),
		Winner:     winner,
		Draw:       !won,
	}

	slog.Debug("Game finished",
		"game_id", result.GameID,
		"black", result.BlackDiscs,
		"white", result.WhiteDiscs,
		"moves", result.Moves,
	)

	return result, nil
}

// Summary aggregates the results of a match.
type Summary struct {
	Games             int
	BlackWins         int
	WhiteWins         int
	Draws             int
	AverageBlackDiscs float64
	AverageWhiteDiscs float64
	AverageMoves      float64
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	summary := Summary{Games: len(results)}

	summary.BlackWins = lo.CountBy(results, func(r Result) bool {
		return !r.Draw && r.Winner == othello.Black
	})
	summary.WhiteWins = lo.CountBy(results, func(r Result) bool {
		return !r.Draw && r.Winner == othello.White
	})
	summary.Draws = lo.CountBy(results, func(r Result) bool {
		return r.Draw
	})

	if len(results) == 0 {
		return summary
	}

	n := float64(len(results))
	summary.AverageBlackDiscs = float64(lo.SumBy(results, func(r Result) int { return r.BlackDiscs })) / n
	summary.AverageWhiteDiscs = float64(lo.SumBy(results, func(r Result) int { return r.WhiteDiscs })) / n
	summary.AverageMoves = float64(lo.SumBy(results, func(r Result) int { return r.Moves })) / n

	return summary
}
