package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/player"
)

func main() {
	config.SetLogLevel()

	cfg := config.LoadSelfPlayConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newStrategy := func(gameIndex int, color othello.Color) player.Strategy {
		return player.NewRandom(cfg.Seed + int64(2*gameIndex) + int64(color))
	}

	before := time.Now()

	results, err := match.Run(ctx, match.Config{Games: cfg.Games, Workers: cfg.Workers}, newStrategy)
	if err != nil {
		slog.Error("Self-play failed", "error", err)
		os.Exit(1)
	}

	summary := match.Summarize(results)

	slog.Info("Self-play finished",
		"games", summary.Games,
		"black_wins", summary.BlackWins,
		"white_wins", summary.WhiteWins,
		"draws", summary.Draws,
		"avg_black_discs", summary.AverageBlackDiscs,
		"avg_white_discs", summary.AverageWhiteDiscs,
		"avg_moves", summary.AverageMoves,
		"seed", cfg.Seed,
		"seconds", time.Since(before).Seconds(),
	)
}
