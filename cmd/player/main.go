package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/lineio"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/player"
)

func main() {
	config.SetLogLevel()

	colorName := flag.String("color", "black", "the color to play with: black or white")
	strategyName := flag.String("strategy", "first", "how to pick moves: first or random")
	seed := flag.Int64("seed", 0, "seed for the random strategy")
	flag.Parse()

	var color othello.Color
	switch *colorName {
	case "black":
		color = othello.Black
	case "white":
		color = othello.White
	default:
		slog.Error("Invalid color", "color", *colorName)
		os.Exit(1)
	}

	var strategy player.Strategy
	switch *strategyName {
	case "first":
		strategy = player.FirstMove{}
	case "random":
		strategy = player.NewRandom(*seed)
	default:
		slog.Error("Invalid strategy", "strategy", *strategyName)
		os.Exit(1)
	}

	p := player.NewPlayer(color, strategy)

	if err := lineio.Play(lineio.NewReader(os.Stdin), lineio.NewWriter(os.Stdout), p); err != nil {
		slog.Error("Game aborted", "error", err, "board", p.Board())
		os.Exit(1)
	}
}
