package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/othello"
)

func main() {
	boardString := flag.String("board", othello.NewBoard().String(), "the board to show")
	white := flag.Bool("white", false, "mark the moves of white instead of black")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	toMove := othello.Black
	if *white {
		toMove = othello.White
	}

	board.Print(toMove)
}
