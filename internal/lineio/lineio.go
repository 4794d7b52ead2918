// Package lineio reads and writes the line based move protocol.
//
// Every line holds one move in field notation ("c4"), or "--" for a pass.
package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/player"
)

// Reader reads lines from an underlying reader.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line without the line ending. It returns io.EOF when there is no more input.
func (r *Reader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read line: %w", err)
		}
		return "", io.EOF
	}

	line := strings.TrimRight(r.scanner.Text(), "\r")
	slog.Debug("Read line", "line", line)
	return line, nil
}

// ReadPosition reads the next non-blank line and parses it as a move.
func (r *Reader) ReadPosition() (othello.Position, error) {
	var line string
	for line == "" {
		read, err := r.ReadLine()
		if err != nil {
			return othello.NoMove, err
		}
		line = strings.TrimSpace(read)
	}

	pos, err := othello.ParsePosition(line)
	if err != nil {
		return othello.NoMove, fmt.Errorf("failed to parse move: %w", err)
	}

	return pos, nil
}

// Writer writes lines to an underlying writer, flushing after every line.
type Writer struct {
	writer *bufio.Writer
}

// NewWriter creates a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: bufio.NewWriter(w)}
}

// WriteLine writes s followed by a newline.
func (w *Writer) WriteLine(s string) error {
	if _, err := w.writer.WriteString(s + "\n"); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}

	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush line: %w", err)
	}

	slog.Debug("Wrote line", "line", s)
	return nil
}

// WritePosition writes a move in field notation.
func (w *Writer) WritePosition(pos othello.Position) error {
	return w.WriteLine(pos.String())
}

// Play runs p against an opponent on the other side of the line protocol until the input ends.
// Black writes its first move before reading anything.
func Play(r *Reader, w *Writer, p *player.Player) error {
	if p.Color() == othello.Black {
		if err := respond(w, p, othello.NoMove); err != nil {
			return err
		}
	}

	for {
		opponentMove, err := r.ReadPosition()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err = respond(w, p, opponentMove); err != nil {
			return err
		}
	}
}

func respond(w *Writer, p *player.Player, opponentMove othello.Position) error {
	move, err := p.ChooseMove(opponentMove)
	if err != nil {
		return err
	}
	return w.WritePosition(move)
}
