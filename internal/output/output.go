// Package output renders positions and move lists as text for
// terminal display. The core defines no text format of its own; all
// presentation lives here.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mhalvorsen/movegen-go/internal/chess"
	"github.com/mhalvorsen/movegen-go/internal/fen"
)

// PieceChar returns the display character for a board cell: the FEN
// letter for a piece, '.' for an empty square.
func PieceChar(pc chess.Piece) byte {
	if pc.IsEmpty() {
		return '.'
	}
	return fen.PieceLetter(pc)
}

// WriteBoard writes an 8-line rendering of the position, rank 8 first,
// one space after every cell.
func WriteBoard(w io.Writer, pos chess.Position) error {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(PieceChar(pos.At(chess.Sq(file, rank))))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// BoardString returns the WriteBoard rendering as a string.
func BoardString(pos chess.Position) string {
	var sb strings.Builder
	WriteBoard(&sb, pos)
	return sb.String()
}

// FormatMove renders a move as "P from b2 to b3".
func FormatMove(mv chess.Move) string {
	return fmt.Sprintf("%c from %s to %s", PieceChar(mv.Piece), mv.From, mv.To)
}

// WriteMoveList writes one FormatMove line per move.
func WriteMoveList(w io.Writer, moves chess.MoveList) error {
	var sb strings.Builder
	for _, mv := range moves {
		sb.WriteString(FormatMove(mv))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
