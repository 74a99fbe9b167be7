package testutil

import "github.com/mhalvorsen/movegen-go/internal/chess"

// Placement names a piece on a square for position building.
type Placement struct {
	Piece  chess.Piece
	Square chess.Square
}

// Position builds a position from explicit placements, bypassing any
// text decoding. Later placements overwrite earlier ones.
func Position(toMove chess.Color, placements ...Placement) chess.Position {
	var squares [chess.BoardSize * chess.BoardSize]chess.Piece
	for _, pl := range placements {
		if pl.Square.OnBoard() {
			squares[pl.Square.Index()] = pl.Piece
		}
	}
	return chess.NewPosition(squares, toMove)
}

// SquareNames converts squares to their algebraic names, keeping
// order. Handy for readable comparisons in tests.
func SquareNames(squares []chess.Square) []string {
	if len(squares) == 0 {
		return nil
	}
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}

// MoveNames converts a move list to "from-to" strings, keeping order.
func MoveNames(moves chess.MoveList) []string {
	if len(moves) == 0 {
		return nil
	}
	names := make([]string, len(moves))
	for i, mv := range moves {
		names[i] = mv.From.String() + "-" + mv.To.String()
	}
	return names
}
