package engine

import (
	"github.com/mhalvorsen/movegen-go/internal/chess"
	"github.com/mhalvorsen/movegen-go/internal/errors"
)

// ApplyMove returns the position after executing mv: the destination
// cell takes the piece from the source cell and the source cell
// becomes empty. No legality checking of any kind is performed — it
// will happily capture a king or move the wrong colour's piece; that
// is the legality filter's job. The input position is left untouched.
//
// Panics if the destination square is off the board: a generated move
// pointing off the board violates the core's basic assumptions.
func ApplyMove(pos chess.Position, mv chess.Move) chess.Position {
	errors.Assertf(mv.To.OnBoard(), "apply move: destination %v off board", mv.To)

	moved := pos.At(mv.From)
	return pos.Put(mv.To, moved).Put(mv.From, chess.Piece{})
}
