package engine

import (
	"github.com/mhalvorsen/movegen-go/internal/chess"
	"github.com/mhalvorsen/movegen-go/internal/errors"
)

// IsLegalMove reports whether mv, applied to pos, leaves the moving
// side's own king unattacked. The move is assumed pseudo-legal; no
// movement rules are re-checked here.
//
// Panics if the moving side has no king after the move, which
// indicates a malformed position rather than a recoverable condition.
func IsLegalMove(pos chess.Position, mv chess.Move) bool {
	after := ApplyMove(pos, mv)

	// For a king move the destination is authoritative: under a
	// malformed board a scan could land on some other king.
	var kingSq chess.Square
	if mv.Piece.Kind == chess.King {
		kingSq = mv.To
	} else {
		sq, ok := findKing(after, mv.Piece.Color)
		errors.Assertf(ok, "legality check: no %v king on the board after %v to %v",
			mv.Piece.Color, mv.From, mv.To)
		kingSq = sq
	}

	return !IsSquareAttacked(after, kingSq, mv.Piece.Color.Opposite())
}

// LegalMoves filters a pseudo-legal move list down to the moves that
// do not leave the mover's own king attacked. Input order is
// preserved; illegal entries are simply omitted.
func LegalMoves(pos chess.Position, pseudo chess.MoveList) chess.MoveList {
	var legal chess.MoveList
	for _, mv := range pseudo {
		if IsLegalMove(pos, mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}
