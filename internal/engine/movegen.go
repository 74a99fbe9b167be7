package engine

import "github.com/mhalvorsen/movegen-go/internal/chess"

// PseudoLegalMoves enumerates every pseudo-legal move for the side to
// move. Scan order is fixed: rank 7 down to 0, file 0 up to 7, and
// within a square the destination order of Destinations. The result is
// therefore fully deterministic for a given position.
func PseudoLegalMoves(pos chess.Position) chess.MoveList {
	var moves chess.MoveList

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Sq(file, rank)
			pc := pos.At(from)
			if pc.IsEmpty() || pc.Color != pos.SideToMove() {
				continue
			}
			for _, to := range Destinations(pos, from) {
				moves = append(moves, chess.Move{Piece: pc, From: from, To: to})
			}
		}
	}

	return moves
}
