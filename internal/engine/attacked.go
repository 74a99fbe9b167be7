package engine

import "github.com/mhalvorsen/movegen-go/internal/chess"

// slideDirs lists all eight ray directions for attack probing. The
// first four are orthogonal (rook/queen), the last four diagonal
// (bishop/queen); classification below relies on that split.
var slideDirs = [8][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

// IsSquareAttacked reports whether any piece of the given colour
// attacks sq, independently of whose turn it is. It probes in reverse
// from the target: knight and king offsets, the two pawn origin
// squares one rank behind the target from the attacker's viewpoint,
// then ray casts in all eight directions classifying the first
// occupied square. Pawn forward pushes never count as attacks.
func IsSquareAttacked(pos chess.Position, sq chess.Square, by chess.Color) bool {
	// A knight attacking sq sits a knight's move away from it.
	for _, off := range knightOffsets {
		if pieceIs(pos.At(sq.Offset(off[0], off[1])), chess.Knight, by) {
			return true
		}
	}

	// Likewise a king, one step away.
	for _, off := range royalDirs {
		if pieceIs(pos.At(sq.Offset(off[0], off[1])), chess.King, by) {
			return true
		}
	}

	// An attacking pawn stands one rank behind the target relative to
	// its own advance direction, one file to either side.
	pawnRank := -chess.PawnDirection(by)
	for _, df := range []int{-1, 1} {
		if pieceIs(pos.At(sq.Offset(df, pawnRank)), chess.Pawn, by) {
			return true
		}
	}

	// Sliding attackers: the first occupied square along each ray is
	// the only candidate; any piece there blocks the rest of the ray.
	for d, dir := range slideDirs {
		for to := sq.Offset(dir[0], dir[1]); to.OnBoard(); to = to.Offset(dir[0], dir[1]) {
			target := pos.At(to)
			if target.IsEmpty() {
				continue
			}
			if target.Color == by {
				if target.Kind == chess.Queen {
					return true
				}
				if d < 4 && target.Kind == chess.Rook {
					return true
				}
				if d >= 4 && target.Kind == chess.Bishop {
					return true
				}
			}
			break // Blocked
		}
	}

	return false
}

// pieceIs reports whether pc is a piece of the given kind and colour.
// Empty cells (including off-board reads) never match.
func pieceIs(pc chess.Piece, kind chess.PieceKind, color chess.Color) bool {
	return pc.Kind == kind && pc.Color == color
}

// findKing scans the board in flat index order for the first king of
// the given colour. The second return is false if none is present.
// Boards with more than one king of a colour are outside the core's
// assumptions; which one is found is unspecified.
func findKing(pos chess.Position, color chess.Color) (chess.Square, bool) {
	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		sq := chess.SquareAt(i)
		if pieceIs(pos.At(sq), chess.King, color) {
			return sq, true
		}
	}
	return chess.Square{}, false
}

// IsInCheck reports whether the given colour's king is attacked.
// Returns false if no king of that colour is on the board; this is a
// query surface for drivers, not a move-validation path.
func IsInCheck(pos chess.Position, color chess.Color) bool {
	kingSq, ok := findKing(pos, color)
	if !ok {
		return false
	}
	return IsSquareAttacked(pos, kingSq, color.Opposite())
}
