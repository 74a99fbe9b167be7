// Package engine implements pseudo-legal move generation, square
// attack detection, move application, and legality filtering over
// chess.Position values.
package engine

import "github.com/mhalvorsen/movegen-go/internal/chess"

// Fixed offset and direction tables. Order matters: generated
// destinations follow table order, so move list ordering is
// deterministic. None of the tables contains the zero offset, so a
// piece can never reach or attack its own square.
var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	royalDirs     = [8][2]int{{1, 1}, {1, 0}, {1, -1}, {0, 1}, {0, -1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Destinations returns the squares the piece on from could pseudo-
// legally move to, ignoring whether the mover's king would be left in
// check. An empty square queried directly yields nil. Off-board
// destinations are silently excluded.
func Destinations(pos chess.Position, from chess.Square) []chess.Square {
	switch pos.At(from).Kind {
	case chess.Pawn:
		return pawnDestinations(pos, from)
	case chess.Knight:
		return stepDestinations(pos, from, knightOffsets[:])
	case chess.Bishop:
		return slideDestinations(pos, from, bishopDirs[:])
	case chess.Rook:
		return slideDestinations(pos, from, rookDirs[:])
	case chess.Queen:
		return slideDestinations(pos, from, royalDirs[:])
	case chess.King:
		// Castling is out of scope.
		return stepDestinations(pos, from, royalDirs[:])
	default:
		return nil
	}
}

// pawnDestinations generates pawn pushes and diagonal captures.
// No en passant, no promotion.
func pawnDestinations(pos chess.Position, from chess.Square) []chess.Square {
	pc := pos.At(from)
	dir := chess.PawnDirection(pc.Color)

	var dests []chess.Square

	// Single push onto an empty square; the double push additionally
	// requires the start rank and a second empty square.
	one := from.Offset(0, dir)
	if one.OnBoard() && pos.At(one).IsEmpty() {
		dests = append(dests, one)
		if from.Rank == chess.PawnStartRank(pc.Color) {
			two := from.Offset(0, 2*dir)
			if two.OnBoard() && pos.At(two).IsEmpty() {
				dests = append(dests, two)
			}
		}
	}

	// Diagonal captures, left then right.
	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.OnBoard() {
			continue
		}
		target := pos.At(to)
		if !target.IsEmpty() && target.Color != pc.Color {
			dests = append(dests, to)
		}
	}

	return dests
}

// stepDestinations generates single-step moves from a fixed offset
// table: on-board squares that are empty or hold an opposing piece.
// Used for knights and kings.
func stepDestinations(pos chess.Position, from chess.Square, offsets [][2]int) []chess.Square {
	pc := pos.At(from)
	var dests []chess.Square
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.OnBoard() {
			continue
		}
		target := pos.At(to)
		if target.IsEmpty() || target.Color != pc.Color {
			dests = append(dests, to)
		}
	}
	return dests
}

// slideDestinations ray-casts along each direction: every empty square
// is a destination and the ray continues; the first occupied square is
// a destination only when opposing, and stops the ray either way.
func slideDestinations(pos chess.Position, from chess.Square, dirs [][2]int) []chess.Square {
	pc := pos.At(from)
	var dests []chess.Square
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.OnBoard(); to = to.Offset(dir[0], dir[1]) {
			target := pos.At(to)
			if target.IsEmpty() {
				dests = append(dests, to)
				continue
			}
			if target.Color != pc.Color {
				dests = append(dests, to)
			}
			break // Blocked
		}
	}
	return dests
}
