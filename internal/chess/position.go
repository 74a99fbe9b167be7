package chess

// Position is a full board state: 64 piece cells indexed rank*8 + file,
// plus the side to move. Positions are plain values; every operation
// that changes one returns a fresh copy, so a Position handed to a
// caller is never mutated behind its back. No validation is performed
// on construction: malformed boards (missing or duplicated kings) are
// accepted here and surface later during legality checking.
type Position struct {
	squares [BoardSize * BoardSize]Piece
	toMove  Color
}

// NewPosition builds a position from a fully decoded 64-cell piece
// array and a side-to-move flag. The decoder producing the array is
// responsible for its contents.
func NewPosition(squares [BoardSize * BoardSize]Piece, toMove Color) Position {
	return Position{squares: squares, toMove: toMove}
}

// At returns the piece on the given square. Off-board squares read as
// empty; boundary probes during scanning are data, not errors.
func (p Position) At(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return p.squares[sq.Index()]
}

// SideToMove returns the colour whose turn it is.
func (p Position) SideToMove() Color {
	return p.toMove
}

// Put returns a copy of the position with sq holding piece.
// Off-board squares leave the position unchanged.
func (p Position) Put(sq Square, piece Piece) Position {
	if sq.OnBoard() {
		p.squares[sq.Index()] = piece
	}
	return p
}

// WithSideToMove returns a copy of the position with the side to move
// set to c. Used by drivers advancing game state between moves.
func (p Position) WithSideToMove(c Color) Position {
	p.toMove = c
	return p
}
