// Package chess provides the core position, piece, and move types.
package chess

// Color represents the colour of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type. NoPiece marks an empty square.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"NoPiece", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Piece is a (kind, colour) pair. The zero value is an empty square;
// its colour carries no meaning and must never match a colour rule.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// IsEmpty reports whether the piece marks an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// BoardSize is the width and height of the board in squares.
const BoardSize = 8

// PawnDirection returns the rank direction pawns advance in:
// +1 for White, -1 for Black.
func PawnDirection(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the 0-based rank pawns start on, from which
// a double push is allowed.
func PawnStartRank(c Color) int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}
