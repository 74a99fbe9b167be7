package chess

import "fmt"

// Square is a (file, rank) coordinate pair, 0-based. Squares outside
// [0,8) in either component are off the board; they may be formed
// during scanning but are never stored in results.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for constructing a square from file and rank.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// OnBoard reports whether the square lies on the 8x8 board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Index returns the flat board index rank*8 + file.
// Only meaningful for on-board squares.
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// SquareAt converts a flat board index back to a square.
func SquareAt(index int) Square {
	return Square{File: index % BoardSize, Rank: index / BoardSize}
}

// Offset returns the square displaced by df files and dr ranks.
// The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square, e.g. "a1".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}
