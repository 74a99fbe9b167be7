package chess

// Move records a single piece move. Piece is a snapshot of the mover
// as it stood before the move; it is carried so that printing and
// king-move detection never have to re-read the post-move board.
type Move struct {
	Piece Piece
	From  Square
	To    Square
}

// MoveList is an ordered sequence of moves in generation order. There
// is no uniqueness constraint; ordering is whatever the producer
// appended.
type MoveList []Move
