package engine

import (
	"testing"

	"github.com/mhalvorsen/movegen-go/internal/chess"
	"github.com/mhalvorsen/movegen-go/internal/fen"
	"github.com/mhalvorsen/movegen-go/internal/testutil"
)

// destNames generates destinations and returns them as algebraic
// names in generation order.
func destNames(pos chess.Position, from chess.Square) []string {
	return testutil.SquareNames(Destinations(pos, from))
}

func TestDestinations_Pawn(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from chess.Square
		want []string
	}{
		{
			name: "white pawn on start rank",
			fen:  "8/8/8/8/8/8/1P6/8 w",
			from: chess.Sq(1, 1), // b2
			want: []string{"b3", "b4"},
		},
		{
			name: "white pawn off start rank",
			fen:  "8/8/8/8/8/1P6/8/8 w",
			from: chess.Sq(1, 2), // b3
			want: []string{"b4"},
		},
		{
			name: "single push blocked",
			fen:  "8/8/8/8/8/1p6/1P6/8 w",
			from: chess.Sq(1, 1),
			want: nil,
		},
		{
			name: "double push blocked, single open",
			fen:  "8/8/8/8/1p6/8/1P6/8 w",
			from: chess.Sq(1, 1),
			want: []string{"b3"},
		},
		{
			name: "captures after pushes, left then right",
			fen:  "8/8/8/8/8/r1n5/1P6/8 w",
			from: chess.Sq(1, 1),
			want: []string{"b3", "b4", "a3", "c3"},
		},
		{
			name: "own pieces are not capture targets",
			fen:  "8/8/8/8/8/R1N5/1P6/8 w",
			from: chess.Sq(1, 1),
			want: []string{"b3", "b4"},
		},
		{
			name: "black pawn moves down the board",
			fen:  "8/1p6/8/8/8/8/8/8 b",
			from: chess.Sq(1, 6), // b7
			want: []string{"b6", "b5"},
		},
		{
			name: "black pawn captures toward rank 1",
			fen:  "8/8/8/1p6/R1R5/8/8/8 b",
			from: chess.Sq(1, 4), // b5
			want: []string{"b4", "a4", "c4"},
		},
		{
			name: "edge pawn has no capture off the board",
			fen:  "8/8/8/8/8/1r6/P7/8 w",
			from: chess.Sq(0, 1), // a2
			want: []string{"a3", "a4", "b3"},
		},
		{
			name: "pawn on the last rank has nowhere to go",
			fen:  "1P6/8/8/8/8/8/8/8 w",
			from: chess.Sq(1, 7), // b8
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := fen.Decode(tt.fen)
			if err != nil {
				t.Fatalf("fen.Decode(%q) failed: %v", tt.fen, err)
			}
			testutil.AssertEqual(t, destNames(pos, tt.from), tt.want)
		})
	}
}

func TestDestinations_Knight(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from chess.Square
		want []string
	}{
		{
			name: "knight in the middle reaches all eight squares",
			fen:  "8/8/8/8/3N4/8/8/8 w",
			from: chess.Sq(3, 3), // d4
			want: []string{"e6", "f5", "f3", "e2", "c2", "b3", "b5", "c6"},
		},
		{
			name: "knight in the corner",
			fen:  "8/8/8/8/8/8/8/N7 w",
			from: chess.Sq(0, 0), // a1
			want: []string{"b3", "c2"},
		},
		{
			name: "own piece excluded, enemy included",
			fen:  "8/8/4p3/8/3N4/8/4P3/8 w",
			from: chess.Sq(3, 3),
			want: []string{"e6", "f5", "f3", "c2", "b3", "b5", "c6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := fen.Decode(tt.fen)
			if err != nil {
				t.Fatalf("fen.Decode(%q) failed: %v", tt.fen, err)
			}
			testutil.AssertEqual(t, destNames(pos, tt.from), tt.want)
		})
	}
}

func TestDestinations_Rook(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from chess.Square
		want []string
	}{
		{
			name: "open board, ray order then distance",
			fen:  "8/8/8/8/3R4/8/8/8 w",
			from: chess.Sq(3, 3), // d4
			want: []string{
				"e4", "f4", "g4", "h4",
				"c4", "b4", "a4",
				"d5", "d6", "d7", "d8",
				"d3", "d2", "d1",
			},
		},
		{
			name: "own blocker stops the ray without being added",
			fen:  "8/8/8/8/3R1P2/8/8/8 w",
			from: chess.Sq(3, 3),
			want: []string{
				"e4",
				"c4", "b4", "a4",
				"d5", "d6", "d7", "d8",
				"d3", "d2", "d1",
			},
		},
		{
			name: "enemy blocker is captured and stops the ray",
			fen:  "8/8/8/8/3R1p2/8/8/8 w",
			from: chess.Sq(3, 3),
			want: []string{
				"e4", "f4",
				"c4", "b4", "a4",
				"d5", "d6", "d7", "d8",
				"d3", "d2", "d1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := fen.Decode(tt.fen)
			if err != nil {
				t.Fatalf("fen.Decode(%q) failed: %v", tt.fen, err)
			}
			testutil.AssertEqual(t, destNames(pos, tt.from), tt.want)
		})
	}
}

func TestDestinations_Bishop(t *testing.T) {
	pos := fen.MustDecode("8/8/8/8/3B4/8/8/8 w")
	want := []string{
		"e5", "f6", "g7", "h8",
		"e3", "f2", "g1",
		"c5", "b6", "a7",
		"c3", "b2", "a1",
	}
	testutil.AssertEqual(t, destNames(pos, chess.Sq(3, 3)), want)
}

func TestDestinations_Queen(t *testing.T) {
	pos := fen.MustDecode("8/8/8/8/3Q4/8/8/8 w")
	got := Destinations(pos, chess.Sq(3, 3))
	if len(got) != 27 {
		t.Errorf("queen on open d4: %d destinations, want 27", len(got))
	}

	// Queen moves are exactly rook moves plus bishop moves from the
	// same square.
	rookPos := fen.MustDecode("8/8/8/8/3R4/8/8/8 w")
	bishopPos := fen.MustDecode("8/8/8/8/3B4/8/8/8 w")
	seen := make(map[chess.Square]bool)
	for _, sq := range got {
		seen[sq] = true
	}
	for _, sq := range Destinations(rookPos, chess.Sq(3, 3)) {
		if !seen[sq] {
			t.Errorf("queen missing rook destination %v", sq)
		}
	}
	for _, sq := range Destinations(bishopPos, chess.Sq(3, 3)) {
		if !seen[sq] {
			t.Errorf("queen missing bishop destination %v", sq)
		}
	}
}

func TestDestinations_King(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from chess.Square
		want []string
	}{
		{
			name: "king in the middle",
			fen:  "8/8/8/8/3K4/8/8/8 w",
			from: chess.Sq(3, 3),
			want: []string{"e5", "e4", "e3", "d5", "d3", "c5", "c4", "c3"},
		},
		{
			name: "king in the corner",
			fen:  "8/8/8/8/8/8/8/K7 w",
			from: chess.Sq(0, 0),
			want: []string{"b2", "b1", "a2"},
		},
		{
			name: "king blocked by own piece",
			fen:  "8/8/8/8/3KP3/8/8/8 w",
			from: chess.Sq(3, 3),
			want: []string{"e5", "e3", "d5", "d3", "c5", "c4", "c3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := fen.Decode(tt.fen)
			if err != nil {
				t.Fatalf("fen.Decode(%q) failed: %v", tt.fen, err)
			}
			testutil.AssertEqual(t, destNames(pos, tt.from), tt.want)
		})
	}
}

func TestDestinations_EmptySquare(t *testing.T) {
	pos := fen.MustDecode("8/8/8/8/3K4/8/8/8 w")
	if got := Destinations(pos, chess.Sq(0, 0)); got != nil {
		t.Errorf("Destinations on empty square = %v, want nil", got)
	}
	if got := Destinations(pos, chess.Sq(-1, 4)); got != nil {
		t.Errorf("Destinations off board = %v, want nil", got)
	}
}

func TestDestinations_NeverOffBoard(t *testing.T) {
	// Pieces crowding the edges must never yield off-board squares.
	pos := fen.MustDecode("N6N/8/8/q6K/8/8/8/R6B w")
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Sq(file, rank)
			for _, to := range Destinations(pos, from) {
				if !to.OnBoard() {
					t.Errorf("piece on %v generated off-board destination %v", from, to)
				}
			}
		}
	}
}
