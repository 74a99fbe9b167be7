// Package fen decodes and encodes positions in Forsyth-Edwards
// Notation. It is the text boundary of the system: the core consumes
// only the decoded piece array and side-to-move flag, never FEN text.
//
// Only the piece placement field and the optional side-to-move field
// are handled. Castling, en passant, and clock fields are ignored if
// present; the core has no use for them.
package fen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mhalvorsen/movegen-go/internal/chess"
	"github.com/mhalvorsen/movegen-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// pieceKindFromLetter maps a FEN piece letter (either case) to its
// kind. Returns NoPiece for anything else.
func pieceKindFromLetter(c rune) chess.PieceKind {
	switch unicode.ToLower(c) {
	case 'p':
		return chess.Pawn
	case 'n':
		return chess.Knight
	case 'b':
		return chess.Bishop
	case 'r':
		return chess.Rook
	case 'q':
		return chess.Queen
	case 'k':
		return chess.King
	default:
		return chess.NoPiece
	}
}

// PieceLetter returns the FEN letter for a piece: uppercase for White,
// lowercase for Black, '?' for an empty piece.
func PieceLetter(pc chess.Piece) byte {
	letters := []byte{'?', 'p', 'n', 'b', 'r', 'q', 'k'}
	if int(pc.Kind) >= len(letters) {
		return '?'
	}
	letter := letters[pc.Kind]
	if pc.Color == chess.White {
		letter = byte(unicode.ToUpper(rune(letter)))
	}
	return letter
}

// Decode parses a FEN string into a position. The placement field is
// required; the side-to-move field defaults to White when absent.
func Decode(s string) (chess.Position, error) {
	parts := strings.Fields(s)
	if len(parts) < 1 {
		return chess.Position{}, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	var squares [chess.BoardSize * chess.BoardSize]chess.Piece
	if err := decodePlacement(&squares, parts[0]); err != nil {
		return chess.Position{}, err
	}

	toMove := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			toMove = chess.White
		case "b":
			toMove = chess.Black
		default:
			return chess.Position{}, errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %q", parts[1])
		}
	}

	return chess.NewPosition(squares, toMove), nil
}

// decodePlacement fills the square array from the piece placement
// field. FEN lists rank 8 first, file a first within a rank.
func decodePlacement(squares *[chess.BoardSize * chess.BoardSize]chess.Piece, placement string) error {
	file := 0
	rank := chess.BoardSize - 1

	for _, c := range placement {
		switch {
		case c == '/':
			file = 0
			rank--
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind := pieceKindFromLetter(c)
			if kind == chess.NoPiece {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %q", c)
			}
			sq := chess.Sq(file, rank)
			if !sq.OnBoard() {
				return errors.Wrapf(errors.ErrInvalidFEN, "piece placement out of bounds at %q", c)
			}

			color := chess.White
			if unicode.IsLower(c) {
				color = chess.Black
			}
			squares[sq.Index()] = chess.Piece{Kind: kind, Color: color}
			file++
		}
	}
	return nil
}

// Encode renders a position as a FEN string with the placement and
// side-to-move fields.
func Encode(pos chess.Position) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			pc := pos.At(chess.Sq(file, rank))
			if pc.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceLetter(pc))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if pos.SideToMove() == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}

// MustDecode is Decode for known-good strings; it panics on error.
// Intended for tests and fixed demo positions.
func MustDecode(s string) chess.Position {
	pos, err := Decode(s)
	if err != nil {
		panic(fmt.Sprintf("fen: %v", err))
	}
	return pos
}
