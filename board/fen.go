// fen.go parses and formats the Forsyth-Edwards Notation fields
// PositionFromFEN and Position.String use to read and write board state.

package board

import (
	"fmt"
)

var symbolToPiece = map[byte]Piece{
	'P': ColorFigure(White, Pawn),
	'N': ColorFigure(White, Knight),
	'B': ColorFigure(White, Bishop),
	'R': ColorFigure(White, Rook),
	'Q': ColorFigure(White, Queen),
	'K': ColorFigure(White, King),
	'p': ColorFigure(Black, Pawn),
	'n': ColorFigure(Black, Knight),
	'b': ColorFigure(Black, Bishop),
	'r': ColorFigure(Black, Rook),
	'q': ColorFigure(Black, Queen),
	'k': ColorFigure(Black, King),
}

// ParsePiecePlacement parses the first FEN field, the ranks from 8 down
// to 1 separated by '/', and places the pieces it describes on pos.
func ParsePiecePlacement(s string, pos *Position) error {
	r, f := 7, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '/':
			if f != 8 {
				return fmt.Errorf("fen: rank has wrong number of squares")
			}
			r--
			f = 0
		case '1' <= c && c <= '8':
			f += int(c - '0')
		default:
			pi, ok := symbolToPiece[c]
			if !ok {
				return fmt.Errorf("fen: unhandled piece symbol %c", c)
			}
			if f >= 8 || r < 0 {
				return fmt.Errorf("fen: piece placement overflows the board")
			}
			pos.Put(RankFile(r, f), pi)
			f++
		}
	}
	if r != 0 || f != 8 {
		return fmt.Errorf("fen: piece placement does not cover 8 ranks")
	}
	return nil
}

// FormatPiecePlacement returns the first FEN field for pos.
func FormatPiecePlacement(pos *Position) string {
	var r []byte
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pi := pos.Get(RankFile(rank, file))
			if pi == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				r = append(r, byte('0'+empty))
				empty = 0
			}
			r = append(r, pieceToSymbol[pi])
		}
		if empty > 0 {
			r = append(r, byte('0'+empty))
		}
		if rank > 0 {
			r = append(r, '/')
		}
	}
	return string(r)
}

// ParseSideToMove parses the second FEN field.
func ParseSideToMove(s string, pos *Position) error {
	switch s {
	case "w":
		pos.SetSideToMove(White)
	case "b":
		pos.SetSideToMove(Black)
	default:
		return fmt.Errorf("fen: unknown side to move %q", s)
	}
	return nil
}

// FormatSideToMove returns the second FEN field for pos.
func FormatSideToMove(pos *Position) string {
	if pos.SideToMove == Black {
		return "b"
	}
	return "w"
}

// ParseCastlingAbility parses the third FEN field.
func ParseCastlingAbility(s string, pos *Position) error {
	if s == "-" {
		pos.SetCastlingAbility(NoCastle)
		return nil
	}

	var castle Castle
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			castle |= WhiteOO
		case 'Q':
			castle |= WhiteOOO
		case 'k':
			castle |= BlackOO
		case 'q':
			castle |= BlackOOO
		default:
			return fmt.Errorf("fen: unknown castling ability %q", s)
		}
	}
	pos.SetCastlingAbility(castle)
	return nil
}

// FormatCastlingAbility returns the third FEN field for pos.
func FormatCastlingAbility(pos *Position) string {
	return pos.CastlingAbility().String()
}

// ParseEnpassantSquare parses the fourth FEN field.
func ParseEnpassantSquare(s string, pos *Position) error {
	if s == "-" {
		pos.SetEnpassantSquare(SquareA1)
		return nil
	}
	sq, err := SquareFromString(s)
	if err != nil {
		return fmt.Errorf("fen: bad en passant square %q", s)
	}
	pos.SetEnpassantSquare(sq)
	return nil
}

// FormatEnpassantSquare returns the fourth FEN field for pos.
func FormatEnpassantSquare(pos *Position) string {
	sq := pos.EnpassantSquare()
	if sq == SquareA1 {
		return "-"
	}
	return sq.String()
}
