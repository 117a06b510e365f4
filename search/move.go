// move.go defines the compact Move value and the small piece/side
// vocabulary the search core needs at its Board/Evaluator boundary.
//
// Board representation, legality, and move generation themselves are
// external collaborators (see contracts.go) — this file only fixes the
// wire shape moves travel in across that boundary.

package search

import "fmt"

// Square is a board square, 0 (a1) through 63 (h8).
type Square int8

// NoSquare is the sentinel for "not applicable".
const NoSquare Square = -1

func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	file := 'a' + byte(sq%8)
	rank := '1' + byte(sq/8)
	return fmt.Sprintf("%c%c", file, rank)
}

// Side is the side to move.
type Side uint8

const (
	White Side = iota
	Black
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	return s ^ 1
}

// Multiplier returns +1 for White, -1 for Black, for negamax sign flips
// at the boundary with an external evaluator.
func (s Side) Multiplier() int32 {
	if s == White {
		return 1
	}
	return -1
}

// PieceType is a figure kind, independent of color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece packs a side and a piece type.
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 0

// MakePiece builds a Piece from its side and type.
func MakePiece(s Side, pt PieceType) Piece {
	return Piece(uint8(pt)<<1 | uint8(s))
}

// Side returns the piece's side. Meaningless for NoPiece.
func (p Piece) Side() Side {
	return Side(p & 1)
}

// Type returns the piece's figure kind, or NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	return PieceType(p >> 1)
}

// MoveFlag classifies a Move's effect on the board.
type MoveFlag uint8

const (
	FlagNull MoveFlag = iota
	FlagQuiet
	FlagDoublePawnPush
	FlagCapture
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
	FlagPromoteKnight
	FlagPromoteBishop
	FlagPromoteRook
	FlagPromoteQueen
	FlagPromoteKnightCapture
	FlagPromoteBishopCapture
	FlagPromoteRookCapture
	FlagPromoteQueenCapture
)

// Move is a compact encoding of a chess move: origin square (bits
// 15-10), destination square (bits 9-4), and flag (bits 3-0). It fits
// in 16 bits, matching the two bytes an 8-byte TTEntry reserves for the
// hash move (§3, §4.2).
type Move uint16

// NullMove is the zero value: no origin, no destination, FlagNull.
const NullMove Move = 0

// NewMove packs a move from its fields.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from&0x3f)<<10 | uint16(to&0x3f)<<4 | uint16(flag&0xf))
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m >> 10) & 0x3f)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m >> 4) & 0x3f)
}

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag(m & 0xf)
}

// Exists reports whether m is a real, non-null, non-default move.
func (m Move) Exists() bool {
	return m != NullMove
}

// IsCapture reports whether the move removes an enemy piece from the
// destination square, including en-passant and capturing promotions.
func (m Move) IsCapture() bool {
	switch m.Flag() {
	case FlagCapture, FlagEnPassant,
		FlagPromoteKnightCapture, FlagPromoteBishopCapture,
		FlagPromoteRookCapture, FlagPromoteQueenCapture:
		return true
	}
	return false
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= FlagPromoteKnight
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
// Quiet moves are the ones eligible for killer/history/counter bonuses.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// PromotionType returns the figure a pawn promotes to, or NoPieceType
// if the move is not a promotion.
func (m Move) PromotionType() PieceType {
	switch m.Flag() {
	case FlagPromoteKnight, FlagPromoteKnightCapture:
		return Knight
	case FlagPromoteBishop, FlagPromoteBishopCapture:
		return Bishop
	case FlagPromoteRook, FlagPromoteRookCapture:
		return Rook
	case FlagPromoteQueen, FlagPromoteQueenCapture:
		return Queen
	}
	return NoPieceType
}

func (m Move) String() string {
	if !m.Exists() {
		return "0000"
	}
	promo := ""
	switch m.PromotionType() {
	case Knight:
		promo = "n"
	case Bishop:
		promo = "b"
	case Rook:
		promo = "r"
	case Queen:
		promo = "q"
	}
	return fmt.Sprintf("%s%s%s", m.From(), m.To(), promo)
}
