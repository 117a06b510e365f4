// convert.go translates between the board package's native
// representation (Square/Color/Figure/Piece/Move, one-based bitboards
// per colour) and the search core's compact wire types (§6 boundary).

package game

import (
	"github.com/halvorsen/corechess/board"
	"github.com/halvorsen/corechess/search"
)

func toSide(c board.Color) search.Side {
	if c == board.Black {
		return search.Black
	}
	return search.White
}

func toBoardColor(s search.Side) board.Color {
	if s == search.Black {
		return board.Black
	}
	return board.White
}

func toFigure(pt search.PieceType) board.Figure {
	switch pt {
	case search.Pawn:
		return board.Pawn
	case search.Knight:
		return board.Knight
	case search.Bishop:
		return board.Bishop
	case search.Rook:
		return board.Rook
	case search.Queen:
		return board.Queen
	case search.King:
		return board.King
	}
	return board.NoFigure
}

func toPieceType(fig board.Figure) search.PieceType {
	switch fig {
	case board.Pawn:
		return search.Pawn
	case board.Knight:
		return search.Knight
	case board.Bishop:
		return search.Bishop
	case board.Rook:
		return search.Rook
	case board.Queen:
		return search.Queen
	case board.King:
		return search.King
	}
	return search.NoPieceType
}

func toPiece(pi board.Piece) search.Piece {
	if pi == board.NoPiece {
		return search.NoPiece
	}
	return search.MakePiece(toSide(pi.Color()), toPieceType(pi.Figure()))
}

// toSearchMove converts a pseudo-legal board.Move, as produced by
// Position.GenerateMoves, into the compact wire Move the search core
// orders and stores in the transposition table.
func toSearchMove(bm board.Move) search.Move {
	from := search.Square(bm.From)
	to := search.Square(bm.To)

	switch bm.MoveType {
	case board.Castling:
		if bm.To.File() > bm.From.File() {
			return search.NewMove(from, to, search.FlagCastleKingside)
		}
		return search.NewMove(from, to, search.FlagCastleQueenside)
	case board.Enpassant:
		return search.NewMove(from, to, search.FlagEnPassant)
	case board.Promotion:
		capture := bm.Capture != board.NoPiece
		switch bm.Target.Figure() {
		case board.Knight:
			return promoMove(from, to, capture, search.FlagPromoteKnight, search.FlagPromoteKnightCapture)
		case board.Bishop:
			return promoMove(from, to, capture, search.FlagPromoteBishop, search.FlagPromoteBishopCapture)
		case board.Rook:
			return promoMove(from, to, capture, search.FlagPromoteRook, search.FlagPromoteRookCapture)
		default:
			return promoMove(from, to, capture, search.FlagPromoteQueen, search.FlagPromoteQueenCapture)
		}
	}

	if bm.Capture != board.NoPiece {
		return search.NewMove(from, to, search.FlagCapture)
	}
	if bm.Target.Figure() == board.Pawn && abs(int(bm.To)-int(bm.From)) == 16 {
		return search.NewMove(from, to, search.FlagDoublePawnPush)
	}
	return search.NewMove(from, to, search.FlagQuiet)
}

func promoMove(from, to search.Square, capture bool, quiet, captureFlag search.MoveFlag) search.Move {
	if capture {
		return search.NewMove(from, to, captureFlag)
	}
	return search.NewMove(from, to, quiet)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
