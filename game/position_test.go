package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/corechess/board"
	"github.com/halvorsen/corechess/search"
)

func TestFromFENStartPosLegalMoveCount(t *testing.T) {
	pos, err := FromFEN(board.FENStartPos)
	require.NoError(t, err)

	moves := pos.GenerateLegalMoves()
	assert.Len(t, moves, 20)

	captures := pos.GenerateLegalCaptures()
	assert.Empty(t, captures)
}

func TestMakeMoveUndoMoveRoundTrip(t *testing.T) {
	pos, err := FromFEN(board.FENStartPos)
	require.NoError(t, err)

	before := pos.HashValue()
	moves := pos.GenerateLegalMoves()
	require.NotEmpty(t, moves)

	pos.MakeMove(moves[0])
	assert.NotEqual(t, before, pos.HashValue())
	assert.Equal(t, search.Black, pos.SideToMove())

	pos.UndoMove()
	assert.Equal(t, before, pos.HashValue())
	assert.Equal(t, search.White, pos.SideToMove())
}

func TestMakeMoveNullMove(t *testing.T) {
	pos, err := FromFEN(board.FENStartPos)
	require.NoError(t, err)

	before := pos.HashValue()
	pos.MakeMove(search.NullMove)
	assert.Equal(t, search.Black, pos.SideToMove())
	assert.Equal(t, search.NullMove, pos.LastMove())

	pos.UndoMove()
	assert.Equal(t, before, pos.HashValue())
	assert.Equal(t, search.White, pos.SideToMove())
}

func TestIsCheckDetection(t *testing.T) {
	pos, err := FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.True(t, pos.IsCheck())
}

func TestPieceAtReflectsBoard(t *testing.T) {
	pos, err := FromFEN(board.FENStartPos)
	require.NoError(t, err)

	assert.Equal(t, search.MakePiece(search.White, search.Rook), pos.PieceAt(search.Square(board.SquareA1)))
	assert.Equal(t, search.MakePiece(search.Black, search.Queen), pos.PieceAt(search.Square(board.SquareD8)))
	assert.Equal(t, search.NoPiece, pos.PieceAt(search.Square(board.SquareE4)))
}

func TestOccupiedAndPieceBitboards(t *testing.T) {
	pos, err := FromFEN(board.FENStartPos)
	require.NoError(t, err)

	white := pos.OccupiedBitboard(search.White)
	assert.True(t, white.Test(search.Square(board.SquareE1)))
	assert.False(t, white.Test(search.Square(board.SquareE8)))

	pawns := pos.PieceBitboard(search.White, search.Pawn)
	assert.True(t, pawns.Test(search.Square(board.SquareE2)))
	assert.False(t, pawns.Test(search.Square(board.SquareE4)))
}
