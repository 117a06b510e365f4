package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionFromFENStartPos(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	require.NoError(t, err)

	assert.Equal(t, White, pos.SideToMove)
	assert.Equal(t, AnyCastle, pos.CastlingAbility())
	assert.Equal(t, SquareA1, pos.EnpassantSquare())
	assert.Equal(t, 0, pos.HalfMoveClock)
	assert.Equal(t, 1, pos.FullMoveNumber)

	assert.Equal(t, ColorFigure(White, Rook), pos.Get(SquareA1))
	assert.Equal(t, ColorFigure(White, King), pos.Get(SquareE1))
	assert.Equal(t, ColorFigure(Black, Queen), pos.Get(SquareD8))
	assert.Equal(t, NoPiece, pos.Get(SquareE4))
}

func TestPositionFromFENRoundTrip(t *testing.T) {
	tests := []string{
		FENStartPos,
		"r3k2r/3ppp2/1BB3B1/pp2P1pp/PP4PP/5b2/3PPP2/R3K2R w KQkq - 0 1",
		"3k4/8/8/p1P2p2/PpP1pP2/pPPpP3/2P2pp1/3K3R w - - 0 1",
		"rnbq1bnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 1 2",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			pos, err := PositionFromFEN(fen)
			require.NoError(t, err)
			assert.Equal(t, fen, pos.String())
		})
	}
}

func TestPositionFromFENEnpassant(t *testing.T) {
	pos, err := PositionFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	assert.Equal(t, SquareD6, pos.EnpassantSquare())
}

func TestPositionFromFENRejectsMalformed(t *testing.T) {
	_, err := PositionFromFEN("not a fen")
	assert.Error(t, err)
}

func TestPositionVerifyStartPos(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	require.NoError(t, err)
	assert.NoError(t, pos.Verify())
}
