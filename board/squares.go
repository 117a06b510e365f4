// squares.go names every square on the board and the handful of
// array-size/sentinel constants the rest of the package indexes by.

package board

const (
	SquareA1 Square = 8 * iota
	SquareA2
	SquareA3
	SquareA4
	SquareA5
	SquareA6
	SquareA7
	SquareA8
)

const (
	SquareB1 = SquareA1 + 1
	SquareC1 = SquareA1 + 2
	SquareD1 = SquareA1 + 3
	SquareE1 = SquareA1 + 4
	SquareF1 = SquareA1 + 5
	SquareG1 = SquareA1 + 6
	SquareH1 = SquareA1 + 7

	SquareB2 = SquareA2 + 1
	SquareC2 = SquareA2 + 2
	SquareD2 = SquareA2 + 3
	SquareE2 = SquareA2 + 4
	SquareF2 = SquareA2 + 5
	SquareG2 = SquareA2 + 6
	SquareH2 = SquareA2 + 7

	SquareB3 = SquareA3 + 1
	SquareC3 = SquareA3 + 2
	SquareD3 = SquareA3 + 3
	SquareE3 = SquareA3 + 4
	SquareF3 = SquareA3 + 5
	SquareG3 = SquareA3 + 6
	SquareH3 = SquareA3 + 7

	SquareB4 = SquareA4 + 1
	SquareC4 = SquareA4 + 2
	SquareD4 = SquareA4 + 3
	SquareE4 = SquareA4 + 4
	SquareF4 = SquareA4 + 5
	SquareG4 = SquareA4 + 6
	SquareH4 = SquareA4 + 7

	SquareB5 = SquareA5 + 1
	SquareC5 = SquareA5 + 2
	SquareD5 = SquareA5 + 3
	SquareE5 = SquareA5 + 4
	SquareF5 = SquareA5 + 5
	SquareG5 = SquareA5 + 6
	SquareH5 = SquareA5 + 7

	SquareB6 = SquareA6 + 1
	SquareC6 = SquareA6 + 2
	SquareD6 = SquareA6 + 3
	SquareE6 = SquareA6 + 4
	SquareF6 = SquareA6 + 5
	SquareG6 = SquareA6 + 6
	SquareH6 = SquareA6 + 7

	SquareB7 = SquareA7 + 1
	SquareC7 = SquareA7 + 2
	SquareD7 = SquareA7 + 3
	SquareE7 = SquareA7 + 4
	SquareF7 = SquareA7 + 5
	SquareG7 = SquareA7 + 6
	SquareH7 = SquareA7 + 7

	SquareB8 = SquareA8 + 1
	SquareC8 = SquareA8 + 2
	SquareD8 = SquareA8 + 3
	SquareE8 = SquareA8 + 4
	SquareF8 = SquareA8 + 5
	SquareG8 = SquareA8 + 6
	SquareH8 = SquareA8 + 7
)

const (
	SquareMinValue  = SquareA1
	SquareMaxValue  = SquareH8
	SquareArraySize = int(SquareMaxValue) + 1
)

// NoPiece is the zero Piece value: no color, no figure, an empty square.
const NoPiece Piece = 0

// PieceArraySize bounds every Piece value ColorFigure can produce
// (Figure in 0..6, Color in 0..2, packed as fig<<2 | col).
const PieceArraySize = int(King)<<2 + int(Black) + 1

var (
	PieceMinValue = ColorFigure(White, Pawn)
	PieceMaxValue = ColorFigure(Black, King)
)
