package entity

import (
	"testing"

	"github.com/rocketscienceinc/ghost-tictactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places mark on empty cell", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: the human places a mark in the center
		err := board.Place(1, 1, Human)
		require.NoError(t, err)

		// Then: only the center holds the human mark
		expected := Board{
			{EmptyCell, EmptyCell, EmptyCell},
			{EmptyCell, HumanCell, EmptyCell},
			{EmptyCell, EmptyCell, EmptyCell},
		}
		require.Equal(t, expected, board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where the computer holds the corner
		board := Board{}
		require.NoError(t, board.Place(0, 0, Computer))

		// When: the human tries to place a mark on the same cell
		err := board.Place(0, 0, Human)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, ComputerCell, board[0][0])
	})

	t.Run("Error on out of bounds cell", func(t *testing.T) {
		board := Board{}

		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			// When: a cell outside the grid is targeted
			err := board.Place(move.Row, move.Col, Human)

			// Then: ErrOutOfBounds is returned
			require.ErrorIs(t, err, apperror.ErrOutOfBounds, "move %s", move)
		}

		assert.Equal(t, Board{}, board)
	})
}

func TestBoard_Relocate(t *testing.T) {
	t.Run("Moves human mark to empty cell", func(t *testing.T) {
		// Given: a board with a human mark in the corner
		board := Board{{HumanCell, EmptyCell, EmptyCell}}

		// When: the mark is relocated to the opposite corner
		err := board.Relocate(Move{0, 0}, Move{2, 2})
		require.NoError(t, err)

		// Then: the corner is cleared and the target holds the mark
		assert.Equal(t, EmptyCell, board[0][0])
		assert.Equal(t, HumanCell, board[2][2])
	})

	t.Run("Error when source is not a human mark", func(t *testing.T) {
		board := Board{{ComputerCell, EmptyCell, EmptyCell}}

		err := board.Relocate(Move{0, 0}, Move{1, 1})

		require.ErrorIs(t, err, apperror.ErrNotHumanCell)
		assert.Equal(t, ComputerCell, board[0][0])
	})

	t.Run("Error when target is occupied", func(t *testing.T) {
		board := Board{{HumanCell, ComputerCell, EmptyCell}}

		err := board.Relocate(Move{0, 0}, Move{0, 1})

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestBoard_Queries(t *testing.T) {
	t.Run("IsEmpty", func(t *testing.T) {
		board := Board{{HumanCell, EmptyCell, EmptyCell}}

		assert.False(t, board.IsEmpty(0, 0))
		assert.True(t, board.IsEmpty(0, 1))
		assert.False(t, board.IsEmpty(3, 3))
	})

	t.Run("IsFull", func(t *testing.T) {
		board := Board{
			{HumanCell, ComputerCell, HumanCell},
			{HumanCell, ComputerCell, ComputerCell},
			{ComputerCell, HumanCell, EmptyCell},
		}
		assert.False(t, board.IsFull())

		board[2][2] = HumanCell
		assert.True(t, board.IsFull())
	})

	t.Run("Snapshot is independent", func(t *testing.T) {
		// Given: a board and its snapshot
		board := Board{{HumanCell}}
		snapshot := board.Snapshot()

		// When: the snapshot is mutated
		snapshot[1][1] = ComputerCell

		// Then: the original board is untouched
		assert.Equal(t, EmptyCell, board[1][1])
		assert.Equal(t, HumanCell, snapshot[0][0])
	})

	t.Run("CellsOf lists in row-major order", func(t *testing.T) {
		board := Board{
			{EmptyCell, HumanCell, EmptyCell},
			{HumanCell, ComputerCell, EmptyCell},
			{EmptyCell, EmptyCell, HumanCell},
		}

		assert.Equal(t, []Move{{0, 1}, {1, 0}, {2, 2}}, board.CellsOf(HumanCell))
		assert.Equal(t, []Move{{1, 1}}, board.CellsOf(ComputerCell))
		assert.Len(t, board.CellsOf(EmptyCell), 5)
	})

	t.Run("Reset empties the board", func(t *testing.T) {
		board := Board{{HumanCell, ComputerCell, HumanCell}}

		board.Reset()

		assert.Equal(t, Board{}, board)
	})
}
