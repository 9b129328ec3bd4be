package entity

import (
	"fmt"

	"github.com/rocketscienceinc/ghost-tictactoe/internal/apperror"
)

const BoardSize = 3

// Move addresses a cell by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// InBounds reports whether the move addresses a cell on the board.
func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Board is a fixed 3x3 grid stored row-major.
type Board [BoardSize][BoardSize]Cell

// Place puts the player's mark on an empty cell.
func (that *Board) Place(row, col int, player Player) error {
	if !(Move{Row: row, Col: col}).InBounds() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = player.Mark()

	return nil
}

// Relocate moves a human mark from one cell to an empty one.
func (that *Board) Relocate(from, to Move) error {
	if !from.InBounds() || !to.InBounds() {
		return fmt.Errorf("%w: %s -> %s", apperror.ErrOutOfBounds, from, to)
	}

	if that[from.Row][from.Col] != HumanCell {
		return fmt.Errorf("%w: %s", apperror.ErrNotHumanCell, from)
	}

	if that[to.Row][to.Col] != EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, to)
	}

	that[from.Row][from.Col] = EmptyCell
	that[to.Row][to.Col] = HumanCell

	return nil
}

// IsEmpty reports whether the cell is empty. Out of range cells are never empty.
func (that *Board) IsEmpty(row, col int) bool {
	if !(Move{Row: row, Col: col}).InBounds() {
		return false
	}

	return that[row][col] == EmptyCell
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Snapshot returns an independent copy of the board.
func (that *Board) Snapshot() Board {
	return *that
}

// CellsOf lists the cells holding the given value in row-major order.
func (that *Board) CellsOf(cell Cell) []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == cell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) Reset() {
	*that = Board{}
}
