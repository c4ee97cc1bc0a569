package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// BoardSize - number of cells on the grid, addressed 0..8 row-major.
const BoardSize = 9

// Board is the 3x3 grid. Cells hold PlayerX, PlayerO or EmptyCell.
// All mutations go through Set, which rejects occupied cells.
type Board [BoardSize]string

func NewBoard() Board {
	return Board{}
}

func (that *Board) Get(cell int) (string, error) {
	if cell < 0 || cell >= BoardSize {
		return "", fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, cell)
	}

	return that[cell], nil
}

func (that *Board) Set(cell int, mark string) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{}
}

// Empties - returns the indices of all empty cells in ascending order.
func (that *Board) Empties() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}
