package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/entity"

// WinCombos - the 8 winning lines, checked in this fixed order: rows, then
// columns, then diagonals. Evaluate returns the first matching line, which
// keeps results deterministic even on artificially multi-won boards.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Result - a completed winning line and the mark that owns it.
type Result struct {
	Line   [3]int
	Winner string
}

// Evaluate - checks the board against WinCombos and reports the first fully
// marked line, or nil if nobody has won yet. Pure function.
func Evaluate(board entity.Board) *Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return &Result{Line: combo, Winner: a}
		}
	}

	return nil
}

// IsTie - true when the board is full and no line is complete.
func IsTie(board entity.Board) bool {
	return Evaluate(board) == nil && board.IsFull()
}
