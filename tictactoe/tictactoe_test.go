package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestEvaluate_EveryLine(t *testing.T) {
	// Each of the 8 canonical boards completes exactly one line.
	for _, combo := range WinCombos {
		board := entity.NewBoard()
		for _, cell := range combo {
			board[cell] = x
		}

		result := Evaluate(board)

		require.NotNil(t, result, "line %v should be detected", combo)
		assert.Equal(t, combo, result.Line)
		assert.Equal(t, x, result.Winner)
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("Returns nil when no line is complete", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			e, o, e,
			o, x, e,
		}

		assert.Nil(t, Evaluate(board))
	})

	t.Run("Returns nil for an empty board", func(t *testing.T) {
		assert.Nil(t, Evaluate(entity.NewBoard()))
	})

	t.Run("Reports the opponent's completed column", func(t *testing.T) {
		board := entity.Board{
			x, o, e,
			x, o, e,
			e, o, x,
		}

		result := Evaluate(board)

		require.NotNil(t, result)
		assert.Equal(t, o, result.Winner)
		assert.Equal(t, [3]int{1, 4, 7}, result.Line)
	})

	t.Run("Prefers the first line in fixed order on a multi-won board", func(t *testing.T) {
		// Given: an artificial board where X completes both row 0 and column 0
		board := entity.Board{
			x, x, x,
			x, o, o,
			x, o, e,
		}

		// When: evaluating
		result := Evaluate(board)

		// Then: row 0 wins the tie-break, rows come before columns
		require.NotNil(t, result)
		assert.Equal(t, [3]int{0, 1, 2}, result.Line)
	})
}

func TestIsTie(t *testing.T) {
	t.Run("Full board without a winner is a tie", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		assert.True(t, IsTie(board))
	})

	t.Run("Board with empty cells is not a tie", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, e,
		}

		assert.False(t, IsTie(board))
	})

	t.Run("Won board is not a tie", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		assert.False(t, IsTie(board))
	})
}
