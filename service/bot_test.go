package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func newTestBot() *botService {
	return &botService{
		intn:   func(n int) int { return 0 },
		chance: func() float64 { return 1 },
	}
}

func TestBotService_ChooseCell(t *testing.T) {
	t.Run("Completes its own line before blocking the human", func(t *testing.T) {
		// Given: the opponent can win row 0 while the human threatens row 1
		board := entity.Board{
			o, o, e,
			x, x, e,
			e, e, e,
		}

		// When: choosing a cell
		cell, err := newTestBot().ChooseCell(board, entity.DifficultyEasy)

		// Then: the winning move is played, not the block
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks the human's winning cell when it cannot win itself", func(t *testing.T) {
		// Given: the human threatens row 0
		board := entity.Board{
			x, x, e,
			e, e, e,
			e, e, e,
		}

		cell, err := newTestBot().ChooseCell(board, entity.DifficultyEasy)

		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Picks the lowest winning cell among several", func(t *testing.T) {
		// Given: the opponent can complete row 0 at cell 0 or row 2 at cell 8
		board := entity.Board{
			e, o, o,
			x, x, e,
			o, o, e,
		}

		cell, err := newTestBot().ChooseCell(board, entity.DifficultyEasy)

		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Takes the center when no line is in play", func(t *testing.T) {
		board := entity.Board{
			x, e, e,
			e, e, e,
			e, e, e,
		}

		cell, err := newTestBot().ChooseCell(board, entity.DifficultyEasy)

		require.NoError(t, err)
		assert.Equal(t, 4, cell)
	})

	t.Run("Takes corners in the fixed 0,2,6,8 order when the center is gone", func(t *testing.T) {
		board := entity.Board{
			x, e, e,
			e, o, e,
			e, e, e,
		}

		cell, err := newTestBot().ChooseCell(board, entity.DifficultyEasy)

		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Falls back to a random remaining cell", func(t *testing.T) {
		// Given: center and every corner taken, so only edges remain. The
		// win and block rules are skipped via the adaptive roll to reach
		// the fallback.
		board := entity.Board{
			x, e, o,
			e, x, e,
			o, e, x,
		}

		bot := newTestBot()
		bot.adaptive = true
		bot.chance = func() float64 { return 0 }
		bot.intn = func(n int) int {
			require.Equal(t, 4, n)
			return n - 1
		}

		// When: choosing among the empty edges 1,3,5,7
		cell, err := bot.ChooseCell(board, entity.DifficultyEasy)

		// Then: the rolled index is played
		require.NoError(t, err)
		assert.Equal(t, 7, cell)
	})

	t.Run("Returns ErrNoLegalMove on a full board", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		_, err := newTestBot().ChooseCell(board, entity.DifficultyEasy)

		assert.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})

	t.Run("Plays identically across tiers with adaptive off", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}

		bot := newTestBot()
		for _, difficulty := range entity.Difficulties() {
			cell, err := bot.ChooseCell(board, difficulty)
			require.NoError(t, err)
			assert.Equal(t, 2, cell, "tier %s diverged", difficulty)
		}
	})

	t.Run("Adaptive easy tier may skip the block rule", func(t *testing.T) {
		// Given: the human threatens row 0, chance roll below the easy skip rate
		board := entity.Board{
			x, x, e,
			e, e, e,
			e, e, e,
		}

		bot := newTestBot()
		bot.adaptive = true
		bot.chance = func() float64 { return 0 }

		// When: choosing on easy
		cell, err := bot.ChooseCell(board, entity.DifficultyEasy)

		// Then: rules 1-2 are skipped and the center is taken instead
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
	})

	t.Run("Adaptive hard tier never skips the block rule", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			e, e, e,
			e, e, e,
		}

		bot := newTestBot()
		bot.adaptive = true
		bot.chance = func() float64 { return 0 }

		cell, err := bot.ChooseCell(board, entity.DifficultyHard)

		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})
}
