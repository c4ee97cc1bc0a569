package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStats_DerivedValues(t *testing.T) {
	t.Run("Zero games played yields zero percentages", func(t *testing.T) {
		stats := NewGameStats()

		assert.Zero(t, stats.WinPercentage())
		assert.Zero(t, stats.AverageGameTime())
	})

	t.Run("Win percentage and average time are computed from totals", func(t *testing.T) {
		// Given: 3 of 4 games won, 100 seconds of play
		stats := NewGameStats()
		stats.TotalWins = 3
		stats.GamesPlayed = 4
		stats.TotalPlayTime = 100

		// Then: derived values follow
		assert.InDelta(t, 75.0, stats.WinPercentage(), 0.001)
		assert.InDelta(t, 25.0, stats.AverageGameTime(), 0.001)
	})
}

func TestGameStats_Tier(t *testing.T) {
	t.Run("Creates a bucket on first use and reuses it after", func(t *testing.T) {
		stats := NewGameStats()

		tier := stats.Tier(DifficultyHard)
		tier.Wins++

		assert.Same(t, tier, stats.Tier(DifficultyHard))
		assert.Equal(t, 1, stats.Tier(DifficultyHard).Wins)
	})

	t.Run("Works on stats decoded without a bucket map", func(t *testing.T) {
		stats := &GameStats{}

		require.NotNil(t, stats.Tier(DifficultyEasy))
	})
}

func TestGameStats_Clone(t *testing.T) {
	// Given: stats with a populated bucket
	stats := NewGameStats()
	stats.TotalWins = 2
	stats.Tier(DifficultyMedium).Wins = 2

	// When: cloning and mutating the clone
	clone := stats.Clone()
	clone.TotalWins = 10
	clone.Tier(DifficultyMedium).Wins = 10

	// Then: the original is untouched
	assert.Equal(t, 2, stats.TotalWins)
	assert.Equal(t, 2, stats.Tier(DifficultyMedium).Wins)
}
