package entity

// PerfectGameMoves - total board moves in the fastest possible human win:
// three by the human, two by the opponent.
const PerfectGameMoves = 5

// TierStats - per-difficulty slice of the aggregate counters.
type TierStats struct {
	Played     int     `json:"played"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Ties       int     `json:"ties"`
	FastestWin float64 `json:"fastest_win"` // seconds, 0 means unset
}

// GameStats - cumulative statistics across all games of one installation.
// Mutated only by the statistics service; durations are kept in seconds.
type GameStats struct {
	WinStreak     int     `json:"win_streak"`
	BestStreak    int     `json:"best_streak"`
	FastestWin    float64 `json:"fastest_win"` // seconds, 0 means unset
	TotalWins     int     `json:"total_wins"`
	TotalLosses   int     `json:"total_losses"`
	TotalTies     int     `json:"total_ties"`
	GamesPlayed   int     `json:"games_played"`
	TotalPlayTime float64 `json:"total_play_time"` // seconds
	PerfectGames  int     `json:"perfect_games"`

	ByDifficulty map[Difficulty]*TierStats `json:"by_difficulty"`
}

func NewGameStats() *GameStats {
	return &GameStats{
		ByDifficulty: make(map[Difficulty]*TierStats),
	}
}

// Tier - returns the bucket for the given difficulty, creating it on first use.
func (that *GameStats) Tier(difficulty Difficulty) *TierStats {
	if that.ByDifficulty == nil {
		that.ByDifficulty = make(map[Difficulty]*TierStats)
	}

	tier, ok := that.ByDifficulty[difficulty]
	if !ok {
		tier = &TierStats{}
		that.ByDifficulty[difficulty] = tier
	}

	return tier
}

// WinPercentage - share of played games won by the human, 0..100.
func (that *GameStats) WinPercentage() float64 {
	if that.GamesPlayed == 0 {
		return 0
	}

	return float64(that.TotalWins) / float64(that.GamesPlayed) * 100
}

// AverageGameTime - mean game duration in seconds.
func (that *GameStats) AverageGameTime() float64 {
	if that.GamesPlayed == 0 {
		return 0
	}

	return that.TotalPlayTime / float64(that.GamesPlayed)
}

// Clone - deep copy, so readers never share the live bucket map.
func (that *GameStats) Clone() *GameStats {
	clone := *that

	clone.ByDifficulty = make(map[Difficulty]*TierStats, len(that.ByDifficulty))
	for difficulty, tier := range that.ByDifficulty {
		tierCopy := *tier
		clone.ByDifficulty[difficulty] = &tierCopy
	}

	return &clone
}
