package entity

import "time"

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// GameResult - summary of one finished game, handed to the statistics
// aggregator and to game-end listeners.
type GameResult struct {
	Winner     string        `json:"winner"` // PlayerX, PlayerO or PlayerTie
	Duration   time.Duration `json:"duration"`
	TotalMoves int           `json:"total_moves"`
	Difficulty Difficulty    `json:"difficulty"`
}

func (that *GameResult) IsHumanWin() bool {
	return that.Winner == PlayerX
}

func (that *GameResult) IsTie() bool {
	return that.Winner == PlayerTie
}
