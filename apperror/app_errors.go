package apperror

import "errors"

var (
	ErrOutOfRange     = errors.New("cell index out of range")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrGameNotStarted = errors.New("game is not started")
	ErrGameFinished   = errors.New("game is already finished")
	ErrNoLegalMove    = errors.New("no legal move available")

	ErrStatsNotFound   = errors.New("stats not found")
	ErrProfileNotFound = errors.New("profile not found")
)
