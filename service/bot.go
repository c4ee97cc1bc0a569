package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/entity"
	"github.com/rocketscienceinc/tictactoe-engine/tictactoe"
)

// corners in the fixed preference order used by rule 4.
var corners = [4]int{0, 2, 6, 8}

// tierSkipChance - probability per tier of skipping the win-now and block
// rules, applied only when the adaptive flag is on. All tiers behave
// identically with the flag off, matching the reference behavior.
var tierSkipChance = map[entity.Difficulty]float64{
	entity.DifficultyEasy:    0.75,
	entity.DifficultyMedium:  0.35,
	entity.DifficultyHard:    0,
	entity.DifficultyOptimus: 0,
}

type BotService interface {
	ChooseCell(board entity.Board, difficulty entity.Difficulty) (int, error)
}

type botService struct {
	adaptive bool

	intn   func(n int) int
	chance func() float64
}

// NewBotService - creates the heuristic opponent. With adaptive off the
// policy is tier-independent: win-now, block, center, corner, then a random
// remaining cell.
func NewBotService(adaptive bool) BotService {
	return &botService{
		adaptive: adaptive,
		intn:     rand.Intn,    //nolint: gosec // it's ok
		chance:   rand.Float64, //nolint: gosec // it's ok
	}
}

func (that *botService) ChooseCell(board entity.Board, difficulty entity.Difficulty) (int, error) {
	availableCells := board.Empties()
	if len(availableCells) == 0 {
		return 0, fmt.Errorf("%w: board is full", apperror.ErrNoLegalMove)
	}

	if !that.adaptive || that.chance() >= tierSkipChance[difficulty] {
		// Rule 1: complete an own line.
		if cell, ok := winningCell(board, availableCells, entity.PlayerO); ok {
			return cell, nil
		}

		// Rule 2: block the human's line.
		if cell, ok := winningCell(board, availableCells, entity.PlayerX); ok {
			return cell, nil
		}
	}

	// Rule 3: take the center.
	if board[4] == entity.EmptyCell {
		return 4, nil
	}

	// Rule 4: take the first free corner.
	for _, cell := range corners {
		if board[cell] == entity.EmptyCell {
			return cell, nil
		}
	}

	// Rule 5: any remaining cell.
	return availableCells[that.intn(len(availableCells))], nil
}

// winningCell - lowest empty cell that completes a line for the given mark.
func winningCell(board entity.Board, availableCells []int, mark string) (int, bool) {
	for _, cell := range availableCells {
		probe := board
		probe[cell] = mark

		if result := tictactoe.Evaluate(probe); result != nil && result.Winner == mark {
			return cell, true
		}
	}

	return 0, false
}
