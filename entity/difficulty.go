package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty - declared opponent strength tier. The bundled opponent plays
// the same way on every tier unless adaptive tiers are switched on.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyOptimus Difficulty = "optimus"
)

func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyOptimus}
}

func ParseDifficulty(raw string) (Difficulty, error) {
	switch Difficulty(raw) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyOptimus:
		return Difficulty(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, raw)
	}
}
