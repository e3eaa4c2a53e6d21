package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty is one of the three single-player tiers.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

const (
	MaxAttemptsEasy   = 15
	MaxAttemptsMedium = 10
	MaxAttemptsHard   = 5

	// Range and session constants
	DefaultUpperBound     = 100
	MinUpperBound         = 2
	MaxUpperBound         = 1<<31 - 1
	MultiplayerAttempts   = MaxAttemptsMedium
	HintAttempt           = 3
	MasterGuesserAttempts = 3
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrInvalidUpperBound = errors.New("invalid upper bound")
	ErrInvalidAttempts   = errors.New("invalid attempt budget")
	ErrRoundOver         = errors.New("round is over")
)

// Difficulties returns every tier in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty maps a menu choice (1-3) to a Difficulty.
func ParseDifficulty(choice int) (Difficulty, error) {
	d := Difficulty(choice)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownDifficulty, choice)
	}
	return d, nil
}

// ParseDifficultyKey maps a persistence key such as "easy" to a Difficulty.
func ParseDifficultyKey(key string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if strings.EqualFold(key, d.Key()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, key)
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// MaxAttempts returns the attempt budget of the tier.
func (d Difficulty) MaxAttempts() int {
	switch d {
	case Easy:
		return MaxAttemptsEasy
	case Medium:
		return MaxAttemptsMedium
	case Hard:
		return MaxAttemptsHard
	default:
		return 0
	}
}

// Key returns the lowercase name used by persistence backends.
func (d Difficulty) Key() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Label returns the display name, e.g. "Easy".
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

func (d Difficulty) String() string {
	return d.Label()
}

// MarshalText encodes the difficulty as its key so it can be used as a JSON map key.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	return []byte(d.Key()), nil
}

// UnmarshalText decodes a difficulty key.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficultyKey(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Outcome is the result of comparing a guess with the target.
type Outcome int

const (
	TooLow Outcome = iota
	TooHigh
	Correct
)

func (o Outcome) String() string {
	switch o {
	case TooLow:
		return "too_low"
	case TooHigh:
		return "too_high"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}
