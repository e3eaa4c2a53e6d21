package engine

import (
	"fmt"
	"time"
)

// Round holds the state of one guessing session.
type Round struct {
	Target      int
	UpperBound  int
	MaxAttempts int
	Attempts    int
	StartedAt   time.Time
	Won         bool
}

// NewRound draws a target in [1, upperBound] and starts a round.
func NewRound(rng Random, upperBound, maxAttempts int, now time.Time) (*Round, error) {
	if err := validateRound(upperBound, maxAttempts); err != nil {
		return nil, err
	}
	return &Round{
		Target:      DrawTarget(rng, upperBound),
		UpperBound:  upperBound,
		MaxAttempts: maxAttempts,
		StartedAt:   now,
	}, nil
}

// NewRoundWithTarget starts a round with a fixed target (used by tests and replays).
func NewRoundWithTarget(target, upperBound, maxAttempts int, now time.Time) (*Round, error) {
	if err := validateRound(upperBound, maxAttempts); err != nil {
		return nil, err
	}
	if target < 1 || target > upperBound {
		return nil, fmt.Errorf("target %d outside [1, %d]", target, upperBound)
	}
	return &Round{
		Target:      target,
		UpperBound:  upperBound,
		MaxAttempts: maxAttempts,
		StartedAt:   now,
	}, nil
}

func validateRound(upperBound, maxAttempts int) error {
	if upperBound < MinUpperBound || upperBound > MaxUpperBound {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidUpperBound, upperBound, MinUpperBound, MaxUpperBound)
	}
	if maxAttempts < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidAttempts, maxAttempts)
	}
	return nil
}

// Guess consumes one attempt and compares n with the target.
func (r *Round) Guess(n int) (Outcome, error) {
	if r.Over() {
		return 0, ErrRoundOver
	}

	r.Attempts++

	switch {
	case n > r.Target:
		return TooHigh, nil
	case n < r.Target:
		return TooLow, nil
	default:
		r.Won = true
		return Correct, nil
	}
}

// HintDue reports whether the hint window should be shown after the latest guess.
// It is true only right after the third attempt.
func (r *Round) HintDue() bool {
	return r.Attempts == HintAttempt
}

// Hint returns the clamped window around the target.
func (r *Round) Hint() (low, high int) {
	return HintWindow(r.Target, r.UpperBound)
}

// Exhausted reports whether the budget is spent without a win.
func (r *Round) Exhausted() bool {
	return !r.Won && r.Attempts >= r.MaxAttempts
}

// Over reports whether no more guesses are accepted.
func (r *Round) Over() bool {
	return r.Won || r.Attempts >= r.MaxAttempts
}

// Remaining returns the attempts left in the budget.
func (r *Round) Remaining() int {
	if r.Attempts >= r.MaxAttempts {
		return 0
	}
	return r.MaxAttempts - r.Attempts
}

// Elapsed returns the wall time since the round started.
func (r *Round) Elapsed(now time.Time) time.Duration {
	if now.Before(r.StartedAt) {
		return 0
	}
	return now.Sub(r.StartedAt)
}

// ElapsedSeconds returns Elapsed truncated to whole seconds.
func (r *Round) ElapsedSeconds(now time.Time) int {
	return int(r.Elapsed(now) / time.Second)
}

// MasterGuesser reports whether a won round earns the achievement.
func (r *Round) MasterGuesser() bool {
	return r.Won && r.Attempts <= MasterGuesserAttempts
}
