package main

import (
	"fmt"
	"sort"

	"github.com/wricardo/numguess/game/engine"
)

// Window is the closed range the target is known to lie in.
type Window struct {
	Low  int
	High int
}

// Size returns the number of candidates left.
func (w Window) Size() int {
	if w.High < w.Low {
		return 0
	}
	return w.High - w.Low + 1
}

// Narrow applies the feedback for guess.
func (w Window) Narrow(guess int, outcome engine.Outcome) Window {
	switch outcome {
	case engine.TooHigh:
		if guess-1 < w.High {
			w.High = guess - 1
		}
	case engine.TooLow:
		if guess+1 > w.Low {
			w.Low = guess + 1
		}
	case engine.Correct:
		w.Low, w.High = guess, guess
	}
	return w
}

// Intersect clips w to [low, high].
func (w Window) Intersect(low, high int) Window {
	if low > w.Low {
		w.Low = low
	}
	if high < w.High {
		w.High = high
	}
	return w
}

// Strategy picks the next guess inside the current window.
type Strategy interface {
	Name() string
	Next(w Window) int
}

// Bisect always guesses the midpoint.
type Bisect struct{}

func (Bisect) Name() string { return "bisect" }

func (Bisect) Next(w Window) int {
	return w.Low + (w.High-w.Low)/2
}

// Linear guesses the lowest remaining candidate.
type Linear struct{}

func (Linear) Name() string { return "linear" }

func (Linear) Next(w Window) int {
	return w.Low
}

// RandomPick guesses uniformly inside the window.
type RandomPick struct {
	rng engine.Random
}

func (RandomPick) Name() string { return "random" }

func (s RandomPick) Next(w Window) int {
	return w.Low + s.rng.IntN(w.Size())
}

// NewStrategy resolves a strategy by name.
func NewStrategy(name string, rng engine.Random) (Strategy, error) {
	switch name {
	case "bisect":
		return Bisect{}, nil
	case "linear":
		return Linear{}, nil
	case "random":
		return RandomPick{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (choose from %v)", name, StrategyNames())
	}
}

// StrategyNames lists the strategies NewStrategy accepts.
func StrategyNames() []string {
	names := []string{"bisect", "linear", "random"}
	sort.Strings(names)
	return names
}
