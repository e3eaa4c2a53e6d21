package main

import (
	"time"

	"github.com/wricardo/numguess/game/engine"
)

// Report aggregates the rounds played by one strategy on one difficulty.
type Report struct {
	Strategy    string
	Difficulty  engine.Difficulty
	UpperBound  int
	Rounds      int
	Wins        int
	WinAttempts int
	Masters     int
}

// WinRate returns the share of rounds won in [0, 1].
func (r Report) WinRate() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Rounds)
}

// MeanAttempts returns the average attempts over won rounds.
func (r Report) MeanAttempts() float64 {
	if r.Wins == 0 {
		return 0
	}
	return float64(r.WinAttempts) / float64(r.Wins)
}

func (r *Report) record(round *engine.Round) {
	r.Rounds++
	if !round.Won {
		return
	}
	r.Wins++
	r.WinAttempts += round.Attempts
	if round.MasterGuesser() {
		r.Masters++
	}
}

// Simulator plays rounds against the engine with a fixed strategy.
type Simulator struct {
	Strategy Strategy
	UseHint  bool
	now      func() time.Time
}

// NewSimulator creates a simulator for s.
func NewSimulator(s Strategy, useHint bool) *Simulator {
	return &Simulator{Strategy: s, UseHint: useHint, now: time.Now}
}

// Play runs one round to completion.
func (sim *Simulator) Play(round *engine.Round) {
	w := Window{Low: 1, High: round.UpperBound}
	for !round.Over() && w.Size() > 0 {
		guess := sim.Strategy.Next(w)
		outcome, err := round.Guess(guess)
		if err != nil {
			return
		}
		w = w.Narrow(guess, outcome)
		if sim.UseHint && round.HintDue() && !round.Won {
			w = w.Intersect(round.Hint())
		}
	}
}

// Exhaustive plays one round for every target in [1, upperBound].
func (sim *Simulator) Exhaustive(d engine.Difficulty, upperBound int) (Report, error) {
	report := Report{Strategy: sim.Strategy.Name(), Difficulty: d, UpperBound: upperBound}
	for target := 1; target <= upperBound; target++ {
		round, err := engine.NewRoundWithTarget(target, upperBound, d.MaxAttempts(), sim.now())
		if err != nil {
			return report, err
		}
		sim.Play(round)
		report.record(round)
	}
	return report, nil
}

// Sample plays n rounds with targets drawn from rng.
func (sim *Simulator) Sample(d engine.Difficulty, upperBound, n int, rng engine.Random) (Report, error) {
	report := Report{Strategy: sim.Strategy.Name(), Difficulty: d, UpperBound: upperBound}
	for i := 0; i < n; i++ {
		round, err := engine.NewRound(rng, upperBound, d.MaxAttempts(), sim.now())
		if err != nil {
			return report, err
		}
		sim.Play(round)
		report.record(round)
	}
	return report, nil
}
