// Package engine provides the core rules of the number guessing game.
//
// The engine package implements:
//   - Difficulty tiers and their attempt budgets
//   - Secret target selection from a seeded pseudo-random source
//   - Guess evaluation (too high, too low, correct)
//   - The one-time hint window revealed on the third attempt
//
// Core Types:
//
// Difficulty enumerates the Easy, Medium and Hard tiers. Round holds the
// transient state of one guessing session: the target, the inclusive upper
// bound, the attempt budget and the attempts used so far. Round does no I/O;
// the service package drives it from the console.
//
// Usage:
//
//	rng := engine.NewRandom(engine.SeedFromClock(time.Now()))
//	round, err := engine.NewRound(rng, engine.DefaultUpperBound, engine.Easy.MaxAttempts(), time.Now())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := round.Guess(50)
//	if round.HintDue() {
//		low, high := round.Hint()
//		fmt.Printf("between %d and %d\n", low, high)
//	}
//
// Game Rules:
//
// The target is drawn uniformly from [1, upperBound]. Every guess consumes
// one attempt. A round ends when the target is guessed or when the attempt
// budget is spent.
package engine
