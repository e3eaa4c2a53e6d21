// Package service provides the game flows of the number-guessing game.
//
// The service package implements:
//   - Single-player sessions with difficulty tiers and an optional custom range
//   - Two-player sessions sharing one attempt budget
//   - Best-score bookkeeping and leaderboard appends
//   - Leaderboard, reset and statistics screens
//
// Architecture:
//
// The service layer sits between the menu controller and the engine. It owns
// the player dialogue through a console.Prompter, draws targets from an
// engine.Random, and persists results through a scores.Store. Running
// statistics are values: each flow receives the current stats.Running and
// returns the updated one.
//
// Usage:
//
//	prompter := console.NewPrompter(os.Stdin, os.Stdout)
//	store := scores.NewStore(persistence, logger)
//	svc := service.NewGameService(prompter, store, rng, time.Now, logger)
//
//	running, err := svc.PlaySinglePlayer(ctx, stats.Running{})
//	if err != nil {
//		return err
//	}
//
// Every session gets a random UUID that tags log lines and leaderboard rows.
package service
