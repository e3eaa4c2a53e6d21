// Package scores provides best-score and leaderboard persistence for the game.
//
// The scores package implements:
//   - A Persistence interface over a single BestScores record and an
//     append-only leaderboard log
//   - FilePersistence, the plain-text layout (best_score_<tier>.txt and
//     leaderboard.txt) kept in a data directory
//   - MemoryPersistence, an in-process backend for tests
//   - Store, the player-facing operations (load, save, append, display, reset)
//
// Core Types:
//
// BestScores maps each difficulty to its best (lowest) winning attempt count;
// 0 means unset. LeaderboardEntry is one appended record rendered as
// "<Label> mode: <N> attempts".
//
// Failure Model:
//
// Store never reports storage failures to the player. A best score that
// cannot be read counts as 0 and failed writes are dropped; both are logged
// at debug level.
//
// Usage:
//
//	persistence, err := scores.NewFilePersistence(".")
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := scores.NewStore(persistence, logger)
//
//	best := store.Load(ctx, engine.Easy)
//	if scores.IsImprovement(best, attempts) {
//		store.Save(ctx, engine.Easy, attempts)
//	}
//
// The SQLite backend lives in the scores/sqlite subpackage.
package scores
