package service

import (
	"context"

	"github.com/wricardo/numguess/game/stats"
)

// GameService defines all game flows reachable from the main menu
type GameService interface {
	// Sessions
	PlaySinglePlayer(ctx context.Context, running stats.Running) (stats.Running, error)
	PlayMultiplayer(ctx context.Context, running stats.Running) (stats.Running, error)

	// Screens
	ShowLeaderboard(ctx context.Context)
	ResetScores(ctx context.Context)
	ShowStats(running stats.Running)

	// Results
	LastResult() *SessionResult
}
