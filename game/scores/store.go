package scores

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/wricardo/numguess/game/engine"
)

// Store exposes the score operations used by the game. Storage failures are
// logged and never returned.
type Store struct {
	persistence Persistence
	log         zerolog.Logger
}

// NewStore creates a store over persistence
func NewStore(persistence Persistence, log zerolog.Logger) *Store {
	return &Store{
		persistence: persistence,
		log:         log.With().Str("component", "scores").Logger(),
	}
}

// Load returns the best score of d, or 0 if it is unset or unreadable
func (s *Store) Load(ctx context.Context, d engine.Difficulty) int {
	if s.persistence == nil {
		return 0
	}

	scores, err := s.persistence.LoadBestScores(ctx)
	if err != nil {
		s.log.Debug().Err(err).Str("difficulty", d.Key()).Msg("best score unreadable, treating as unset")
	}
	if scores == nil {
		return 0
	}
	return scores[d]
}

// Save overwrites the best score of d
func (s *Store) Save(ctx context.Context, d engine.Difficulty, score int) {
	if s.persistence == nil {
		return
	}

	if err := s.persistence.SaveBestScores(ctx, BestScores{d: score}); err != nil {
		s.log.Debug().Err(err).Str("difficulty", d.Key()).Int("score", score).Msg("failed to save best score")
		return
	}

	s.log.Debug().Str("difficulty", d.Key()).Int("score", score).Msg("best score saved")
}

// AppendLeaderboard appends one entry to the leaderboard log
func (s *Store) AppendLeaderboard(ctx context.Context, entry LeaderboardEntry) {
	if s.persistence == nil {
		return
	}

	if err := s.persistence.AppendLeaderboard(ctx, entry); err != nil {
		s.log.Debug().Err(err).Str("line", entry.Line()).Msg("failed to append leaderboard")
	}
}

// DisplayLeaderboard prints the first LeaderboardDisplayLimit lines of the log.
// Lines appear in insertion order, not sorted by score.
func (s *Store) DisplayLeaderboard(ctx context.Context, w io.Writer) {
	fmt.Fprintf(w, "\nLeaderboard (Top %d entries):\n", LeaderboardDisplayLimit)

	lines := s.Leaderboard(ctx, LeaderboardDisplayLimit)
	if len(lines) == 0 {
		fmt.Fprintln(w, "No leaderboard data available.")
		return
	}

	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// Leaderboard returns up to limit lines of the log in insertion order
func (s *Store) Leaderboard(ctx context.Context, limit int) []string {
	if s.persistence == nil {
		return nil
	}

	lines, err := s.persistence.ReadLeaderboard(ctx, limit)
	if err != nil {
		s.log.Debug().Err(err).Msg("failed to read leaderboard")
	}
	return lines
}

// Reset sets every best score to 0 and empties the leaderboard
func (s *Store) Reset(ctx context.Context) {
	if s.persistence == nil {
		return
	}

	if err := s.persistence.SaveBestScores(ctx, NewBestScores()); err != nil {
		s.log.Debug().Err(err).Msg("failed to reset best scores")
	}
	if err := s.persistence.ResetLeaderboard(ctx); err != nil {
		s.log.Debug().Err(err).Msg("failed to reset leaderboard")
	}

	s.log.Debug().Msg("scores reset")
}

// Snapshot is a read-only view of the persisted scores
type Snapshot struct {
	BestScores  BestScores `json:"best_scores"`
	Leaderboard []string   `json:"leaderboard"`
}

// Snapshot returns the best scores and up to limit leaderboard lines.
// Unreadable best scores count as 0, as in Load; leaderboard errors are returned.
func (s *Store) Snapshot(ctx context.Context, limit int) (*Snapshot, error) {
	if s.persistence == nil {
		return nil, ErrPersistenceUnset
	}

	best, err := s.persistence.LoadBestScores(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("best scores unreadable, treating as unset")
	}
	if best == nil {
		best = NewBestScores()
	}

	lines, err := s.persistence.ReadLeaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	if lines == nil {
		lines = []string{}
	}

	return &Snapshot{BestScores: best.Clone(), Leaderboard: lines}, nil
}
