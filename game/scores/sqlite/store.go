// Package sqlite provides a SQLite-backed score persistence implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/wricardo/numguess/game/engine"
	"github.com/wricardo/numguess/game/scores"
	"github.com/wricardo/numguess/game/scores/sqlite/migrations"
)

// DefaultFile is the database file name used inside the data directory.
const DefaultFile = "numguess.db"

// Store persists scores in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ scores.Persistence = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite score store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// LoadBestScores returns every stored best score; missing rows count as 0.
func (s *Store) LoadBestScores(ctx context.Context) (scores.BestScores, error) {
	if err := s.ready(ctx); err != nil {
		return scores.NewBestScores(), err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT difficulty, attempts FROM best_scores`)
	if err != nil {
		return scores.NewBestScores(), fmt.Errorf("query best scores: %w", err)
	}
	defer rows.Close()

	best := scores.NewBestScores()
	for rows.Next() {
		var key string
		var attempts int
		if err := rows.Scan(&key, &attempts); err != nil {
			return best, fmt.Errorf("scan best score: %w", err)
		}
		d, err := engine.ParseDifficultyKey(key)
		if err != nil {
			continue
		}
		best[d] = attempts
	}
	if err := rows.Err(); err != nil {
		return best, fmt.Errorf("iterate best scores: %w", err)
	}
	return best, nil
}

// SaveBestScores upserts every difficulty in the record in one transaction.
func (s *Store) SaveBestScores(ctx context.Context, record scores.BestScores) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save best scores: %w", err)
	}

	now := toMillis(time.Now())
	for _, d := range engine.Difficulties() {
		value, ok := record[d]
		if !ok {
			continue
		}
		if value < 0 {
			_ = tx.Rollback()
			return fmt.Errorf("%w: %s best score %d", scores.ErrInvalidScore, d.Key(), value)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO best_scores (difficulty, attempts, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(difficulty) DO UPDATE SET attempts = excluded.attempts, updated_at = excluded.updated_at`,
			d.Key(), value, now,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save %s best score: %w", d.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit best scores: %w", err)
	}
	return nil
}

// AppendLeaderboard inserts one leaderboard row.
func (s *Store) AppendLeaderboard(ctx context.Context, entry scores.LeaderboardEntry) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	recordedAt := entry.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	if _, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO leaderboard_entries (difficulty, attempts, session_id, recorded_at) VALUES (?, ?, ?, ?)`,
		entry.Difficulty.Key(), entry.Attempts, entry.SessionID, toMillis(recordedAt),
	); err != nil {
		return fmt.Errorf("append leaderboard: %w", err)
	}
	return nil
}

// ReadLeaderboard returns up to limit rows in insertion order, rendered as log lines.
func (s *Store) ReadLeaderboard(ctx context.Context, limit int) ([]string, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT difficulty, attempts FROM leaderboard_entries ORDER BY id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var key string
		var attempts int
		if err := rows.Scan(&key, &attempts); err != nil {
			return lines, fmt.Errorf("scan leaderboard: %w", err)
		}
		d, err := engine.ParseDifficultyKey(key)
		if err != nil {
			continue
		}
		lines = append(lines, scores.LeaderboardEntry{Difficulty: d, Attempts: attempts}.Line())
	}
	if err := rows.Err(); err != nil {
		return lines, fmt.Errorf("iterate leaderboard: %w", err)
	}
	return lines, nil
}

// ResetLeaderboard deletes every leaderboard row.
func (s *Store) ResetLeaderboard(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM leaderboard_entries`); err != nil {
		return fmt.Errorf("reset leaderboard: %w", err)
	}
	return nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}
