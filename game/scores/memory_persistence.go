package scores

import (
	"context"
	"sync"
)

// MemoryPersistence keeps scores in process memory. Used by tests and as a
// fallback when no data directory is writable.
type MemoryPersistence struct {
	mu          sync.RWMutex
	best        BestScores
	leaderboard []string

	// Fail, when set, is returned by every operation
	Fail error
}

// NewMemoryPersistence creates an empty in-memory backend
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{best: NewBestScores()}
}

func (m *MemoryPersistence) LoadBestScores(ctx context.Context) (BestScores, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Fail != nil {
		return NewBestScores(), m.Fail
	}
	return m.best.Clone(), ctx.Err()
}

func (m *MemoryPersistence) SaveBestScores(ctx context.Context, scores BestScores) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Fail != nil {
		return m.Fail
	}
	for d, v := range scores {
		if v < 0 {
			return ErrInvalidScore
		}
		m.best[d] = v
	}
	return ctx.Err()
}

func (m *MemoryPersistence) AppendLeaderboard(ctx context.Context, entry LeaderboardEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Fail != nil {
		return m.Fail
	}
	m.leaderboard = append(m.leaderboard, entry.Line())
	return ctx.Err()
}

func (m *MemoryPersistence) ReadLeaderboard(ctx context.Context, limit int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Fail != nil {
		return nil, m.Fail
	}

	n := len(m.leaderboard)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]string, n)
	copy(out, m.leaderboard[:n])
	return out, ctx.Err()
}

func (m *MemoryPersistence) ResetLeaderboard(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Fail != nil {
		return m.Fail
	}
	m.leaderboard = nil
	return ctx.Err()
}
