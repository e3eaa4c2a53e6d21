package scores

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/wricardo/numguess/game/engine"
)

var (
	ErrInvalidScore     = errors.New("invalid score")
	ErrMalformedLine    = errors.New("malformed leaderboard line")
	ErrPersistenceUnset = errors.New("persistence is not configured")
)

// LeaderboardDisplayLimit is how many leaderboard lines the menu shows.
const LeaderboardDisplayLimit = 5

// Persistence defines the storage backend for scores
type Persistence interface {
	// LoadBestScores returns the best score of every difficulty. Unreadable
	// values are reported as 0 alongside a non-nil error.
	LoadBestScores(ctx context.Context) (BestScores, error)

	// SaveBestScores overwrites the stored record
	SaveBestScores(ctx context.Context, scores BestScores) error

	// AppendLeaderboard appends one entry to the log
	AppendLeaderboard(ctx context.Context, entry LeaderboardEntry) error

	// ReadLeaderboard returns up to limit lines in insertion order; limit <= 0 means all
	ReadLeaderboard(ctx context.Context, limit int) ([]string, error)

	// ResetLeaderboard truncates the log
	ResetLeaderboard(ctx context.Context) error
}

// BestScores is the persisted best score per difficulty; 0 means unset.
type BestScores map[engine.Difficulty]int

// NewBestScores returns a record with every difficulty set to 0.
func NewBestScores() BestScores {
	scores := make(BestScores, len(engine.Difficulties()))
	for _, d := range engine.Difficulties() {
		scores[d] = 0
	}
	return scores
}

// Clone returns a copy that always contains every difficulty.
func (b BestScores) Clone() BestScores {
	out := NewBestScores()
	for d, v := range b {
		out[d] = v
	}
	return out
}

// IsImprovement reports whether attempts should replace current as the best score.
func IsImprovement(current, attempts int) bool {
	return current == 0 || attempts < current
}

// LeaderboardEntry is one appended leaderboard record.
type LeaderboardEntry struct {
	Difficulty engine.Difficulty `json:"difficulty"`
	Attempts   int               `json:"attempts"`
	SessionID  string            `json:"session_id,omitempty"`
	RecordedAt time.Time         `json:"recorded_at,omitzero"`
}

// Line renders the entry in the leaderboard log format.
func (e LeaderboardEntry) Line() string {
	return fmt.Sprintf("%s mode: %d attempts", e.Difficulty.Label(), e.Attempts)
}

// Validate checks the entry can be persisted.
func (e LeaderboardEntry) Validate() error {
	if !e.Difficulty.Valid() {
		return fmt.Errorf("%w: %d", engine.ErrUnknownDifficulty, int(e.Difficulty))
	}
	if e.Attempts < 1 {
		return fmt.Errorf("%w: %d attempts", ErrInvalidScore, e.Attempts)
	}
	return nil
}

var leaderboardLine = regexp.MustCompile(`^(Easy|Medium|Hard) mode: ([0-9]+) attempts$`)

// ParseLeaderboardLine parses a line written by LeaderboardEntry.Line.
func ParseLeaderboardLine(line string) (LeaderboardEntry, error) {
	m := leaderboardLine.FindStringSubmatch(line)
	if m == nil {
		return LeaderboardEntry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	d, err := engine.ParseDifficultyKey(m[1])
	if err != nil {
		return LeaderboardEntry{}, err
	}

	attempts, err := strconv.Atoi(m[2])
	if err != nil {
		return LeaderboardEntry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return LeaderboardEntry{Difficulty: d, Attempts: attempts}, nil
}
