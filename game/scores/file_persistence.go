package scores

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wricardo/numguess/game/engine"
)

const LeaderboardFile = "leaderboard.txt"

// FilePersistence implements Persistence with plain text files in one directory
type FilePersistence struct {
	dataDir string
}

// NewFilePersistence creates a file-based persistence layer rooted at dataDir
func NewFilePersistence(dataDir string) (*FilePersistence, error) {
	if dataDir == "" {
		dataDir = "."
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FilePersistence{dataDir: dataDir}, nil
}

// BestScoreFile returns the file name holding the best score of d
func BestScoreFile(d engine.Difficulty) string {
	return fmt.Sprintf("best_score_%s.txt", d.Key())
}

// LoadBestScores reads every best score file. Missing files count as 0.
func (fp *FilePersistence) LoadBestScores(ctx context.Context) (BestScores, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := NewBestScores()
	var errs []error

	for _, d := range engine.Difficulties() {
		value, err := fp.readBestScore(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scores[d] = value
	}

	return scores, errors.Join(errs...)
}

func (fp *FilePersistence) readBestScore(d engine.Difficulty) (int, error) {
	data, err := os.ReadFile(fp.path(BestScoreFile(d)))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read %s best score: %w", d.Key(), err)
	}

	// Only the first whitespace-separated token is significant
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, nil
	}

	value, err := leadingInt(fields[0])
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %s best score %q", ErrInvalidScore, d.Key(), fields[0])
	}

	return value, nil
}

// leadingInt parses the longest integer prefix of token, so "5abc" reads as 5.
func leadingInt(token string) (int, error) {
	end := 0
	if end < len(token) && (token[end] == '+' || token[end] == '-') {
		end++
	}
	digits := end
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(token[:end])
}

// SaveBestScores overwrites the best score file of every difficulty in the record
func (fp *FilePersistence) SaveBestScores(ctx context.Context, scores BestScores) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, d := range engine.Difficulties() {
		value, ok := scores[d]
		if !ok {
			continue
		}
		if value < 0 {
			return fmt.Errorf("%w: %s best score %d", ErrInvalidScore, d.Key(), value)
		}

		if err := os.WriteFile(fp.path(BestScoreFile(d)), []byte(strconv.Itoa(value)), 0644); err != nil {
			return fmt.Errorf("failed to write %s best score: %w", d.Key(), err)
		}
	}

	return nil
}

// AppendLeaderboard appends one line to the leaderboard file
func (fp *FilePersistence) AppendLeaderboard(ctx context.Context, entry LeaderboardEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	f, err := os.OpenFile(fp.path(LeaderboardFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open leaderboard: %w", err)
	}

	if _, err := fmt.Fprintln(f, entry.Line()); err != nil {
		f.Close()
		return fmt.Errorf("failed to append leaderboard: %w", err)
	}

	return f.Close()
}

// ReadLeaderboard returns up to limit leaderboard lines in file order
func (fp *FilePersistence) ReadLeaderboard(ctx context.Context, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(fp.path(LeaderboardFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open leaderboard: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if limit > 0 && len(lines) >= limit {
			break
		}
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	return lines, nil
}

// ResetLeaderboard truncates the leaderboard file, creating it if needed
func (fp *FilePersistence) ResetLeaderboard(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(fp.path(LeaderboardFile), nil, 0644); err != nil {
		return fmt.Errorf("failed to reset leaderboard: %w", err)
	}

	return nil
}

// DataDir returns the directory the files live in
func (fp *FilePersistence) DataDir() string {
	return fp.dataDir
}

func (fp *FilePersistence) path(name string) string {
	return filepath.Join(fp.dataDir, name)
}
