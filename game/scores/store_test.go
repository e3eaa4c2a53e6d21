package scores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wricardo/numguess/game/engine"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestStore_LoadAndSave(t *testing.T) {
	store := NewStore(NewMemoryPersistence(), testLogger())
	ctx := context.Background()

	if got := store.Load(ctx, engine.Medium); got != 0 {
		t.Errorf("Expected unset best score 0, got %d", got)
	}

	store.Save(ctx, engine.Medium, 6)
	store.Save(ctx, engine.Hard, 3)

	if got := store.Load(ctx, engine.Medium); got != 6 {
		t.Errorf("Expected 6, got %d", got)
	}
	if got := store.Load(ctx, engine.Hard); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
	if got := store.Load(ctx, engine.Easy); got != 0 {
		t.Errorf("Saving one tier must not touch another, got %d", got)
	}
}

func TestStore_FailuresAreSilent(t *testing.T) {
	persistence := NewMemoryPersistence()
	persistence.Fail = errors.New("disk on fire")
	store := NewStore(persistence, testLogger())
	ctx := context.Background()

	if got := store.Load(ctx, engine.Easy); got != 0 {
		t.Errorf("Expected 0 on failure, got %d", got)
	}

	store.Save(ctx, engine.Easy, 3)
	store.AppendLeaderboard(ctx, LeaderboardEntry{Difficulty: engine.Easy, Attempts: 3})
	store.Reset(ctx)

	var buf bytes.Buffer
	store.DisplayLeaderboard(ctx, &buf)
	if !strings.Contains(buf.String(), "No leaderboard data available.") {
		t.Errorf("Expected no-data message, got %q", buf.String())
	}

	if _, err := store.Snapshot(ctx, 5); err == nil {
		t.Error("Snapshot should report storage errors")
	}
}

func TestStore_DisplayLeaderboard(t *testing.T) {
	tests := []struct {
		name     string
		entries  []LeaderboardEntry
		expected string
	}{
		{
			name:     "empty",
			expected: "\nLeaderboard (Top 5 entries):\nNo leaderboard data available.\n",
		},
		{
			name: "fewer than five",
			entries: []LeaderboardEntry{
				{Difficulty: engine.Hard, Attempts: 4},
				{Difficulty: engine.Easy, Attempts: 2},
			},
			expected: "\nLeaderboard (Top 5 entries):\nHard mode: 4 attempts\nEasy mode: 2 attempts\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(NewMemoryPersistence(), testLogger())
			ctx := context.Background()
			for _, e := range tt.entries {
				store.AppendLeaderboard(ctx, e)
			}

			var buf bytes.Buffer
			store.DisplayLeaderboard(ctx, &buf)
			if buf.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

// The leaderboard shows the first five appended lines, not the five best.
func TestStore_DisplayLeaderboardShowsFirstFiveInFileOrder(t *testing.T) {
	persistence, _ := newTestFilePersistence(t)
	store := NewStore(persistence, testLogger())
	ctx := context.Background()

	attempts := []int{12, 9, 7, 6, 5, 1, 1}
	for _, a := range attempts {
		store.AppendLeaderboard(ctx, LeaderboardEntry{Difficulty: engine.Easy, Attempts: a})
	}

	var buf bytes.Buffer
	store.DisplayLeaderboard(ctx, &buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected header plus 5 lines, got %d: %q", len(lines), lines)
	}
	for i, a := range attempts[:5] {
		expected := fmt.Sprintf("Easy mode: %d attempts", a)
		if lines[i+1] != expected {
			t.Errorf("Line %d: expected %q, got %q", i+1, expected, lines[i+1])
		}
	}
	if strings.Contains(buf.String(), "Easy mode: 1 attempts") {
		t.Error("Entries after the fifth must not be shown")
	}
}

func TestStore_ResetKeepsWorkingAfterwards(t *testing.T) {
	store := NewStore(NewMemoryPersistence(), testLogger())
	ctx := context.Background()

	store.Save(ctx, engine.Easy, 4)
	store.AppendLeaderboard(ctx, LeaderboardEntry{Difficulty: engine.Easy, Attempts: 4})
	store.Reset(ctx)

	for _, d := range engine.Difficulties() {
		if got := store.Load(ctx, d); got != 0 {
			t.Errorf("Expected %s reset to 0, got %d", d, got)
		}
	}
	if lines := store.Leaderboard(ctx, 0); len(lines) != 0 {
		t.Errorf("Expected empty leaderboard, got %v", lines)
	}
}

func TestStore_Snapshot(t *testing.T) {
	store := NewStore(NewMemoryPersistence(), testLogger())
	ctx := context.Background()

	store.Save(ctx, engine.Hard, 2)
	store.AppendLeaderboard(ctx, LeaderboardEntry{Difficulty: engine.Hard, Attempts: 2})

	snap, err := store.Snapshot(ctx, 5)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.BestScores[engine.Hard] != 2 || snap.BestScores[engine.Easy] != 0 {
		t.Errorf("Unexpected best scores: %v", snap.BestScores)
	}
	if len(snap.Leaderboard) != 1 || snap.Leaderboard[0] != "Hard mode: 2 attempts" {
		t.Errorf("Unexpected leaderboard: %v", snap.Leaderboard)
	}
}

func TestStore_SaveLeavesOtherTiersUntouched(t *testing.T) {
	tests := []struct {
		name     string
		hard     string
		wantHard int
	}{
		{name: "unparseable sibling", hard: "garbage", wantHard: 0},
		{name: "trailing junk sibling", hard: "5abc", wantHard: 5},
		{name: "negative sibling", hard: "-2", wantHard: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			persistence, dir := newTestFilePersistence(t)
			hardPath := filepath.Join(dir, BestScoreFile(engine.Hard))
			if err := os.WriteFile(hardPath, []byte(tt.hard), 0644); err != nil {
				t.Fatalf("Failed to write hard score: %v", err)
			}

			store := NewStore(persistence, testLogger())
			ctx := context.Background()
			store.Save(ctx, engine.Easy, 4)

			data, err := os.ReadFile(hardPath)
			if err != nil {
				t.Fatalf("Failed to read hard score: %v", err)
			}
			if string(data) != tt.hard {
				t.Errorf("Expected hard file %q to be unchanged, got %q", tt.hard, data)
			}
			if _, err := os.Stat(filepath.Join(dir, BestScoreFile(engine.Medium))); !os.IsNotExist(err) {
				t.Errorf("Expected medium file not to be created, got err=%v", err)
			}
			if got := store.Load(ctx, engine.Easy); got != 4 {
				t.Errorf("Expected easy 4, got %d", got)
			}
			if got := store.Load(ctx, engine.Hard); got != tt.wantHard {
				t.Errorf("Expected hard %d, got %d", tt.wantHard, got)
			}
		})
	}
}

func TestStore_SnapshotWithUnreadableBestScore(t *testing.T) {
	persistence, dir := newTestFilePersistence(t)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(dir, BestScoreFile(engine.Hard)), []byte("garbage"), 0644); err != nil {
		t.Fatalf("Failed to write hard score: %v", err)
	}
	store := NewStore(persistence, testLogger())
	store.Save(ctx, engine.Easy, 6)
	store.AppendLeaderboard(ctx, LeaderboardEntry{Difficulty: engine.Easy, Attempts: 6})

	snap, err := store.Snapshot(ctx, 5)
	if err != nil {
		t.Fatalf("Expected snapshot despite an unreadable file, got %v", err)
	}
	if snap.BestScores[engine.Easy] != 6 {
		t.Errorf("Expected easy 6, got %d", snap.BestScores[engine.Easy])
	}
	if v, ok := snap.BestScores[engine.Hard]; !ok || v != 0 {
		t.Errorf("Expected hard reported as 0, got %d (present=%v)", v, ok)
	}
	if len(snap.Leaderboard) != 1 {
		t.Errorf("Expected 1 leaderboard line, got %v", snap.Leaderboard)
	}
}

func TestStore_NilPersistence(t *testing.T) {
	store := NewStore(nil, testLogger())
	ctx := context.Background()

	if store.Load(ctx, engine.Easy) != 0 {
		t.Error("Expected 0 without persistence")
	}
	store.Save(ctx, engine.Easy, 1)
	store.Reset(ctx)

	if _, err := store.Snapshot(ctx, 5); !errors.Is(err, ErrPersistenceUnset) {
		t.Errorf("Expected ErrPersistenceUnset, got %v", err)
	}
}
