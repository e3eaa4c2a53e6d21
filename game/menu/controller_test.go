package menu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wricardo/numguess/game/console"
	"github.com/wricardo/numguess/game/engine"
	"github.com/wricardo/numguess/game/scores"
	"github.com/wricardo/numguess/game/service"
	"github.com/wricardo/numguess/game/stats"
)

// MockGameService implements service.GameService for testing
type MockGameService struct {
	PlaySinglePlayerFunc func(ctx context.Context, running stats.Running) (stats.Running, error)
	PlayMultiplayerFunc  func(ctx context.Context, running stats.Running) (stats.Running, error)

	calls []string
}

func (m *MockGameService) PlaySinglePlayer(ctx context.Context, running stats.Running) (stats.Running, error) {
	m.calls = append(m.calls, "single")
	if m.PlaySinglePlayerFunc != nil {
		return m.PlaySinglePlayerFunc(ctx, running)
	}
	return running.Record(4), nil
}

func (m *MockGameService) PlayMultiplayer(ctx context.Context, running stats.Running) (stats.Running, error) {
	m.calls = append(m.calls, "multi")
	if m.PlayMultiplayerFunc != nil {
		return m.PlayMultiplayerFunc(ctx, running)
	}
	return running.Record(6), nil
}

func (m *MockGameService) ShowLeaderboard(ctx context.Context) {
	m.calls = append(m.calls, "leaderboard")
}

func (m *MockGameService) ResetScores(ctx context.Context) {
	m.calls = append(m.calls, "reset")
}

func (m *MockGameService) ShowStats(running stats.Running) {
	m.calls = append(m.calls, "stats")
}

func (m *MockGameService) LastResult() *service.SessionResult {
	return nil
}

func newTestController(input string) (*Controller, *MockGameService, *bytes.Buffer) {
	out := &bytes.Buffer{}
	prompter := console.NewPrompter(strings.NewReader(input), out)
	mock := &MockGameService{}
	return NewController(prompter, mock, zerolog.Nop()), mock, out
}

func TestRun_ExitPrintsGoodbye(t *testing.T) {
	c, mock, out := newTestController("6\n")

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"----- Main Menu -----",
		"1. Single-Player Mode",
		"2. Multiplayer Mode",
		"3. View Leaderboard",
		"4. Reset Best Scores & Leaderboard",
		"5. View Game Statistics (Single-Player)",
		"6. Exit",
		"Enter your choice (1-6): ",
		"Exiting the game. Goodbye!",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
	if len(mock.calls) != 0 {
		t.Errorf("Expected no service calls, got %v", mock.calls)
	}
}

func TestRun_DispatchesEveryChoice(t *testing.T) {
	c, mock, _ := newTestController("1\n2\n3\n4\n5\n6\n")

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"single", "multi", "leaderboard", "reset", "stats"}
	if strings.Join(mock.calls, ",") != strings.Join(want, ",") {
		t.Errorf("Expected calls %v, got %v", want, mock.calls)
	}

	got := c.Stats()
	if got.GamesPlayed != 2 || got.AttemptsMade != 10 {
		t.Errorf("Expected stats 2/10, got %d/%d", got.GamesPlayed, got.AttemptsMade)
	}
}

func TestRun_InvalidChoiceReprompts(t *testing.T) {
	c, mock, out := newTestController("0\n7\nmenu\n6\n")

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.Count(out.String(), "Please enter a number between 1 and 6.") != 2 {
		t.Errorf("Expected two range errors, got:\n%s", out.String())
	}
	if strings.Count(out.String(), "Invalid input. Please enter a valid number.") != 1 {
		t.Errorf("Expected one parse error, got:\n%s", out.String())
	}
	if len(mock.calls) != 0 {
		t.Errorf("Expected no service calls, got %v", mock.calls)
	}
}

func TestRun_ResetKeepsStats(t *testing.T) {
	c, _, _ := newTestController("1\n4\n6\n")

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if c.Stats().GamesPlayed != 1 {
		t.Errorf("Expected reset to keep stats, got %d games", c.Stats().GamesPlayed)
	}
}

func TestRun_InputClosedExitsCleanly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		setup func(*MockGameService)
	}{
		{name: "at menu", input: ""},
		{
			name:  "during a session",
			input: "1\n",
			setup: func(m *MockGameService) {
				m.PlaySinglePlayerFunc = func(ctx context.Context, running stats.Running) (stats.Running, error) {
					return running, console.ErrInputClosed
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock, out := newTestController(tt.input)
			if tt.setup != nil {
				tt.setup(mock)
			}

			if err := c.Run(context.Background()); err != nil {
				t.Errorf("Expected nil error, got %v", err)
			}
			if !strings.Contains(out.String(), "Exiting the game. Goodbye!") {
				t.Error("Expected goodbye message")
			}
		})
	}
}

func TestRun_PropagatesOtherErrors(t *testing.T) {
	c, mock, _ := newTestController("2\n")
	boom := errors.New("boom")
	mock.PlayMultiplayerFunc = func(ctx context.Context, running stats.Running) (stats.Running, error) {
		return running, boom
	}

	if err := c.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	c, _, _ := newTestController("6\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

// fixedRandom always draws the same target
type fixedRandom int

func (f fixedRandom) IntN(n int) int { return int(f) - 1 }

func TestRun_FullGame(t *testing.T) {
	out := &bytes.Buffer{}
	prompter := console.NewPrompter(strings.NewReader("5\n1\n1\nn\n50\n30\n40\n42\n3\n5\n6\n"), out)
	store := scores.NewStore(scores.NewMemoryPersistence(), zerolog.Nop())
	clock := func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	svc := service.NewGameService(prompter, store, fixedRandom(42), clock, zerolog.Nop())
	c := NewController(prompter, svc, zerolog.Nop())

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	output := out.String()
	order := []string{
		"No games played yet.",
		"Congratulations! You guessed the correct number.",
		"New best score for this difficulty! (Saved)",
		"Leaderboard (Top 5 entries):",
		"Easy mode: 4 attempts",
		"Average attempts per game: 4.0",
		"Exiting the game. Goodbye!",
	}
	rest := output
	for _, part := range order {
		idx := strings.Index(rest, part)
		if idx < 0 {
			t.Fatalf("Expected %q in order, got:\n%s", part, output)
		}
		rest = rest[idx+len(part):]
	}

	if store.Load(context.Background(), engine.Easy) != 4 {
		t.Error("Expected best score 4")
	}
}
