package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestRecord(t *testing.T) {
	var s Running

	next := s.Record(4)
	if s.GamesPlayed != 0 || s.AttemptsMade != 0 {
		t.Error("Record should not mutate the receiver")
	}
	if next.GamesPlayed != 1 || next.AttemptsMade != 4 {
		t.Errorf("Expected 1 game / 4 attempts, got %+v", next)
	}

	next = next.Record(15)
	if next.GamesPlayed != 2 || next.AttemptsMade != 19 {
		t.Errorf("Expected 2 games / 19 attempts, got %+v", next)
	}
}

func TestAverage(t *testing.T) {
	if _, ok := (Running{}).Average(); ok {
		t.Error("Expected no average before any game")
	}

	avg, ok := Running{GamesPlayed: 2, AttemptsMade: 7}.Average()
	if !ok || avg != 3.5 {
		t.Errorf("Expected 3.5, got %v (ok=%v)", avg, ok)
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name     string
		stats    Running
		contains []string
	}{
		{
			name:     "no games",
			stats:    Running{},
			contains: []string{"No games played yet."},
		},
		{
			name:  "one game",
			stats: Running{}.Record(4),
			contains: []string{
				"--- Game Statistics ---",
				"Total games played: 1",
				"Total attempts made: 4",
				"Average attempts per game: 4.0",
			},
		},
		{
			name:     "large counts print plain",
			stats:    Running{GamesPlayed: 1000, AttemptsMade: 12345},
			contains: []string{"Total games played: 1000\n", "Total attempts made: 12345\n", "Average attempts per game: 12.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.stats.Display(&buf)

			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("Expected output to contain %q, got:\n%s", want, buf.String())
				}
			}
		})
	}

	var buf bytes.Buffer
	Running{}.Display(&buf)
	if strings.Contains(buf.String(), "Average") {
		t.Error("No-games output should not show an average")
	}
}
