// Package stats aggregates per-process game statistics.
package stats

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Running holds the totals accumulated since the process started.
// It is a value type: operations return an updated copy.
type Running struct {
	GamesPlayed  int `json:"games_played"`
	AttemptsMade int `json:"attempts_made"`
}

// Record returns s with one more game of the given attempts.
func (s Running) Record(attempts int) Running {
	s.GamesPlayed++
	s.AttemptsMade += attempts
	return s
}

// Average returns the mean attempts per game, false when no games were played.
func (s Running) Average() (float64, bool) {
	if s.GamesPlayed == 0 {
		return 0, false
	}
	return float64(s.AttemptsMade) / float64(s.GamesPlayed), true
}

// Display writes the statistics screen to w.
func (s Running) Display(w io.Writer) {
	p := message.NewPrinter(language.English)

	avg, ok := s.Average()
	if !ok {
		p.Fprintf(w, "\nNo games played yet.\n")
		return
	}

	// Counts print without grouping separators.
	fmt.Fprintf(w, "\n--- Game Statistics ---\n")
	fmt.Fprintf(w, "Total games played: %d\n", s.GamesPlayed)
	fmt.Fprintf(w, "Total attempts made: %d\n", s.AttemptsMade)
	p.Fprintf(w, "Average attempts per game: %.1f\n", avg)
}
