// Command analyze prints quick, human-readable statistics about a leaderboard
// file. For each difficulty it summarizes how many records were set, the best
// and worst of them, their mean, and how many were master-guesser wins.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/wricardo/numguess/game/engine"
	"github.com/wricardo/numguess/game/scores"
)

// DifficultySummary aggregates the leaderboard entries of one difficulty.
type DifficultySummary struct {
	Difficulty engine.Difficulty
	Count      int
	Best       int
	Worst      int
	Total      int
	Masters    int
}

// Mean returns the average attempts, or 0 with no entries.
func (s DifficultySummary) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.Count)
}

func (s *DifficultySummary) add(attempts int) {
	if s.Count == 0 || attempts < s.Best {
		s.Best = attempts
	}
	if attempts > s.Worst {
		s.Worst = attempts
	}
	s.Count++
	s.Total += attempts
	if attempts <= engine.MasterGuesserAttempts {
		s.Masters++
	}
}

// Analysis is the result of reading one leaderboard.
type Analysis struct {
	Summaries map[engine.Difficulty]*DifficultySummary
	Lines     int
	Malformed []int
}

func main() {
	path := scores.LeaderboardFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fmt.Printf("\n=== Analyzing %s ===\n", path)
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	analysis, err := analyzeLeaderboard(f)
	if err != nil {
		fmt.Printf("Error scanning file: %v\n", err)
		os.Exit(1)
	}
	printAnalysis(os.Stdout, analysis)
}

func analyzeLeaderboard(r io.Reader) (*Analysis, error) {
	analysis := &Analysis{Summaries: map[engine.Difficulty]*DifficultySummary{}}
	for _, d := range engine.Difficulties() {
		analysis.Summaries[d] = &DifficultySummary{Difficulty: d}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		analysis.Lines++
		entry, err := scores.ParseLeaderboardLine(scanner.Text())
		if err != nil || entry.Attempts < 1 {
			analysis.Malformed = append(analysis.Malformed, analysis.Lines)
			continue
		}
		analysis.Summaries[entry.Difficulty].add(entry.Attempts)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return analysis, nil
}

func printAnalysis(w io.Writer, analysis *Analysis) {
	fmt.Fprintf(w, "Total Lines: %d\n", analysis.Lines)

	for _, d := range engine.Difficulties() {
		s := analysis.Summaries[d]
		fmt.Fprintf(w, "\n%s (max %d attempts)\n", d.Label(), d.MaxAttempts())
		if s.Count == 0 {
			fmt.Fprintln(w, "   No records yet")
			continue
		}
		fmt.Fprintf(w, "   Records: %d\n", s.Count)
		fmt.Fprintf(w, "   Best: %d attempts\n", s.Best)
		fmt.Fprintf(w, "   Worst: %d attempts\n", s.Worst)
		fmt.Fprintf(w, "   Mean: %.2f attempts\n", s.Mean())
		fmt.Fprintf(w, "   Master guesser wins: %d\n", s.Masters)
	}

	if len(analysis.Malformed) > 0 {
		fmt.Fprintf(w, "\n⚠️  WARNING: %d malformed lines\n", len(analysis.Malformed))
		for i, line := range analysis.Malformed {
			if i < 5 {
				fmt.Fprintf(w, "   Malformed: line %d\n", line)
			}
		}
		if len(analysis.Malformed) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(analysis.Malformed)-5)
		}
	} else {
		fmt.Fprintln(w, "\n✅ All leaderboard lines are well formed")
	}
}
