// Command validate checks the score files in a data directory
// (default: the current directory). It checks:
//   - Each best_score_<difficulty>.txt holds a single non-negative integer
//   - Every leaderboard.txt line reads "<Easy|Medium|Hard> mode: <N> attempts" with N >= 1
//   - The latest leaderboard entry of each difficulty matches its best score
//
// Missing files are reported but are not errors: the game treats them as
// unset. It exits with non-zero status if any file is invalid.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wricardo/numguess/game/engine"
	"github.com/wricardo/numguess/game/scores"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...interface{}) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// validateBestScore checks one best-score file and returns its value (0 when absent).
func validateBestScore(filePath string) (ValidationResult, int) {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		result.info("Not present (no best score yet)")
		return result, 0
	}
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result, 0
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		result.fail("File is empty")
		return result, 0
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		result.fail("Not an integer: %q", text)
		return result, 0
	}
	if value < 0 {
		result.fail("Negative best score: %d", value)
		return result, 0
	}

	if value == 0 {
		result.info("Best score unset (0)")
	} else {
		result.info("Best score: %d attempts", value)
	}
	return result, value
}

// validateLeaderboard checks every line of the leaderboard file and returns
// the last entry recorded for each difficulty.
func validateLeaderboard(filePath string) (ValidationResult, map[engine.Difficulty]int) {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}
	latest := map[engine.Difficulty]int{}

	f, err := os.Open(filePath)
	if os.IsNotExist(err) {
		result.info("Not present (no leaderboard data)")
		return result, latest
	}
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result, latest
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++
		entry, err := scores.ParseLeaderboardLine(scanner.Text())
		if err != nil {
			result.fail("Line %d: %v", lines, err)
			continue
		}
		if entry.Attempts < 1 {
			result.fail("Line %d: attempts must be at least 1, got %d", lines, entry.Attempts)
			continue
		}
		latest[entry.Difficulty] = entry.Attempts
	}
	if err := scanner.Err(); err != nil {
		result.fail("Failed to scan file: %v", err)
	}

	if result.Valid {
		result.info("%d leaderboard entries", lines)
	}
	return result, latest
}

// checkConsistency compares the latest leaderboard entry of each difficulty
// with its best score. Mismatches are informational: a reset clears both, but
// a hand-edited file may not.
func checkConsistency(best map[engine.Difficulty]int, latest map[engine.Difficulty]int) []string {
	var notes []string
	for _, d := range engine.Difficulties() {
		last, ok := latest[d]
		if !ok {
			continue
		}
		if best[d] != last {
			notes = append(notes, fmt.Sprintf("%s: best score %d but latest leaderboard entry is %d", d.Label(), best[d], last))
		}
	}
	return notes
}

// run validates the data directory, writes a report to w and reports whether
// everything is valid.
func run(dataDir string, w io.Writer) bool {
	var results []ValidationResult
	best := map[engine.Difficulty]int{}

	for _, d := range engine.Difficulties() {
		result, value := validateBestScore(filepath.Join(dataDir, scores.BestScoreFile(d)))
		results = append(results, result)
		best[d] = value
	}

	boardResult, latest := validateLeaderboard(filepath.Join(dataDir, scores.LeaderboardFile))
	results = append(results, boardResult)

	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Errors {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Fprintln(w, "  ❌ "+err)
				}
			}
		}
	}

	if notes := checkConsistency(best, latest); len(notes) > 0 {
		fmt.Fprintf(w, "\n%s consistency\n", strings.Repeat("=", 20))
		for _, note := range notes {
			fmt.Fprintln(w, "  ⚠️  "+note)
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All score files are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some score files have errors")
	}
	return allValid
}

// main validates the directory given as the first argument, or ".".
func main() {
	dataDir := "."
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if !run(dataDir, os.Stdout) {
		os.Exit(1)
	}
}
