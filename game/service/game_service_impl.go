package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wricardo/numguess/game/console"
	"github.com/wricardo/numguess/game/engine"
	"github.com/wricardo/numguess/game/scores"
	"github.com/wricardo/numguess/game/stats"
)

var ErrNoPrompter = errors.New("prompter is not configured")

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	prompter *console.Prompter
	scores   *scores.Store
	rng      engine.Random
	now      Clock
	log      zerolog.Logger

	// last holds the result of the most recent session
	last *SessionResult
}

// NewGameService creates a new game service instance
func NewGameService(prompter *console.Prompter, store *scores.Store, rng engine.Random, now Clock, log zerolog.Logger) GameService {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = engine.NewRandom(engine.SeedFromClock(now()))
	}
	return &gameServiceImpl{
		prompter: prompter,
		scores:   store,
		rng:      rng,
		now:      now,
		log:      log.With().Str("component", "service").Logger(),
	}
}

// PlaySinglePlayer runs one single-player session and returns the updated stats
func (s *gameServiceImpl) PlaySinglePlayer(ctx context.Context, running stats.Running) (stats.Running, error) {
	if s.prompter == nil {
		return running, ErrNoPrompter
	}
	p := s.prompter

	p.Heading("--- Single-Player Mode ---")

	level, err := p.ReadInt("Select difficulty level (1 = Easy, 2 = Medium, 3 = Hard): ", int(engine.Easy), int(engine.Hard))
	if err != nil {
		return running, err
	}
	difficulty, err := engine.ParseDifficulty(level)
	if err != nil {
		return running, err
	}

	upperBound := engine.DefaultUpperBound
	custom, err := p.Confirm(fmt.Sprintf("Default upper bound is %d. Do you want to set a custom upper bound? (y/n): ", engine.DefaultUpperBound))
	if err != nil {
		return running, err
	}
	if custom {
		upperBound, err = p.ReadInt("Enter the new upper bound (greater than 1): ", engine.MinUpperBound, engine.MaxUpperBound)
		if err != nil {
			return running, err
		}
	}

	round, err := engine.NewRound(s.rng, upperBound, difficulty.MaxAttempts(), s.now())
	if err != nil {
		return running, fmt.Errorf("failed to start round: %w", err)
	}

	sessionID := uuid.New().String()
	log := s.log.With().Str("session_id", sessionID).Str("difficulty", difficulty.Key()).Logger()
	log.Debug().Int("upper_bound", upperBound).Int("max_attempts", round.MaxAttempts).Msg("single-player session started")

	best := s.scores.Load(ctx, difficulty)
	if best == 0 {
		p.Println("No best score yet. Try to beat the default score!")
	} else {
		p.Printf("Current best score for this difficulty: %d attempts.\n", best)
	}

	p.Printf("\nGame started! You have %d attempts.\n", round.MaxAttempts)

	for !round.Over() {
		guess, err := p.ReadInt("Enter your guess: ", console.MinInt, console.MaxInt)
		if err != nil {
			return running, err
		}

		outcome, err := round.Guess(guess)
		if err != nil {
			return running, err
		}

		if round.HintDue() {
			low, high := round.Hint()
			p.Hint("Hint: The number is between %d and %d.", low, high)
		}

		s.reportOutcome(outcome)
	}

	result := SessionResult{
		SessionID:  sessionID,
		Mode:       ModeSinglePlayer,
		Difficulty: difficulty,
		UpperBound: upperBound,
		Target:     round.Target,
		Attempts:   round.Attempts,
		Won:        round.Won,
		Elapsed:    round.Elapsed(s.now()),
	}

	if round.Won {
		p.Success("Congratulations! You guessed the correct number.")
		p.Printf("Attempts: %d\n", round.Attempts)
		p.Printf("Time taken: %d seconds.\n", round.ElapsedSeconds(s.now()))

		if round.MasterGuesser() {
			p.Achievement("Achievement unlocked: Master Guesser!")
		}

		if scores.IsImprovement(best, round.Attempts) {
			s.scores.Save(ctx, difficulty, round.Attempts)
			s.scores.AppendLeaderboard(ctx, scores.LeaderboardEntry{
				Difficulty: difficulty,
				Attempts:   round.Attempts,
				SessionID:  sessionID,
				RecordedAt: s.now(),
			})
			result.NewBest = true
			p.Success("New best score for this difficulty! (Saved)")
		} else {
			p.Printf("Your best score for this difficulty remains %d attempts.\n", best)
		}
	} else {
		p.Failure("Sorry, you've exceeded the maximum attempts. The number was %d.", round.Target)
	}

	s.last = &result
	log.Debug().Bool("won", result.Won).Int("attempts", result.Attempts).Bool("new_best", result.NewBest).Msg("single-player session finished")

	return running.Record(round.Attempts), nil
}

// PlayMultiplayer runs one two-player session and returns the updated stats
func (s *gameServiceImpl) PlayMultiplayer(ctx context.Context, running stats.Running) (stats.Running, error) {
	if s.prompter == nil {
		return running, ErrNoPrompter
	}
	p := s.prompter

	p.Heading("--- Multiplayer Mode ---")

	names := make([]string, MultiplayerPlayers)
	for i := range names {
		name, err := p.ReadLine(fmt.Sprintf("Enter name for Player %d: ", i+1))
		if err != nil {
			return running, err
		}
		names[i] = name
	}

	p.Printf("Playing with an upper bound of %d.\n", engine.DefaultUpperBound)

	round, err := engine.NewRound(s.rng, engine.DefaultUpperBound, engine.MultiplayerAttempts, s.now())
	if err != nil {
		return running, fmt.Errorf("failed to start round: %w", err)
	}

	sessionID := uuid.New().String()
	log := s.log.With().Str("session_id", sessionID).Logger()
	log.Debug().Strs("players", names).Msg("multiplayer session started")

	var winner string
	for !round.Over() {
		current := names[round.Attempts%MultiplayerPlayers]
		p.Printf("\n%s's turn.\n", current)

		guess, err := p.ReadInt("Enter your guess: ", console.MinInt, console.MaxInt)
		if err != nil {
			return running, err
		}

		outcome, err := round.Guess(guess)
		if err != nil {
			return running, err
		}

		if outcome == engine.Correct {
			winner = current
			p.Success("Congratulations, %s! You guessed the correct number.", current)
			p.Printf("Total attempts: %d\n", round.Attempts)
			p.Printf("Time taken: %d seconds.\n", round.ElapsedSeconds(s.now()))
			break
		}
		s.reportOutcome(outcome)
	}

	if round.Exhausted() {
		p.Println()
		p.Failure("Maximum attempts reached. The correct number was %d.", round.Target)
	}

	s.last = &SessionResult{
		SessionID:  sessionID,
		Mode:       ModeMultiplayer,
		UpperBound: round.UpperBound,
		Target:     round.Target,
		Attempts:   round.Attempts,
		Won:        round.Won,
		Winner:     winner,
		Elapsed:    round.Elapsed(s.now()),
	}
	log.Debug().Bool("won", round.Won).Str("winner", winner).Int("attempts", round.Attempts).Msg("multiplayer session finished")

	return running.Record(round.Attempts), nil
}

// ShowLeaderboard prints the first leaderboard entries
func (s *gameServiceImpl) ShowLeaderboard(ctx context.Context) {
	s.scores.DisplayLeaderboard(ctx, s.out())
}

// ResetScores clears every best score and the leaderboard
func (s *gameServiceImpl) ResetScores(ctx context.Context) {
	s.scores.Reset(ctx)
	fmt.Fprintln(s.out(), "Best scores and leaderboard have been reset!")
}

// ShowStats prints the running statistics
func (s *gameServiceImpl) ShowStats(running stats.Running) {
	running.Display(s.out())
}

// LastResult returns the most recent session result, or nil
func (s *gameServiceImpl) LastResult() *SessionResult {
	return s.last
}

func (s *gameServiceImpl) reportOutcome(outcome engine.Outcome) {
	switch outcome {
	case engine.TooHigh:
		s.prompter.Notice("Too high!")
	case engine.TooLow:
		s.prompter.Notice("Too low!")
	}
}

func (s *gameServiceImpl) out() io.Writer {
	if s.prompter == nil {
		return io.Discard
	}
	return s.prompter.Out()
}
