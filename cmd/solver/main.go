// Command solver plays the guessing game automatically with a chosen strategy
// and reports how often it wins within each difficulty's attempt budget.
//
// By default every target in [1, bound] is played once; --rounds samples
// random targets instead.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/numguess/game/engine"
)

func newCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "solver",
		Usage: "simulate guessing strategies against the game engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "strategy",
				Value: "bisect",
				Usage: fmt.Sprintf("guessing strategy %v", StrategyNames()),
			},
			&cli.IntFlag{
				Name:  "bound",
				Value: engine.DefaultUpperBound,
				Usage: "upper bound of the target range",
			},
			&cli.IntFlag{
				Name:  "rounds",
				Usage: "number of random rounds (0 plays every target once)",
			},
			&cli.BoolFlag{
				Name:  "hint",
				Usage: "narrow the search with the third-attempt hint",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "seed for random targets and the random strategy",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(stdout, cmd.String("strategy"), int(cmd.Int("bound")), int(cmd.Int("rounds")), cmd.Bool("hint"), cmd.Uint64("seed"))
		},
	}
}

func run(w io.Writer, strategyName string, bound, rounds int, useHint bool, seed uint64) error {
	rng := engine.NewRandom(seed)
	strategy, err := NewStrategy(strategyName, rng)
	if err != nil {
		return err
	}
	if rounds < 0 {
		return fmt.Errorf("rounds must not be negative, got %d", rounds)
	}

	sim := NewSimulator(strategy, useHint)
	fmt.Fprintf(w, "Strategy: %s (hint: %v), range 1-%d\n", strategy.Name(), useHint, bound)

	for _, d := range engine.Difficulties() {
		var report Report
		if rounds == 0 {
			report, err = sim.Exhaustive(d, bound)
		} else {
			report, err = sim.Sample(d, bound, rounds, rng)
		}
		if err != nil {
			return err
		}
		printReport(w, report)
	}
	return nil
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "\n%s (max %d attempts)\n", r.Difficulty.Label(), r.Difficulty.MaxAttempts())
	fmt.Fprintf(w, "   Rounds: %d\n", r.Rounds)
	fmt.Fprintf(w, "   Wins: %d (%.1f%%)\n", r.Wins, r.WinRate()*100)
	fmt.Fprintf(w, "   Mean attempts on wins: %.2f\n", r.MeanAttempts())
	fmt.Fprintf(w, "   Master guesser wins: %d\n", r.Masters)
}

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
