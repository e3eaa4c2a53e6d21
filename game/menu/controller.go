// Package menu runs the main menu loop of the game.
package menu

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wricardo/numguess/game/console"
	"github.com/wricardo/numguess/game/service"
	"github.com/wricardo/numguess/game/stats"
)

// Choice is a main menu option
type Choice int

const (
	SinglePlayer Choice = iota + 1
	Multiplayer
	ViewLeaderboard
	ResetScores
	ViewStats
	Exit
)

var options = []struct {
	choice Choice
	label  string
}{
	{SinglePlayer, "Single-Player Mode"},
	{Multiplayer, "Multiplayer Mode"},
	{ViewLeaderboard, "View Leaderboard"},
	{ResetScores, "Reset Best Scores & Leaderboard"},
	{ViewStats, "View Game Statistics (Single-Player)"},
	{Exit, "Exit"},
}

// Controller owns the running statistics and dispatches menu choices
type Controller struct {
	prompter *console.Prompter
	svc      service.GameService
	log      zerolog.Logger
	running  stats.Running
}

// NewController creates a menu controller
func NewController(prompter *console.Prompter, svc service.GameService, log zerolog.Logger) *Controller {
	return &Controller{
		prompter: prompter,
		svc:      svc,
		log:      log.With().Str("component", "menu").Logger(),
	}
}

// Stats returns the statistics accumulated so far
func (c *Controller) Stats() stats.Running {
	return c.running
}

// Run shows the menu until the player exits or input closes.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()

		value, err := c.prompter.ReadInt("Enter your choice (1-6): ", int(SinglePlayer), int(Exit))
		if err != nil {
			return c.finish(err)
		}

		choice := Choice(value)
		c.log.Debug().Int("choice", value).Msg("menu choice")

		if choice == Exit {
			c.prompter.Println("Exiting the game. Goodbye!")
			return nil
		}

		if err := c.dispatch(ctx, choice); err != nil {
			return c.finish(err)
		}
	}
}

func (c *Controller) dispatch(ctx context.Context, choice Choice) error {
	var err error
	switch choice {
	case SinglePlayer:
		c.running, err = c.svc.PlaySinglePlayer(ctx, c.running)
	case Multiplayer:
		c.running, err = c.svc.PlayMultiplayer(ctx, c.running)
	case ViewLeaderboard:
		c.svc.ShowLeaderboard(ctx)
	case ResetScores:
		c.svc.ResetScores(ctx)
	case ViewStats:
		c.svc.ShowStats(c.running)
	}
	return err
}

// finish treats closed input as an exit request.
func (c *Controller) finish(err error) error {
	if errors.Is(err, console.ErrInputClosed) {
		c.log.Debug().Msg("input closed, exiting")
		c.prompter.Println()
		c.prompter.Println("Exiting the game. Goodbye!")
		return nil
	}
	return err
}

func (c *Controller) printMenu() {
	c.prompter.Heading("----- Main Menu -----")
	for _, opt := range options {
		c.prompter.Printf("%d. %s\n", opt.choice, opt.label)
	}
}
