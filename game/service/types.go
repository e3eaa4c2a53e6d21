package service

import (
	"time"

	"github.com/wricardo/numguess/game/engine"
)

// Clock returns the current time
type Clock func() time.Time

// Mode identifies the kind of session
type Mode string

const (
	ModeSinglePlayer Mode = "single_player"
	ModeMultiplayer  Mode = "multiplayer"
)

// Player names used in two-player sessions
const MultiplayerPlayers = 2

// SessionResult summarizes a finished session
type SessionResult struct {
	SessionID  string            `json:"session_id"`
	Mode       Mode              `json:"mode"`
	Difficulty engine.Difficulty `json:"difficulty,omitempty"`
	UpperBound int               `json:"upper_bound"`
	Target     int               `json:"target"`
	Attempts   int               `json:"attempts"`
	Won        bool              `json:"won"`
	Winner     string            `json:"winner,omitempty"`
	NewBest    bool              `json:"new_best,omitempty"`
	Elapsed    time.Duration     `json:"elapsed"`
}
