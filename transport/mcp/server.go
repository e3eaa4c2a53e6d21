package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/numguess/game/engine"
	"github.com/wricardo/numguess/game/scores"
)

// Version is reported to MCP clients
const Version = "1.0.0"

// MaxLeaderboardLimit caps the leaderboard tool's limit argument
const MaxLeaderboardLimit = 100

// Scoreboard provides read access to persisted scores
type Scoreboard interface {
	Snapshot(ctx context.Context, limit int) (*scores.Snapshot, error)
}

// Server exposes the scoreboard as MCP tools
type Server struct {
	scoreboard Scoreboard
	mcpServer  *server.MCPServer
}

// NewServer creates an MCP server over scoreboard
func NewServer(scoreboard Scoreboard) *Server {
	s := &Server{scoreboard: scoreboard}
	s.initMCPServer()
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"Number Guessing Game",
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Number Guessing Game - MCP Interface

Read-only access to the scores of a terminal number-guessing game.
Games are played in the terminal; these tools only report results.

AVAILABLE TOOLS:
- best_scores: Fewest attempts recorded per difficulty
- leaderboard: First leaderboard entries in the order they were recorded
- game_rules: How the game is played and scored`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "best_scores",
		Description: "Get the best score (fewest attempts) for each difficulty",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleBestScores)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "leaderboard",
		Description: "Get the first leaderboard entries in insertion order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": fmt.Sprintf("Number of entries to return (1-%d, default %d)", MaxLeaderboardLimit, scores.LeaderboardDisplayLimit),
				},
			},
		},
	}, s.handleLeaderboard)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Get the rules of the number-guessing game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameRules)
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves MCP over in and out until in closes or ctx is done
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcpServer).Listen(ctx, in, out)
}

// HTTPHandler returns a handler for JSON-RPC messages posted to /mcp
func (s *Server) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := s.mcpServer.HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})
}

// Tool handlers

func (s *Server) handleBestScores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snapshot, err := s.scoreboard.Snapshot(ctx, scores.LeaderboardDisplayLimit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBestScores(snapshot.BestScores)), nil
}

func (s *Server) handleLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := scores.LeaderboardDisplayLimit
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		if raw, ok := args["limit"].(float64); ok {
			limit = int(raw)
		}
	}
	if limit < 1 || limit > MaxLeaderboardLimit {
		return mcp.NewToolResultError(fmt.Sprintf("limit must be between 1 and %d", MaxLeaderboardLimit)), nil
	}

	snapshot, err := s.scoreboard.Snapshot(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatLeaderboard(limit, snapshot.Leaderboard)), nil
}

func (s *Server) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatRules()), nil
}

func formatBestScores(best scores.BestScores) string {
	var b strings.Builder
	b.WriteString("Best scores:\n")
	for _, d := range engine.Difficulties() {
		if best[d] == 0 {
			fmt.Fprintf(&b, "- %s: no best score yet\n", d.Label())
			continue
		}
		fmt.Fprintf(&b, "- %s: %d attempts\n", d.Label(), best[d])
	}
	return b.String()
}

func formatLeaderboard(limit int, lines []string) string {
	if len(lines) == 0 {
		return "No leaderboard data available.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Leaderboard (first %d entries):\n", limit)
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	return b.String()
}

func formatRules() string {
	var b strings.Builder
	b.WriteString("NUMBER GUESSING GAME RULES\n\n")
	fmt.Fprintf(&b, "A secret number is drawn between 1 and an upper bound (default %d).\n", engine.DefaultUpperBound)
	b.WriteString("Each guess is answered with \"Too high!\", \"Too low!\" or a win.\n\n")
	b.WriteString("DIFFICULTIES (single-player):\n")
	for _, d := range engine.Difficulties() {
		fmt.Fprintf(&b, "- %d. %s: %d attempts\n", int(d), d.Label(), d.MaxAttempts())
	}
	fmt.Fprintf(&b, "\nOn attempt %d a hint shows a window of about a tenth of the range around the number.\n", engine.HintAttempt)
	fmt.Fprintf(&b, "Winning in %d attempts or fewer unlocks the Master Guesser achievement.\n", engine.MasterGuesserAttempts)
	b.WriteString("A win with fewer attempts than the stored best becomes the new best score and is added to the leaderboard.\n\n")
	fmt.Fprintf(&b, "MULTIPLAYER: two players alternate guesses on 1..%d with a shared budget of %d attempts.\n", engine.DefaultUpperBound, engine.MultiplayerAttempts)
	return b.String()
}
