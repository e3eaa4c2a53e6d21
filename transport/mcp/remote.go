package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wricardo/numguess/game/scores"
)

// RemoteScoreboard reads scores from the REST API of a running serve command
type RemoteScoreboard struct {
	baseURL    string
	httpClient *http.Client
}

// NewRemoteScoreboard creates a scoreboard that calls the REST API at baseURL
func NewRemoteScoreboard(baseURL string) *RemoteScoreboard {
	return &RemoteScoreboard{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Snapshot fetches best scores and up to limit leaderboard lines
func (c *RemoteScoreboard) Snapshot(ctx context.Context, limit int) (*scores.Snapshot, error) {
	var best struct {
		BestScores scores.BestScores `json:"best_scores"`
	}
	if err := c.apiCall(ctx, "/api/scores", nil, &best); err != nil {
		return nil, fmt.Errorf("fetch best scores: %w", err)
	}

	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var board struct {
		Entries []struct {
			Line string `json:"line"`
		} `json:"entries"`
	}
	if err := c.apiCall(ctx, "/api/leaderboard", query, &board); err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}

	lines := make([]string, 0, len(board.Entries))
	for _, e := range board.Entries {
		lines = append(lines, e.Line)
	}

	return &scores.Snapshot{BestScores: best.BestScores.Clone(), Leaderboard: lines}, nil
}

func (c *RemoteScoreboard) apiCall(ctx context.Context, path string, query url.Values, result interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
