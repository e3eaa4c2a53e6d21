package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wricardo/numguess/game/config"
	"github.com/wricardo/numguess/game/engine"
	"github.com/wricardo/numguess/game/scores"
	"github.com/wricardo/numguess/game/scores/sqlite"
)

func testSettings(t *testing.T) config.Settings {
	t.Helper()
	return config.Settings{
		DataDir:      t.TempDir(),
		Store:        config.StoreFile,
		HTTPAddr:     "127.0.0.1:0",
		PollInterval: time.Hour,
	}
}

func runCommand(t *testing.T, settings config.Settings, input string, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := newCommand(settings, strings.NewReader(input), stdout, stderr)
	err := cmd.Run(context.Background(), append([]string{AppName}, args...))
	return stdout.String(), stderr.String(), err
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "numguess" {
		t.Errorf("Expected app name numguess, got %s", AppName)
	}
}

func TestPlayIsDefaultCommand(t *testing.T) {
	settings := testSettings(t)

	for _, args := range [][]string{nil, {"play"}} {
		stdout, _, err := runCommand(t, settings, "5\n6\n", args...)
		if err != nil {
			t.Fatalf("Run %v failed: %v", args, err)
		}
		for _, want := range []string{
			"----- Main Menu -----",
			"No games played yet.",
			"Exiting the game. Goodbye!",
		} {
			if !strings.Contains(stdout, want) {
				t.Errorf("Run %v: expected %q in output", args, want)
			}
		}
	}
}

func TestPlayInputClosed(t *testing.T) {
	stdout, _, err := runCommand(t, testSettings(t), "")
	if err != nil {
		t.Fatalf("Expected clean exit on closed input, got %v", err)
	}
	if !strings.Contains(stdout, "Exiting the game. Goodbye!") {
		t.Error("Expected goodbye message")
	}
}

func TestPlayResetWritesScoreFiles(t *testing.T) {
	settings := testSettings(t)

	stdout, _, err := runCommand(t, settings, "4\n3\n6\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	assertOrder := []string{
		"Best scores and leaderboard have been reset!",
		"Leaderboard (Top 5 entries):",
		"No leaderboard data available.",
	}
	rest := stdout
	for _, part := range assertOrder {
		idx := strings.Index(rest, part)
		if idx < 0 {
			t.Fatalf("Expected %q in order, got:\n%s", part, stdout)
		}
		rest = rest[idx+len(part):]
	}

	for _, d := range engine.Difficulties() {
		data, err := os.ReadFile(filepath.Join(settings.DataDir, scores.BestScoreFile(d)))
		if err != nil {
			t.Fatalf("Expected %s best score file: %v", d, err)
		}
		if string(data) != "0" {
			t.Errorf("Expected 0 in %s file, got %q", d, data)
		}
	}
}

func TestPlayWithSQLiteStore(t *testing.T) {
	settings := testSettings(t)

	_, _, err := runCommand(t, settings, "4\n6\n", "--store", "SQLite")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(settings.DataDir, sqlite.DefaultFile)); err != nil {
		t.Errorf("Expected sqlite database to be created: %v", err)
	}
}

func TestInvalidStoreFlag(t *testing.T) {
	_, _, err := runCommand(t, testSettings(t), "6\n", "--store", "redis")
	if !errors.Is(err, config.ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings, got %v", err)
	}
}

func TestDataDirFlagOverridesSettings(t *testing.T) {
	settings := testSettings(t)
	other := t.TempDir()

	if _, _, err := runCommand(t, settings, "4\n6\n", "--data-dir", other); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(other, scores.LeaderboardFile)); err != nil {
		t.Errorf("Expected leaderboard in flag data dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(settings.DataDir, scores.LeaderboardFile)); err == nil {
		t.Error("Expected settings data dir to be unused")
	}
}

func TestOpenPersistenceFallsBackToMemory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	for _, store := range []string{config.StoreFile, config.StoreSQLite} {
		s := config.Settings{DataDir: blocker, Store: store}
		persistence, closeStore := openPersistence(s, zerolog.Nop())
		if _, ok := persistence.(*scores.MemoryPersistence); !ok {
			t.Errorf("%s: expected memory fallback, got %T", store, persistence)
		}
		if err := closeStore(); err != nil {
			t.Errorf("%s: close failed: %v", store, err)
		}
	}
}

func TestNewHTTPHandler(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := scores.NewStore(scores.NewMemoryPersistence(), zerolog.Nop())
	store.Save(ctx, engine.Hard, 2)

	server := httptest.NewServer(newHTTPHandler(ctx, store, time.Hour, zerolog.Nop()))
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/scores")
	if err != nil {
		t.Fatalf("GET /api/scores failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["best_scores"]["hard"] != 2 {
		t.Errorf("Expected hard best 2, got %v", body)
	}

	rpc := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
	mcpResp, err := http.Post(server.URL+"/mcp", "application/json", strings.NewReader(rpc))
	if err != nil {
		t.Fatalf("POST /mcp failed: %v", err)
	}
	defer mcpResp.Body.Close()
	if mcpResp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 from /mcp, got %d", mcpResp.StatusCode)
	}
}

func TestRunServerStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	store := scores.NewStore(scores.NewMemoryPersistence(), zerolog.Nop())
	handler := newHTTPHandler(ctx, store, time.Hour, zerolog.Nop())

	settings := testSettings(t)
	done := make(chan error, 1)
	go func() {
		done <- runServer(ctx, ln, handler, settings, zerolog.Nop())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}
