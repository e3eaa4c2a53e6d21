// Package mcp provides a Model Context Protocol server for the number-guessing game scoreboard.
//
// The mcp package implements:
//   - Read-only MCP tools over persisted scores
//   - A remote scoreboard client that proxies to the REST API
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
//   - best_scores: Best score per difficulty
//   - leaderboard: First entries of the leaderboard (optional limit)
//   - game_rules: Difficulty tiers, hints and scoring rules
//
// Transport Modes:
//
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: JSON-RPC endpoint mounted by the serve command at /mcp
//
// Usage:
//
//	// Local store
//	srv := mcp.NewServer(store)
//	srv.ServeStdio(ctx, os.Stdin, os.Stdout)
//
//	// Proxy to a running serve command
//	srv := mcp.NewServer(mcp.NewRemoteScoreboard("http://localhost:8080"))
package mcp
