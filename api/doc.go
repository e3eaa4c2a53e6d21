// Package api provides the read-only HTTP scoreboard of the number-guessing game.
//
// The api package implements:
//   - JSON endpoints for best scores and the leaderboard
//   - Difficulty tier listing
//   - WebSocket upgrade for the live scoreboard feed
//   - Mounting of the MCP JSON-RPC endpoint
//
// Endpoints:
//
//   - GET /api/scores - Best score per difficulty
//   - GET /api/leaderboard?limit=N - First N leaderboard entries in insertion order
//   - GET /api/difficulties - Difficulty tiers and their attempt budgets
//   - GET /health - Liveness check
//   - GET /ws - WebSocket scoreboard feed
//   - POST /mcp - MCP JSON-RPC (when configured)
//
// The server never writes scores. Games are played in the terminal and the
// server reports whatever the configured store holds.
//
// Usage:
//
//	store := scores.NewStore(persistence, logger)
//	hub := websocket.NewHub(logger)
//	server := api.NewServer(store, hub, mcpHandler)
//	http.ListenAndServe(":8080", server)
package api
