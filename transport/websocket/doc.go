// Package websocket provides a live scoreboard feed over WebSocket.
//
// The websocket package implements:
//   - A hub that tracks connected scoreboard viewers
//   - Broadcasting of scoreboard snapshots to every viewer
//   - A watcher that polls the score store and broadcasts on change
//   - Connection lifecycle management with ping/pong keepalive
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a read and a
// write goroutine. The hub remembers the latest scoreboard message and sends
// it to every new client on connect.
//
// Message Protocol:
//
// The feed is read-only. Outgoing messages are JSON encoded:
//
//	{"event": "scoreboard", "data": {"best_scores": {...}, "leaderboard": [...]}}
//
// Incoming messages are read and discarded to keep the connection alive.
//
// Usage:
//
//	hub := websocket.NewHub(logger)
//	go hub.Run(ctx)
//	go hub.Watch(ctx, store, 5*time.Second)
//
//	router.HandleFunc("/ws", hub.ServeWS)
package websocket
