package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/wricardo/numguess/game/scores"
)

// SnapshotSource provides scoreboard snapshots
type SnapshotSource interface {
	Snapshot(ctx context.Context, limit int) (*scores.Snapshot, error)
}

// Watch polls source every interval and broadcasts the snapshot whenever it
// changes. It polls once immediately and returns when ctx is done.
func (h *Hub) Watch(ctx context.Context, source SnapshotSource, limit int, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last []byte
	poll := func() {
		snapshot, err := source.Snapshot(ctx, limit)
		if err != nil {
			h.log.Debug().Err(err).Msg("scoreboard poll failed")
			return
		}

		data, err := json.Marshal(snapshot)
		if err != nil {
			h.log.Warn().Err(err).Msg("failed to encode scoreboard")
			return
		}
		if last != nil && bytes.Equal(data, last) {
			return
		}

		if err := h.BroadcastScoreboard(ctx, snapshot); err != nil {
			h.log.Debug().Err(err).Msg("scoreboard broadcast skipped")
			return
		}
		last = data
		h.log.Debug().Int("leaderboard", len(snapshot.Leaderboard)).Msg("scoreboard changed")
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll()
		}
	}
}
