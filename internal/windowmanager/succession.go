package windowmanager

import (
	"context"
	"log/slog"

	"github.com/myT-x/wtcore/internal/election"
)

// watchSuccession implements spec §4.5's succession watcher: it waits on
// the current leader's exit handle, and on cancellation it returns. When
// the leader exits, it re-elects; if this process becomes the new
// leader, it rebuilds MRU state from whatever peasants have already
// re-registered. If the watcher can't even observe the current leader
// (it died between two calls), it loops retrying election until it
// attaches to a new leader or becomes the leader itself — guaranteed to
// terminate because the last peasant alive always elects itself.
func (wm *WindowManager) watchSuccession(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		pid := wm.currentLeader().GetPid()
		if pid == 0 {
			// Can't observe a leader pid right now (e.g. isolated mode, or
			// a follower whose leader connection just broke). Re-elect and
			// try again; this always converges because the last surviving
			// process elects itself.
			wm.reelect()
			wm.registerSelf()
			if ctx.Err() != nil {
				return
			}
			continue
		}

		done := make(chan struct{})
		go func() {
			election.WaitForProcessExit(pid)
			close(done)
		}()

		select {
		case <-ctx.Done():
			return
		case <-done:
		}
		if ctx.Err() != nil {
			return
		}

		slog.Info("[windowmanager] succession: leader process exited, re-electing", "leaderPid", pid)
		wm.reelect()
		wm.registerSelf()

		if wm.IsLeader() && !wm.IsIsolated() {
			wm.mu.RLock()
			local := wm.localLead
			wm.mu.RUnlock()
			if local != nil {
				local.RebuildMRUFromRegistry()
			}
		}
	}
}
