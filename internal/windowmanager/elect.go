package windowmanager

import (
	"errors"
	"log/slog"

	"github.com/myT-x/wtcore/internal/classid"
	"github.com/myT-x/wtcore/internal/election"
	"github.com/myT-x/wtcore/internal/ipc"
	"github.com/myT-x/wtcore/internal/monarch"
	"github.com/myT-x/wtcore/internal/remoting"
)

// elect implements spec §4.5's construction steps 1-3: register as a
// leader candidate with the OS class registry; if that's won, this
// process becomes leader; if lost, attach to whatever is listening on
// the well-known leader pipe; if registration itself fails, or the
// winning leader can't be reached after one retry, degrade to isolated
// mode. It tears down any previous leader-hosting state this process
// held before deciding the new one (e.g. during re-election after the
// old leader died).
func (wm *WindowManager) elect() {
	wm.releaseLeaderHosting()

	className, err := classid.ClassName(wm.variant)
	if err != nil {
		slog.Warn("[windowmanager] elect: cannot derive class name, degrading to isolated mode", "error", err)
		wm.becomeIsolated()
		return
	}

	lock, err := election.TryBecomeLeader(className)
	if err == nil {
		wm.becomeLeader(lock)
		return
	}
	if !errors.Is(err, election.ErrNotLeader) {
		slog.Warn("[windowmanager] elect: class registration failed, degrading to isolated mode", "error", err)
		wm.becomeIsolated()
		return
	}

	if wm.becomeFollower() {
		return
	}
	// One retry, per spec §4.5 step 3, then isolated mode.
	if wm.becomeFollower() {
		return
	}
	slog.Warn("[windowmanager] elect: leader discovery exhausted, degrading to isolated mode")
	wm.becomeIsolated()
}

func (wm *WindowManager) releaseLeaderHosting() {
	wm.mu.Lock()
	if wm.classLock != nil {
		_ = wm.classLock.Revoke()
		wm.classLock = nil
	}
	if wm.leaderSrv != nil {
		_ = wm.leaderSrv.Stop()
		wm.leaderSrv = nil
	}
	wm.localLead = nil
	wm.mu.Unlock()
}

func (wm *WindowManager) becomeLeader(lock *election.ClassLock) {
	m := monarch.New(wm.pid, wm.oracle)
	if resolver := wm.getResolver(); resolver != nil {
		m.SetResolver(resolver)
	}

	pipeName, err := ipc.LeaderPipeName(wm.variant, wm.pipePrefixOvr)
	if err != nil {
		slog.Warn("[windowmanager] becomeLeader: cannot derive leader pipe name, degrading to isolated mode", "error", err)
		_ = lock.Revoke()
		wm.becomeIsolatedWithMonarch(m)
		return
	}

	srv := ipc.NewPipeServer(pipeName, ipc.NewLeaderServer(m))
	if err := srv.Start(); err != nil {
		slog.Warn("[windowmanager] becomeLeader: failed to listen on leader pipe, degrading to isolated mode", "error", err)
		_ = lock.Revoke()
		wm.becomeIsolatedWithMonarch(m)
		return
	}

	wm.mu.Lock()
	wm.classLock = lock
	wm.leaderSrv = srv
	wm.localLead = m
	wm.leader = m
	wm.isLeader = true
	wm.isolated = false
	wm.mu.Unlock()
}

// becomeFollower attempts to attach to whatever currently listens on the
// well-known leader pipe. Returns false if unreachable, so the caller
// can retry or degrade.
func (wm *WindowManager) becomeFollower() bool {
	pipeName, err := ipc.LeaderPipeName(wm.variant, wm.pipePrefixOvr)
	if err != nil {
		return false
	}
	client := ipc.NewLeaderClient(pipeName, wm.followerPipeName)
	if pid := client.GetPid(); pid == 0 {
		return false
	}

	wm.mu.Lock()
	wm.leader = client
	wm.isLeader = false
	wm.isolated = false
	wm.mu.Unlock()
	return true
}

func (wm *WindowManager) becomeIsolated() {
	wm.becomeIsolatedWithMonarch(monarch.New(wm.pid, wm.oracle))
}

func (wm *WindowManager) becomeIsolatedWithMonarch(m *monarch.Monarch) {
	if resolver := wm.getResolver(); resolver != nil {
		m.SetResolver(resolver)
	}
	wm.mu.Lock()
	wm.leader = m
	wm.localLead = m
	wm.isLeader = true
	wm.isolated = true
	wm.mu.Unlock()
}

// registerSelf calls AddPeasant on whichever leader election just
// produced, per spec §4.5 step 4. A peer-unavailable failure means the
// leader died between election and registration; loop back to election
// once more before giving up to isolated mode.
func (wm *WindowManager) registerSelf() {
	for attempt := 0; attempt < 2; attempt++ {
		leader := wm.currentLeader()
		id, err := leader.AddPeasant(wm.peer)
		if err == nil {
			if id != remoting.NoPeasantId {
				_ = wm.peer.AssignId(id)
			}
			wm.peer.SetLeader(leader)
			return
		}
		if !errors.Is(err, remoting.ErrPeerUnavailable) {
			wm.peer.SetLeader(leader)
			return
		}
		wm.reelect()
	}
	wm.becomeIsolated()
	leader := wm.currentLeader()
	if id, err := leader.AddPeasant(wm.peer); err == nil && id != remoting.NoPeasantId {
		_ = wm.peer.AssignId(id)
	}
	wm.peer.SetLeader(leader)
}
