// Package windowmanager is the per-process façade described in spec §4.5:
// it elects a leader among mutually unaware, crash-prone processes,
// constructs this process's Peasant, and brokers every cross-process
// call through whichever ILeader it currently holds. It is the one
// package that knows about internal/election and internal/ipc at once;
// everything else only knows remoting.ILeader/IFollower.
package windowmanager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/myT-x/wtcore/internal/classid"
	"github.com/myT-x/wtcore/internal/desktop"
	"github.com/myT-x/wtcore/internal/election"
	"github.com/myT-x/wtcore/internal/ipc"
	"github.com/myT-x/wtcore/internal/monarch"
	"github.com/myT-x/wtcore/internal/peasant"
	"github.com/myT-x/wtcore/internal/remoting"
	"github.com/myT-x/wtcore/internal/workerutil"
)

// maxProposeRetries is the consecutive-failure ceiling from spec §4.5
// before ProposeCommandline gives up discovering a leader and falls back
// to isolated mode.
const maxProposeRetries = 10

// ErrIsolated names the isolated-mode condition. No function in this
// package returns it: IsIsolated reports the state, and
// ProposeCommandline always degrades gracefully instead of failing the
// caller.
var ErrIsolated = errors.New("windowmanager: running in isolated mode")

// WindowManager owns election, this process's Peasant, and the current
// ILeader handle (local or remote).
type WindowManager struct {
	variant       classid.Variant
	pipePrefixOvr string
	pid           uint64
	oracle        desktop.Oracle
	peer          *peasant.Peasant

	followerListener *ipc.PipeServer
	followerPipeName string

	// reelect is called whenever ProposeCommandline or the succession
	// watcher observes a dead leader. Defaults to wm.elect; tests override
	// it to avoid exercising real OS election/pipe primitives.
	reelect func()

	resolverMu sync.RWMutex
	resolver   remoting.ResolverFunc

	mu         sync.RWMutex
	classLock  *election.ClassLock
	leaderSrv  *ipc.PipeServer
	localLead  *monarch.Monarch // non-nil iff this process currently hosts a leader
	leader     remoting.ILeader
	isLeader   bool
	isolated   bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New constructs a WindowManager for this process: it elects a leader
// (or degrades to isolated mode), registers this process's Peasant, and
// starts the succession watcher. pipeNamePrefixOverride, when non-empty,
// replaces the class-id-derived pipe name prefix (config's
// pipe_name_prefix_override).
func New(pid uint64, variant classid.Variant, pipeNamePrefixOverride string, oracle desktop.Oracle) (*WindowManager, error) {
	if oracle == nil {
		oracle = desktop.AlwaysCurrent{}
	}

	wm := &WindowManager{
		variant:       variant,
		pipePrefixOvr: pipeNamePrefixOverride,
		pid:           pid,
		oracle:        oracle,
		peer:          peasant.New(pid),
	}
	wm.reelect = wm.elect

	if err := wm.startFollowerListener(); err != nil {
		return nil, fmt.Errorf("windowmanager: start follower listener: %w", err)
	}

	wm.elect()
	wm.registerSelf()

	ctx, cancel := context.WithCancel(context.Background())
	wm.cancel = cancel
	workerutil.RunWithPanicRecovery(ctx, "windowmanager-succession", &wm.wg, wm.watchSuccession, workerutil.RecoveryOptions{})

	return wm, nil
}

// Peasant returns this process's local Peasant, the object the host
// drives for window-local operations (activation, summon, rename).
func (wm *WindowManager) Peasant() *peasant.Peasant {
	return wm.peer
}

// Pid returns this process's id.
func (wm *WindowManager) Pid() uint64 { return wm.pid }

// IsLeader reports whether this process currently hosts the federation's
// leader (including isolated mode, which is a leader only this process
// can see).
func (wm *WindowManager) IsLeader() bool {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.isLeader
}

// IsIsolated reports whether this process degraded to isolated mode.
func (wm *WindowManager) IsIsolated() bool {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.isolated
}

// SetResolver installs the host's findTargetWindowRequested subscriber.
// It is remembered and reapplied to every Monarch this process ever
// hosts, including ones created by a later re-election.
func (wm *WindowManager) SetResolver(resolver remoting.ResolverFunc) {
	wm.resolverMu.Lock()
	wm.resolver = resolver
	wm.resolverMu.Unlock()

	wm.mu.RLock()
	local := wm.localLead
	wm.mu.RUnlock()
	if local != nil {
		local.SetResolver(resolver)
	}
}

func (wm *WindowManager) getResolver() remoting.ResolverFunc {
	wm.resolverMu.RLock()
	defer wm.resolverMu.RUnlock()
	return wm.resolver
}

// ProposeCommandline implements spec §4.5's dispatch algorithm: a leader
// process calls in-process and never retries; a follower calls
// cross-process and, on repeated peer-unavailable failures, re-elects
// (possibly becoming leader itself) before giving up to isolated mode
// after maxProposeRetries consecutive failures. Whatever the outcome,
// if the result says this process should own the window, the local
// peasant adopts the assigned id/name and executes the command line.
func (wm *WindowManager) ProposeCommandline(args remoting.CommandlineArgs) (remoting.ProposeCommandlineResult, error) {
	var result remoting.ProposeCommandlineResult
	var err error

	for attempt := 0; attempt < maxProposeRetries; attempt++ {
		leader := wm.currentLeader()
		result, err = leader.ProposeCommandline(args)
		if err == nil {
			break
		}
		if !errors.Is(err, remoting.ErrPeerUnavailable) {
			break
		}
		slog.Debug("[windowmanager] proposeCommandline: leader unavailable, re-electing", "attempt", attempt+1)
		wm.reelect()
	}

	if err != nil {
		slog.Warn("[windowmanager] proposeCommandline: exhausted retries, falling back to isolated mode")
		wm.becomeIsolated()
		result = remoting.ProposeCommandlineResult{ShouldCreateNewWindow: true}
	}

	if result.ShouldCreateNewWindow {
		if result.RequestedId != remoting.NoPeasantId {
			_ = wm.peer.AssignId(result.RequestedId)
		}
		if result.RequestedName != "" {
			wm.peer.AdoptName(result.RequestedName)
		}
		if _, execErr := wm.peer.ExecuteCommandline(args); execErr != nil {
			slog.Warn("[windowmanager] local executeCommandline failed", "error", execErr)
		}
	}

	return result, nil
}

func (wm *WindowManager) currentLeader() remoting.ILeader {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.leader
}

// Shutdown revokes any class registration this process holds, stops the
// succession watcher and listeners, so a dying process doesn't look like
// a reachable leader or peasant a moment longer than it has to.
func (wm *WindowManager) Shutdown() {
	if wm.cancel != nil {
		wm.cancel()
	}
	wm.wg.Wait()

	wm.mu.Lock()
	if wm.classLock != nil {
		_ = wm.classLock.Revoke()
		wm.classLock = nil
	}
	if wm.leaderSrv != nil {
		_ = wm.leaderSrv.Stop()
		wm.leaderSrv = nil
	}
	wm.mu.Unlock()

	if wm.followerListener != nil {
		_ = wm.followerListener.Stop()
	}
}

func (wm *WindowManager) startFollowerListener() error {
	pipeName, err := ipc.FollowerPipeName(wm.variant, wm.pid, wm.pipePrefixOvr)
	if err != nil {
		return err
	}
	listener := ipc.NewPipeServer(pipeName, ipc.NewFollowerServer(wm.peer))
	if err := listener.Start(); err != nil {
		return err
	}
	wm.followerListener = listener
	wm.followerPipeName = pipeName
	return nil
}
