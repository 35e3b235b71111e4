// Package peasant implements the per-invocation local object described in
// spec §4.3: it holds this window's identity and state, exposes the
// operations a leader invokes on it, and forwards everything else to the
// host via plain callback fields (Go has no out-of-proc event marshalling,
// so a callback takes the place of the original's locally-subscribed
// event — see DESIGN.md).
package peasant

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/myT-x/wtcore/internal/remoting"
)

// Peasant is the local, per-window participant in a federation. The same
// type is used whether or not this process happens to be the leader.
type Peasant struct {
	ourPid uint64

	mu            sync.RWMutex
	id            remoting.PeasantId
	windowName    string
	initialArgs   *remoting.CommandlineArgs
	lastActivated remoting.WindowActivatedArgs
	leader        remoting.ILeader

	// OnExecuteCommandlineRequested is invoked locally every time the
	// leader dispatches a command line to this peasant, including the
	// very first one.
	OnExecuteCommandlineRequested func(remoting.CommandlineArgs)
	// OnSummonRequested is invoked locally when the leader (or this
	// process, if it is the leader) asks this window to come forward.
	OnSummonRequested func(remoting.SummonWindowBehavior)
	// OnDisplayWindowIdRequested is invoked locally to ask the host to
	// show this window's own id, e.g. as a toast.
	OnDisplayWindowIdRequested func()
	// OnQuitRequested is invoked locally when the leader asks this
	// specific window to close.
	OnQuitRequested func()
}

// New constructs a Peasant for the given owning process id. ourPid is
// used only as a liveness probe value reported to the leader.
func New(ourPid uint64) *Peasant {
	return &Peasant{ourPid: ourPid}
}

// SetLeader updates this peasant's handle to the current leader. The
// WindowManager calls this once at construction and again every time the
// succession watcher attaches to a newly elected leader.
func (p *Peasant) SetLeader(leader remoting.ILeader) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.leader = leader
}

// AssignId stores the id assigned by the current leader. Intended to be
// called at most once; a later call with a different id is logged but
// still honored, since a new leader re-adopting this peasant after a
// crash is expected to observe and keep the existing id unchanged (it
// would only ever call this with the same value).
func (p *Peasant) AssignId(id remoting.PeasantId) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.id != remoting.NoPeasantId && p.id != id {
		slog.Warn("[peasant] id reassignment requested", "oldId", p.id, "newId", id)
	}
	p.id = id
	return nil
}

// GetId returns the peasant's id, or NoPeasantId if unassigned.
func (p *Peasant) GetId() (remoting.PeasantId, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.id, nil
}

// GetPid returns the owning process id, used by the leader as a liveness probe.
func (p *Peasant) GetPid() (uint64, error) {
	return p.ourPid, nil
}

// GetWindowName returns the peasant's current name (may be empty/anonymous).
func (p *Peasant) GetWindowName() (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.windowName, nil
}

// AdoptName sets the peasant's name directly, without a rename-approval
// round trip. Used when the leader itself hands this peasant a name as
// part of creating it (e.g. ProposeCommandlineResult.RequestedName for a
// quake window), as opposed to a live rename proposal that must check
// name uniqueness.
func (p *Peasant) AdoptName(name string) {
	p.mu.Lock()
	p.windowName = name
	p.mu.Unlock()
}

// ExecuteCommandline stores args as the "initial" command line the first
// time it's called, then always notifies the host via
// OnExecuteCommandlineRequested.
func (p *Peasant) ExecuteCommandline(args remoting.CommandlineArgs) (bool, error) {
	p.mu.Lock()
	if p.initialArgs == nil {
		stored := args.Clone()
		p.initialArgs = &stored
	}
	cb := p.OnExecuteCommandlineRequested
	p.mu.Unlock()

	if cb != nil {
		cb(args)
	}
	return true, nil
}

// InitialArgs returns the first command line this peasant ever executed,
// if any.
func (p *Peasant) InitialArgs() (remoting.CommandlineArgs, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.initialArgs == nil {
		return remoting.CommandlineArgs{}, false
	}
	return p.initialArgs.Clone(), true
}

// ActivateWindow records the activation locally and notifies the current
// leader so it can update its MRU ordering. A peer-died error from the
// leader is swallowed: the succession watcher is responsible for
// re-electing, not this call site.
func (p *Peasant) ActivateWindow(args remoting.WindowActivatedArgs) {
	p.mu.Lock()
	args.PeasantId = p.id
	p.lastActivated = args
	leader := p.leader
	p.mu.Unlock()

	if leader == nil {
		return
	}
	if err := leader.HandleActivatePeasant(args); err != nil && !errors.Is(err, remoting.ErrPeerUnavailable) {
		slog.Warn("[peasant] unexpected error notifying leader of activation", "error", err)
	}
}

// GetLastActivatedArgs returns the most recent activation this peasant
// recorded, for adoption by a newly elected leader.
func (p *Peasant) GetLastActivatedArgs() (remoting.WindowActivatedArgs, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastActivated, nil
}

// Summon notifies the host locally that this window should come forward.
func (p *Peasant) Summon(behavior remoting.SummonWindowBehavior) error {
	p.mu.RLock()
	cb := p.OnSummonRequested
	p.mu.RUnlock()
	if cb != nil {
		cb(behavior)
	}
	return nil
}

// RequestIdentifyWindows asks the current leader to broadcast an
// identify request to every live peasant. Peer-died is swallowed.
func (p *Peasant) RequestIdentifyWindows() {
	p.mu.RLock()
	leader := p.leader
	p.mu.RUnlock()
	if leader == nil {
		return
	}
	if err := leader.RequestIdentifyWindows(); err != nil && !errors.Is(err, remoting.ErrPeerUnavailable) {
		slog.Warn("[peasant] unexpected error requesting identify-windows", "error", err)
	}
}

// DisplayWindowId asks the host locally to show this window's own id.
func (p *Peasant) DisplayWindowId() error {
	p.mu.RLock()
	cb := p.OnDisplayWindowIdRequested
	p.mu.RUnlock()
	if cb != nil {
		cb()
	}
	return nil
}

// RequestRename asks the current leader to approve a rename. On success
// the local name is updated; on failure (including a dead leader) the
// previous name is left in place and args.Succeeded is false.
func (p *Peasant) RequestRename(args *remoting.RenameRequestArgs) {
	p.mu.RLock()
	leader := p.leader
	selfId := p.id
	p.mu.RUnlock()

	args.Succeeded = false
	if leader == nil {
		return
	}
	if err := leader.RequestRename(selfId, args); err != nil {
		if !errors.Is(err, remoting.ErrPeerUnavailable) {
			slog.Warn("[peasant] unexpected error requesting rename", "error", err)
		}
		return
	}
	if args.Succeeded {
		p.mu.Lock()
		p.windowName = args.NewName
		p.mu.Unlock()
	}
}

// Quit notifies the host locally that this window should close.
func (p *Peasant) Quit() error {
	p.mu.RLock()
	cb := p.OnQuitRequested
	p.mu.RUnlock()
	if cb != nil {
		cb()
	}
	return nil
}
