// Package monarch implements the singleton leader described in spec §4.4:
// the registry of live peasants, the per-desktop MRU ordering, the name
// index, command-line dispatch, and summon selection. Exactly one
// process in a federation runs a Monarch at a time (see
// internal/windowmanager for election).
package monarch

import (
	"sync"

	"github.com/myT-x/wtcore/internal/desktop"
	"github.com/myT-x/wtcore/internal/remoting"
)

type registryEntry struct {
	id       remoting.PeasantId
	follower remoting.IFollower
}

// Monarch is the leader's registry, MRU tracker, and dispatch logic. The
// zero value is not usable; construct with New.
type Monarch struct {
	ourPid uint64
	oracle desktop.Oracle

	mu       sync.RWMutex
	nextId   remoting.PeasantId
	peasants map[remoting.PeasantId]*registryEntry
	mru      map[remoting.DesktopId]*desktopHeap

	resolverMu sync.RWMutex
	resolver   remoting.ResolverFunc
}

// New constructs an empty Monarch. ourPid identifies this process for
// GetPid(); oracle answers virtual-desktop membership queries during MRU
// selection.
func New(ourPid uint64, oracle desktop.Oracle) *Monarch {
	if oracle == nil {
		oracle = desktop.AlwaysCurrent{}
	}
	return &Monarch{
		ourPid:   ourPid,
		oracle:   oracle,
		nextId:   1,
		peasants: make(map[remoting.PeasantId]*registryEntry),
		mru:      make(map[remoting.DesktopId]*desktopHeap),
	}
}

// GetPid returns this Monarch's owning process id.
func (m *Monarch) GetPid() uint64 {
	return m.ourPid
}

// SetResolver installs the host's findTargetWindowRequested subscriber.
// Without one, ProposeCommandline behaves as if the resolver always
// returned UseNew (spec §7, Resolver-absent).
func (m *Monarch) SetResolver(resolver remoting.ResolverFunc) {
	m.resolverMu.Lock()
	defer m.resolverMu.Unlock()
	m.resolver = resolver
}

func (m *Monarch) getResolver() remoting.ResolverFunc {
	m.resolverMu.RLock()
	defer m.resolverMu.RUnlock()
	return m.resolver
}

// PeasantCount returns the number of peasants currently registered.
func (m *Monarch) PeasantCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.peasants)
}
