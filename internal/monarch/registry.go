package monarch

import (
	"log/slog"

	"github.com/myT-x/wtcore/internal/remoting"
)

// AddPeasant registers a peasant and returns its assigned id. If the
// peasant already carries an id (adopted from a prior, now-dead leader),
// that id is kept and the allocator is advanced past it; otherwise a
// fresh id is allocated and assigned. A peer-died failure while reading
// the provided id is swallowed: the peasant is simply not added.
func (m *Monarch) AddPeasant(follower remoting.IFollower) (remoting.PeasantId, error) {
	providedId, err := follower.GetId()
	if err != nil {
		slog.Debug("[monarch] addPeasant: peasant died before registration", "error", err)
		return remoting.NoPeasantId, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var id remoting.PeasantId
	if providedId == remoting.NoPeasantId {
		id = m.nextId
		m.nextId++
		if err := follower.AssignId(id); err != nil {
			slog.Debug("[monarch] addPeasant: peasant died during id assignment", "error", err)
			return remoting.NoPeasantId, nil
		}
	} else {
		id = providedId
		if id >= m.nextId {
			m.nextId = id + 1
		}
	}

	m.peasants[id] = &registryEntry{id: id, follower: follower}
	return id, nil
}

// getPeasant returns the live follower for id, pruning it from the
// registry and MRU structure if a liveness probe reveals it has died.
// Returns (nil, false) for an unknown or dead peasant; the peer-died
// error itself is never exposed to callers.
func (m *Monarch) getPeasant(id remoting.PeasantId) (remoting.IFollower, bool) {
	m.mu.RLock()
	entry, ok := m.peasants[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if _, err := entry.follower.GetPid(); err != nil {
		m.prune(id)
		return nil, false
	}
	return entry.follower, true
}

// prune removes id from both the registry and the MRU structure. Per
// spec §9's open question, a single lock guards both structures in this
// implementation, so there is no unsafe interleaving window to document
// here (see DESIGN.md for the rationale).
func (m *Monarch) prune(id remoting.PeasantId) {
	m.mu.Lock()
	delete(m.peasants, id)
	m.removeFromMRULocked(id)
	m.mu.Unlock()
}

// snapshotPeasants returns a copy of the registry for iteration without
// holding the lock across cross-process calls.
func (m *Monarch) snapshotPeasants() []*registryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*registryEntry, 0, len(m.peasants))
	for _, e := range m.peasants {
		out = append(out, e)
	}
	return out
}
