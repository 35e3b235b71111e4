package monarch

import (
	"container/heap"

	"github.com/myT-x/wtcore/internal/remoting"
)

// desktopHeap is a max-heap of activation records for a single virtual
// desktop, ordered by WindowActivatedArgs.Less (newest timestamp first,
// ties broken by highest peasant id).
type desktopHeap struct {
	entries []remoting.WindowActivatedArgs
}

func (h *desktopHeap) Len() int { return len(h.entries) }
func (h *desktopHeap) Less(i, j int) bool {
	return h.entries[i].Less(h.entries[j])
}
func (h *desktopHeap) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }
func (h *desktopHeap) Push(x any)    { h.entries = append(h.entries, x.(remoting.WindowActivatedArgs)) }
func (h *desktopHeap) Pop() any {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[:n-1]
	return item
}

// removeFromMRULocked removes every entry for id across all per-desktop
// heaps. Callers must hold m.mu for writing.
func (m *Monarch) removeFromMRULocked(id remoting.PeasantId) {
	for _, h := range m.mru {
		for i, e := range h.entries {
			if e.PeasantId == id {
				heap.Remove(h, i)
				break
			}
		}
	}
}

// HandleActivatePeasant updates the MRU ordering for a single activation:
// any existing entry for this peasant (on any desktop) is removed first,
// then the new record is pushed onto its desktop's heap. This guarantees
// each peasant appears in at most one heap at a time.
func (m *Monarch) HandleActivatePeasant(args remoting.WindowActivatedArgs) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeFromMRULocked(args.PeasantId)

	h, ok := m.mru[args.DesktopId]
	if !ok {
		h = &desktopHeap{}
		m.mru[args.DesktopId] = h
	}
	heap.Push(h, args)
	return nil
}

// getMostRecentPeasantId implements spec §4.4's MRU selection algorithm:
// collect the top of each per-desktop heap, optionally filter to the
// current desktop via the DesktopOracle, skip quake windows when asked
// (walking deeper into that desktop's heap rather than stopping), and
// pick the candidate with the newest timestamp (ties: highest id). If no
// candidate survives and limitToCurrentDesktop is false, fall back to
// any registered peasant's id. Returns NoPeasantId if nothing qualifies.
func (m *Monarch) getMostRecentPeasantId(limitToCurrentDesktop bool, ignoreQuakeWindow bool) remoting.PeasantId {
	m.mu.RLock()
	// Work on private copies of each heap's backing slice so popping past
	// a quake window while searching doesn't mutate the real structure.
	heaps := make([]*desktopHeap, 0, len(m.mru))
	for _, h := range m.mru {
		if h.Len() == 0 {
			continue
		}
		heaps = append(heaps, &desktopHeap{entries: append([]remoting.WindowActivatedArgs(nil), h.entries...)})
	}
	peasants := make(map[remoting.PeasantId]*registryEntry, len(m.peasants))
	for id, e := range m.peasants {
		peasants[id] = e
	}
	m.mu.RUnlock()

	var best *remoting.WindowActivatedArgs
	for _, h := range heaps {
		for h.Len() > 0 {
			top := h.entries[0]
			if limitToCurrentDesktop && !m.oracle.IsWindowOnCurrentDesktop(top.NativeWindowHandle) {
				break
			}
			if ignoreQuakeWindow && m.isQuake(peasants, top.PeasantId) {
				heap.Pop(h)
				continue
			}
			if best == nil || top.Less(*best) {
				cp := top
				best = &cp
			}
			break
		}
	}
	if best != nil {
		return best.PeasantId
	}

	if !limitToCurrentDesktop {
		// Last resort: any registered peasant, arbitrary order.
		m.mu.RLock()
		defer m.mu.RUnlock()
		for id := range m.peasants {
			return id
		}
	}
	return remoting.NoPeasantId
}

// isQuake reports whether id refers to a peasant whose name begins with
// the quake prefix. peasants is a registry snapshot taken by the caller;
// this does not re-acquire m.mu.
func (m *Monarch) isQuake(peasants map[remoting.PeasantId]*registryEntry, id remoting.PeasantId) bool {
	entry, ok := peasants[id]
	if !ok {
		return false
	}
	name, err := entry.follower.GetWindowName()
	if err != nil {
		return false
	}
	return remoting.IsQuakeName(name)
}
