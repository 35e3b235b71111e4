package monarch

import "github.com/myT-x/wtcore/internal/remoting"

// lookupPeasantIdForName performs a liveness-guarded linear scan for a
// peasant with the given exact name. An empty query always returns
// NoPeasantId immediately. A peer that dies mid-scan is pruned and
// simply doesn't match; a concurrent rename during the scan is
// tolerated, producing at worst a stale miss.
func (m *Monarch) lookupPeasantIdForName(name string) remoting.PeasantId {
	if name == "" {
		return remoting.NoPeasantId
	}

	for _, entry := range m.snapshotPeasants() {
		peasantName, err := entry.follower.GetWindowName()
		if err != nil {
			m.prune(entry.id)
			continue
		}
		if peasantName == name {
			return entry.id
		}
	}
	return remoting.NoPeasantId
}
