package monarch

import (
	"log/slog"

	"github.com/myT-x/wtcore/internal/remoting"
)

// RebuildMRUFromRegistry re-derives MRU ordering from whichever peasants
// are currently registered, by asking each for its last known activation
// and feeding the result through the normal activation path. Called by
// internal/windowmanager's succession watcher immediately after this
// process wins an election: the old leader's MRU heaps die with it, but
// every surviving peasant remembers its own last activation, so
// re-querying them recovers the most-recent entry per peasant (spec §5's
// "eventually consistent" guarantee — anything that happened strictly
// between the old leader's last notified state and its death is lost).
func (m *Monarch) RebuildMRUFromRegistry() {
	for _, entry := range m.snapshotPeasants() {
		args, err := entry.follower.GetLastActivatedArgs()
		if err != nil {
			slog.Debug("[monarch] rebuildMRU: peasant died before reporting last activation", "error", err)
			m.prune(entry.id)
			continue
		}
		if args.PeasantId == remoting.NoPeasantId {
			// Peasant was registered but never activated; GetLastActivatedArgs
			// returns its zero value in that case. Applying it would push a
			// phantom entry for peasant 0 onto desktop 0's heap.
			continue
		}
		if err := m.HandleActivatePeasant(args); err != nil {
			slog.Debug("[monarch] rebuildMRU: failed to apply reported activation", "error", err)
		}
	}
}
