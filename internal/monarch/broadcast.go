package monarch

// RequestIdentifyWindows asks every live peasant to display its own
// window id. A peasant that fails the liveness-guarded call is pruned;
// the broadcast continues for the rest.
func (m *Monarch) RequestIdentifyWindows() error {
	for _, entry := range m.snapshotPeasants() {
		if err := entry.follower.DisplayWindowId(); err != nil {
			m.prune(entry.id)
		}
	}
	return nil
}

// QuitAll asks every live peasant to quit. A peasant that fails the
// liveness-guarded call is pruned; the broadcast continues for the rest.
func (m *Monarch) QuitAll() error {
	for _, entry := range m.snapshotPeasants() {
		if err := entry.follower.Quit(); err != nil {
			m.prune(entry.id)
		}
	}
	return nil
}
