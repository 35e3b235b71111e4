package monarch

import "github.com/myT-x/wtcore/internal/remoting"

// SummonWindow resolves a summon request: a non-empty WindowName resolves
// strictly by name (OnCurrentDesktop is ignored in that case — a named
// summon targets the named window wherever it is).
// Otherwise it uses MRU selection that skips quake windows, like
// ProposeCommandline; only when no other window matches is a quake
// window accepted.
func (m *Monarch) SummonWindow(args remoting.SummonWindowSelectionArgs) (remoting.SummonWindowSelectionArgs, error) {
	var resolvedId remoting.PeasantId
	if args.WindowName != "" {
		resolvedId = m.lookupPeasantIdForName(args.WindowName)
	} else {
		resolvedId = m.getMostRecentPeasantId(args.OnCurrentDesktop, true)
		if resolvedId == remoting.NoPeasantId {
			resolvedId = m.getMostRecentPeasantId(args.OnCurrentDesktop, false)
		}
	}

	if resolvedId == remoting.NoPeasantId {
		args.FoundMatch = false
		return args, nil
	}

	follower, ok := m.getPeasant(resolvedId)
	if !ok {
		args.FoundMatch = false
		return args, nil
	}

	if err := follower.Summon(remoting.SummonWindowBehavior{MoveToCurrentDesktop: args.OnCurrentDesktop}); err != nil {
		m.prune(resolvedId)
		args.FoundMatch = false
		return args, nil
	}

	args.FoundMatch = true
	return args, nil
}
