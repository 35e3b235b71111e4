package monarch

import "github.com/myT-x/wtcore/internal/remoting"

// ProposeCommandline implements spec §4.4's command-line proposal
// algorithm. Without a registered resolver it behaves as an implicit
// UseNew (spec §7, Resolver-absent).
func (m *Monarch) ProposeCommandline(args remoting.CommandlineArgs) (remoting.ProposeCommandlineResult, error) {
	resolver := m.getResolver()
	if resolver == nil {
		return remoting.ProposeCommandlineResult{ShouldCreateNewWindow: true}, nil
	}

	findArgs := resolver(args)
	target := findArgs.ResultTargetWindow
	name := findArgs.ResultTargetWindowName

	if target == remoting.UseNone {
		return remoting.ProposeCommandlineResult{ShouldCreateNewWindow: false}, nil
	}

	resolvedId := remoting.NoPeasantId
	switch {
	case target.IsExplicitId():
		resolvedId = remoting.PeasantId(target)
	case target == remoting.UseCurrent: // == UseExistingSameDesktop
		resolvedId = m.getMostRecentPeasantId(true, true)
	case target == remoting.UseExisting:
		resolvedId = m.getMostRecentPeasantId(false, true)
	case target == remoting.UseName:
		resolvedId = m.lookupPeasantIdForName(name)
	default: // UseNew or any other unrecognized sentinel
		resolvedId = remoting.NoPeasantId
	}

	if resolvedId == remoting.NoPeasantId {
		return remoting.ProposeCommandlineResult{ShouldCreateNewWindow: true, RequestedName: name}, nil
	}

	follower, ok := m.getPeasant(resolvedId)
	if !ok {
		// Resolved id > 0 but no live peasant holds it: the new window
		// should take that id (enables `wt -w 17 ...` to reserve an id
		// before that window exists).
		return remoting.ProposeCommandlineResult{
			ShouldCreateNewWindow: true,
			RequestedId:           resolvedId,
			RequestedName:         name,
		}, nil
	}

	if _, err := follower.ExecuteCommandline(args); err != nil {
		m.prune(resolvedId)
		return remoting.ProposeCommandlineResult{ShouldCreateNewWindow: true, RequestedName: name}, nil
	}

	return remoting.ProposeCommandlineResult{ShouldCreateNewWindow: false, RequestedName: name}, nil
}
