package monarch

import "github.com/myT-x/wtcore/internal/remoting"

// RequestRename handles a peasant's rename proposal. The leader itself
// holds no name→id map to mutate: it only checks whether another live
// peasant already holds newName. The peasant that asked applies the
// change locally on success.
func (m *Monarch) RequestRename(senderId remoting.PeasantId, args *remoting.RenameRequestArgs) error {
	existing := m.lookupPeasantIdForName(args.NewName)
	if existing != remoting.NoPeasantId && existing != senderId {
		args.Succeeded = false
		return nil
	}
	args.Succeeded = true
	return nil
}
