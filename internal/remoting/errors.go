package remoting

import "errors"

// ErrPeerUnavailable is returned by any cross-process operation whose
// target process has died. Callers must treat it as a recoverable state
// transition — prune the peer and continue — never let it escape to a
// host-visible API undecorated.
var ErrPeerUnavailable = errors.New("remoting: peer unavailable")

// ErrNoResolver indicates no findTargetWindowRequested subscriber is
// registered. Treated as an implicit UseNew.
var ErrNoResolver = errors.New("remoting: no findTargetWindowRequested subscriber")
