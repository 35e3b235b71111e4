package remoting

// NativeWindowHandle is an opaque, OS-specific handle to a top-level
// window. The core never dereferences it; it is only ever passed back
// to the host's DesktopOracle.
type NativeWindowHandle uint64

// DesktopId opaquely identifies a virtual desktop.
type DesktopId uint64

// WindowActivatedArgs records that a peasant's window was brought to the
// foreground. It is ordered by ActivationTimestamp for MRU-heap use;
// ties are broken by the higher PeasantId first so ordering is
// deterministic.
type WindowActivatedArgs struct {
	PeasantId           PeasantId
	NativeWindowHandle  NativeWindowHandle
	DesktopId           DesktopId
	ActivationTimestamp int64 // monotonic, e.g. time.Now().UnixNano()
}

// Less implements the heap ordering: newer timestamp first, ties broken
// by the higher peasant id first (see container/heap usage in monarch).
func (a WindowActivatedArgs) Less(other WindowActivatedArgs) bool {
	if a.ActivationTimestamp != other.ActivationTimestamp {
		return a.ActivationTimestamp > other.ActivationTimestamp
	}
	return a.PeasantId > other.PeasantId
}
