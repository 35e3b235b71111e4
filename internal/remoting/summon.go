package remoting

// SummonWindowBehavior describes how a summoned window should present
// itself once found; the core passes it through to the peasant unread.
type SummonWindowBehavior struct {
	MoveToCurrentDesktop bool
	ToggleVisibility     bool
	DropdownDuration     int64 // nanoseconds; 0 means no animation
}

// SummonWindowSelectionArgs carries a summon request: either an explicit
// WindowName, or (when empty) a recency-based selection optionally
// restricted to the current desktop. FoundMatch is the output.
type SummonWindowSelectionArgs struct {
	WindowName       string
	OnCurrentDesktop bool
	FoundMatch       bool
}

// ProposeCommandlineResult is the outcome of Monarch.ProposeCommandline:
// whether the caller should create a new top-level window, and if so,
// what id/name it should assume.
type ProposeCommandlineResult struct {
	ShouldCreateNewWindow bool
	RequestedId           PeasantId // NoPeasantId means "no preference"
	RequestedName         string
}
