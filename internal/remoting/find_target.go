package remoting

// TargetWindow is the resolver's verdict on where a command line should
// land. Non-negative values are explicit peasant ids; negative values are
// reserved sentinels, kept out of the positive id space so they can never
// collide with an allocated PeasantId.
type TargetWindow int64

const (
	// UseNew forces a brand-new window regardless of existing ones.
	UseNew TargetWindow = -1
	// UseExisting selects the most recent window on any desktop.
	UseExisting TargetWindow = -2
	// UseExistingSameDesktop selects the most recent window on the
	// current desktop. Equivalent to UseCurrent.
	UseExistingSameDesktop TargetWindow = -3
	// UseCurrent is an alias for UseExistingSameDesktop.
	UseCurrent TargetWindow = UseExistingSameDesktop
	// UseName selects the window whose name matches ResultTargetWindowName.
	UseName TargetWindow = -4
	// UseNone means this invocation should produce no window at all.
	UseNone TargetWindow = -5
)

// IsExplicitId reports whether t names a concrete, non-negative peasant id.
func (t TargetWindow) IsExplicitId() bool {
	return t >= 0
}

// FindTargetWindowArgs is the two-phase record used to ask the host which
// window a command line should be routed to. The Monarch fills in
// Commandline; the host's resolver fills in ResultTargetWindow and,
// for UseName, ResultTargetWindowName.
type FindTargetWindowArgs struct {
	Commandline             CommandlineArgs
	ResultTargetWindow      TargetWindow
	ResultTargetWindowName  string
}

// ResolverFunc is the single subscriber the host provides to answer
// findTargetWindowRequested. Without one registered, the Monarch behaves
// as though the resolver always returned UseNew (Monarch.ProposeCommandline
// returns a create-new-window result directly; it does not return
// ErrNoResolver).
type ResolverFunc func(CommandlineArgs) FindTargetWindowArgs
