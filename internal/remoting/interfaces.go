package remoting

// IFollower is everything a leader may invoke on a peasant. Every method
// may fail with ErrPeerUnavailable if the owning process has died;
// implementations that cross a process boundary (see internal/ipc) must
// translate transport failures into that sentinel.
type IFollower interface {
	AssignId(id PeasantId) error
	GetId() (PeasantId, error)
	GetPid() (uint64, error)
	GetWindowName() (string, error)
	ExecuteCommandline(args CommandlineArgs) (bool, error)
	Summon(behavior SummonWindowBehavior) error
	DisplayWindowId() error
	Quit() error
	GetLastActivatedArgs() (WindowActivatedArgs, error)
}

// ILeader is everything a peasant (or a WindowManager) may invoke on the
// current leader. Like IFollower, every method may fail with
// ErrPeerUnavailable.
type ILeader interface {
	AddPeasant(peasant IFollower) (PeasantId, error)
	HandleActivatePeasant(args WindowActivatedArgs) error
	RequestRename(senderId PeasantId, args *RenameRequestArgs) error
	RequestIdentifyWindows() error
	ProposeCommandline(args CommandlineArgs) (ProposeCommandlineResult, error)
	SummonWindow(args SummonWindowSelectionArgs) (SummonWindowSelectionArgs, error)
	QuitAll() error
	GetPid() uint64
}
