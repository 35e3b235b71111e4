package ipc

import (
	"sync"

	"github.com/myT-x/wtcore/internal/remoting"
)

// addPeasantRequest is AddPeasant's wire payload: a local IFollower
// reference cannot cross the process boundary, so the caller instead
// advertises the named pipe its own FollowerServer listens on. The
// leader dials that pipe to build a FollowerClient proxy and registers
// that instead of the interface value it was handed.
type addPeasantRequest struct {
	FollowerPipeName string
}

type requestRenamePayload struct {
	SenderId remoting.PeasantId
	Args     remoting.RenameRequestArgs
}

// LeaderClient is a remoting.ILeader proxy that reaches the federation's
// current leader over its well-known named pipe.
type LeaderClient struct {
	pipeName     string
	selfPipeName string

	mu         sync.Mutex
	lastKnownPid uint64
}

// NewLeaderClient wraps the leader's pipe. selfFollowerPipeName describes
// the calling peasant's own FollowerServer, advertised to the leader on
// AddPeasant so it can call back.
func NewLeaderClient(leaderPipeName, selfFollowerPipeName string) *LeaderClient {
	return &LeaderClient{pipeName: leaderPipeName, selfPipeName: selfFollowerPipeName}
}

func (c *LeaderClient) call(method string, payload any) ([]byte, error) {
	return Call(c.pipeName, method, payload)
}

func (c *LeaderClient) AddPeasant(_ remoting.IFollower) (remoting.PeasantId, error) {
	raw, err := c.call("AddPeasant", addPeasantRequest{FollowerPipeName: c.selfPipeName})
	if err != nil {
		return remoting.NoPeasantId, err
	}
	return unmarshalPayload[remoting.PeasantId](raw)
}

func (c *LeaderClient) HandleActivatePeasant(args remoting.WindowActivatedArgs) error {
	_, err := c.call("HandleActivatePeasant", args)
	return err
}

func (c *LeaderClient) RequestRename(senderId remoting.PeasantId, args *remoting.RenameRequestArgs) error {
	raw, err := c.call("RequestRename", requestRenamePayload{SenderId: senderId, Args: *args})
	if err != nil {
		return err
	}
	result, err := unmarshalPayload[remoting.RenameRequestArgs](raw)
	if err != nil {
		return err
	}
	*args = result
	return nil
}

func (c *LeaderClient) RequestIdentifyWindows() error {
	_, err := c.call("RequestIdentifyWindows", struct{}{})
	return err
}

func (c *LeaderClient) ProposeCommandline(args remoting.CommandlineArgs) (remoting.ProposeCommandlineResult, error) {
	raw, err := c.call("ProposeCommandline", args)
	if err != nil {
		return remoting.ProposeCommandlineResult{}, err
	}
	return unmarshalPayload[remoting.ProposeCommandlineResult](raw)
}

func (c *LeaderClient) SummonWindow(args remoting.SummonWindowSelectionArgs) (remoting.SummonWindowSelectionArgs, error) {
	raw, err := c.call("SummonWindow", args)
	if err != nil {
		return remoting.SummonWindowSelectionArgs{}, err
	}
	return unmarshalPayload[remoting.SummonWindowSelectionArgs](raw)
}

func (c *LeaderClient) QuitAll() error {
	_, err := c.call("QuitAll", struct{}{})
	return err
}

// GetPid fetches the leader's pid over the wire, used by the succession
// watcher to open a wait handle on the leader process. ILeader.GetPid
// has no error return, so on a failed round trip this falls back to the
// last pid this client successfully observed (0 if none yet) rather than
// panicking the caller's wait loop.
func (c *LeaderClient) GetPid() uint64 {
	raw, err := c.call("GetPid", struct{}{})
	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.lastKnownPid
	}
	pid, err := unmarshalPayload[uint64](raw)
	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.lastKnownPid
	}
	c.mu.Lock()
	c.lastKnownPid = pid
	c.mu.Unlock()
	return pid
}

var _ remoting.ILeader = (*LeaderClient)(nil)
