package ipc

import (
	"encoding/json"

	"github.com/myT-x/wtcore/internal/remoting"
)

// FollowerClient is a remoting.IFollower proxy that reaches a peasant in
// another process over its named pipe. The leader holds one of these per
// registered peasant instead of a local object reference.
type FollowerClient struct {
	pipeName string
}

// NewFollowerClient wraps the named pipe a peasant listens on.
func NewFollowerClient(pipeName string) *FollowerClient {
	return &FollowerClient{pipeName: pipeName}
}

func (c *FollowerClient) call(method string, payload any) (json.RawMessage, error) {
	return Call(c.pipeName, method, payload)
}

func (c *FollowerClient) AssignId(id remoting.PeasantId) error {
	_, err := c.call("AssignId", id)
	return err
}

func (c *FollowerClient) GetId() (remoting.PeasantId, error) {
	raw, err := c.call("GetId", struct{}{})
	if err != nil {
		return remoting.NoPeasantId, err
	}
	return unmarshalPayload[remoting.PeasantId](raw)
}

func (c *FollowerClient) GetPid() (uint64, error) {
	raw, err := c.call("GetPid", struct{}{})
	if err != nil {
		return 0, err
	}
	return unmarshalPayload[uint64](raw)
}

func (c *FollowerClient) GetWindowName() (string, error) {
	raw, err := c.call("GetWindowName", struct{}{})
	if err != nil {
		return "", err
	}
	return unmarshalPayload[string](raw)
}

func (c *FollowerClient) ExecuteCommandline(args remoting.CommandlineArgs) (bool, error) {
	raw, err := c.call("ExecuteCommandline", args)
	if err != nil {
		return false, err
	}
	return unmarshalPayload[bool](raw)
}

func (c *FollowerClient) Summon(behavior remoting.SummonWindowBehavior) error {
	_, err := c.call("Summon", behavior)
	return err
}

func (c *FollowerClient) DisplayWindowId() error {
	_, err := c.call("DisplayWindowId", struct{}{})
	return err
}

func (c *FollowerClient) Quit() error {
	_, err := c.call("Quit", struct{}{})
	return err
}

func (c *FollowerClient) GetLastActivatedArgs() (remoting.WindowActivatedArgs, error) {
	raw, err := c.call("GetLastActivatedArgs", struct{}{})
	if err != nil {
		return remoting.WindowActivatedArgs{}, err
	}
	return unmarshalPayload[remoting.WindowActivatedArgs](raw)
}

var _ remoting.IFollower = (*FollowerClient)(nil)
