package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/myT-x/wtcore/internal/remoting"
)

// LeaderServer dispatches incoming calls to a local remoting.ILeader (the
// process's own Monarch, whether this process is leader or a follower
// whose WindowManager happens to host an isolated-mode leader).
type LeaderServer struct {
	leader remoting.ILeader
}

// NewLeaderServer wraps a local ILeader for cross-process dispatch.
func NewLeaderServer(leader remoting.ILeader) *LeaderServer {
	return &LeaderServer{leader: leader}
}

func (s *LeaderServer) Dispatch(method string, payload json.RawMessage) (json.RawMessage, error) {
	switch method {
	case "AddPeasant":
		req, err := unmarshalPayload[addPeasantRequest](payload)
		if err != nil {
			return nil, err
		}
		id, err := s.leader.AddPeasant(NewFollowerClient(req.FollowerPipeName))
		if err != nil {
			return nil, err
		}
		return marshalPayload(id)

	case "HandleActivatePeasant":
		args, err := unmarshalPayload[remoting.WindowActivatedArgs](payload)
		if err != nil {
			return nil, err
		}
		if err := s.leader.HandleActivatePeasant(args); err != nil {
			return nil, err
		}
		return marshalPayload(struct{}{})

	case "RequestRename":
		req, err := unmarshalPayload[requestRenamePayload](payload)
		if err != nil {
			return nil, err
		}
		args := req.Args
		if err := s.leader.RequestRename(req.SenderId, &args); err != nil {
			return nil, err
		}
		return marshalPayload(args)

	case "RequestIdentifyWindows":
		if err := s.leader.RequestIdentifyWindows(); err != nil {
			return nil, err
		}
		return marshalPayload(struct{}{})

	case "ProposeCommandline":
		args, err := unmarshalPayload[remoting.CommandlineArgs](payload)
		if err != nil {
			return nil, err
		}
		result, err := s.leader.ProposeCommandline(args)
		if err != nil {
			return nil, err
		}
		return marshalPayload(result)

	case "SummonWindow":
		args, err := unmarshalPayload[remoting.SummonWindowSelectionArgs](payload)
		if err != nil {
			return nil, err
		}
		result, err := s.leader.SummonWindow(args)
		if err != nil {
			return nil, err
		}
		return marshalPayload(result)

	case "QuitAll":
		if err := s.leader.QuitAll(); err != nil {
			return nil, err
		}
		return marshalPayload(struct{}{})

	case "GetPid":
		return marshalPayload(s.leader.GetPid())

	default:
		return nil, fmt.Errorf("leader server: unknown method %q", method)
	}
}

var _ Dispatcher = (*LeaderServer)(nil)
