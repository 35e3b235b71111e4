package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/myT-x/wtcore/internal/remoting"
)

// FollowerServer dispatches incoming calls to a local remoting.IFollower
// (the process's own peasant). It is installed behind a PipeServer so the
// leader can reach this peasant regardless of which process is leader.
type FollowerServer struct {
	peasant remoting.IFollower
}

// NewFollowerServer wraps a local peasant for cross-process dispatch.
func NewFollowerServer(peasant remoting.IFollower) *FollowerServer {
	return &FollowerServer{peasant: peasant}
}

func (s *FollowerServer) Dispatch(method string, payload json.RawMessage) (json.RawMessage, error) {
	switch method {
	case "AssignId":
		id, err := unmarshalPayload[remoting.PeasantId](payload)
		if err != nil {
			return nil, err
		}
		if err := s.peasant.AssignId(id); err != nil {
			return nil, err
		}
		return marshalPayload(struct{}{})

	case "GetId":
		id, err := s.peasant.GetId()
		if err != nil {
			return nil, err
		}
		return marshalPayload(id)

	case "GetPid":
		pid, err := s.peasant.GetPid()
		if err != nil {
			return nil, err
		}
		return marshalPayload(pid)

	case "GetWindowName":
		name, err := s.peasant.GetWindowName()
		if err != nil {
			return nil, err
		}
		return marshalPayload(name)

	case "ExecuteCommandline":
		args, err := unmarshalPayload[remoting.CommandlineArgs](payload)
		if err != nil {
			return nil, err
		}
		ok, err := s.peasant.ExecuteCommandline(args)
		if err != nil {
			return nil, err
		}
		return marshalPayload(ok)

	case "Summon":
		behavior, err := unmarshalPayload[remoting.SummonWindowBehavior](payload)
		if err != nil {
			return nil, err
		}
		if err := s.peasant.Summon(behavior); err != nil {
			return nil, err
		}
		return marshalPayload(struct{}{})

	case "DisplayWindowId":
		if err := s.peasant.DisplayWindowId(); err != nil {
			return nil, err
		}
		return marshalPayload(struct{}{})

	case "Quit":
		if err := s.peasant.Quit(); err != nil {
			return nil, err
		}
		return marshalPayload(struct{}{})

	case "GetLastActivatedArgs":
		args, err := s.peasant.GetLastActivatedArgs()
		if err != nil {
			return nil, err
		}
		return marshalPayload(args)

	default:
		return nil, fmt.Errorf("follower server: unknown method %q", method)
	}
}

var _ Dispatcher = (*FollowerServer)(nil)
