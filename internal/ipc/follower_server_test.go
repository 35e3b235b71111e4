package ipc

import (
	"errors"
	"testing"

	"github.com/myT-x/wtcore/internal/remoting"
)

type fakeFollower struct {
	id       remoting.PeasantId
	pid      uint64
	name     string
	execErr  error
	lastArgs remoting.CommandlineArgs
}

func (f *fakeFollower) AssignId(id remoting.PeasantId) error { f.id = id; return nil }
func (f *fakeFollower) GetId() (remoting.PeasantId, error)   { return f.id, nil }
func (f *fakeFollower) GetPid() (uint64, error)              { return f.pid, nil }
func (f *fakeFollower) GetWindowName() (string, error)       { return f.name, nil }
func (f *fakeFollower) ExecuteCommandline(args remoting.CommandlineArgs) (bool, error) {
	f.lastArgs = args
	return true, f.execErr
}
func (f *fakeFollower) Summon(remoting.SummonWindowBehavior) error { return nil }
func (f *fakeFollower) DisplayWindowId() error                     { return nil }
func (f *fakeFollower) Quit() error                                { return nil }
func (f *fakeFollower) GetLastActivatedArgs() (remoting.WindowActivatedArgs, error) {
	return remoting.WindowActivatedArgs{PeasantId: f.id}, nil
}

func TestFollowerServerDispatchAssignIdAndGetId(t *testing.T) {
	peasant := &fakeFollower{}
	server := NewFollowerServer(peasant)

	payload, _ := marshalPayload(remoting.PeasantId(7))
	if _, err := server.Dispatch("AssignId", payload); err != nil {
		t.Fatalf("Dispatch(AssignId) error = %v", err)
	}

	raw, err := server.Dispatch("GetId", nil)
	if err != nil {
		t.Fatalf("Dispatch(GetId) error = %v", err)
	}
	id, err := unmarshalPayload[remoting.PeasantId](raw)
	if err != nil {
		t.Fatalf("unmarshalPayload error = %v", err)
	}
	if id != 7 {
		t.Fatalf("Dispatch(GetId) = %d, want 7", id)
	}
}

func TestFollowerServerDispatchExecuteCommandline(t *testing.T) {
	peasant := &fakeFollower{}
	server := NewFollowerServer(peasant)

	payload, _ := marshalPayload(remoting.CommandlineArgs{Args: []string{"wt", "-w", "0"}})
	raw, err := server.Dispatch("ExecuteCommandline", payload)
	if err != nil {
		t.Fatalf("Dispatch(ExecuteCommandline) error = %v", err)
	}
	ok, err := unmarshalPayload[bool](raw)
	if err != nil {
		t.Fatalf("unmarshalPayload error = %v", err)
	}
	if !ok {
		t.Fatal("Dispatch(ExecuteCommandline) = false, want true")
	}
	if len(peasant.lastArgs.Args) != 3 {
		t.Fatalf("peasant did not receive args: %+v", peasant.lastArgs)
	}
}

func TestFollowerServerDispatchPropagatesError(t *testing.T) {
	peasant := &fakeFollower{execErr: errors.New("boom")}
	server := NewFollowerServer(peasant)

	payload, _ := marshalPayload(remoting.CommandlineArgs{})
	if _, err := server.Dispatch("ExecuteCommandline", payload); err == nil {
		t.Fatal("Dispatch(ExecuteCommandline) should propagate peasant error")
	}
}

func TestFollowerServerDispatchUnknownMethod(t *testing.T) {
	server := NewFollowerServer(&fakeFollower{})
	if _, err := server.Dispatch("DoesNotExist", nil); err == nil {
		t.Fatal("Dispatch(unknown method) should fail")
	}
}
