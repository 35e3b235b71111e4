package ipc

import (
	"errors"
	"testing"

	"github.com/myT-x/wtcore/internal/remoting"
)

type fakeLeader struct {
	addPeasantErr error
	lastAdded     remoting.IFollower
	pid           uint64
	renameOK      bool
}

func (f *fakeLeader) AddPeasant(p remoting.IFollower) (remoting.PeasantId, error) {
	if f.addPeasantErr != nil {
		return remoting.NoPeasantId, f.addPeasantErr
	}
	f.lastAdded = p
	return remoting.PeasantId(42), nil
}
func (f *fakeLeader) HandleActivatePeasant(remoting.WindowActivatedArgs) error { return nil }
func (f *fakeLeader) RequestRename(_ remoting.PeasantId, args *remoting.RenameRequestArgs) error {
	args.Succeeded = f.renameOK
	return nil
}
func (f *fakeLeader) RequestIdentifyWindows() error { return nil }
func (f *fakeLeader) ProposeCommandline(args remoting.CommandlineArgs) (remoting.ProposeCommandlineResult, error) {
	return remoting.ProposeCommandlineResult{ShouldCreateNewWindow: true}, nil
}
func (f *fakeLeader) SummonWindow(args remoting.SummonWindowSelectionArgs) (remoting.SummonWindowSelectionArgs, error) {
	args.FoundMatch = true
	return args, nil
}
func (f *fakeLeader) QuitAll() error  { return nil }
func (f *fakeLeader) GetPid() uint64 { return f.pid }

func TestLeaderServerDispatchAddPeasant(t *testing.T) {
	leader := &fakeLeader{}
	server := NewLeaderServer(leader)

	payload, err := marshalPayload(addPeasantRequest{FollowerPipeName: `\\.\pipe\wtcore-test-peasant-1`})
	if err != nil {
		t.Fatalf("marshalPayload error = %v", err)
	}

	raw, err := server.Dispatch("AddPeasant", payload)
	if err != nil {
		t.Fatalf("Dispatch(AddPeasant) error = %v", err)
	}
	id, err := unmarshalPayload[remoting.PeasantId](raw)
	if err != nil {
		t.Fatalf("unmarshalPayload error = %v", err)
	}
	if id != 42 {
		t.Fatalf("Dispatch(AddPeasant) id = %d, want 42", id)
	}
	if leader.lastAdded == nil {
		t.Fatal("Dispatch(AddPeasant) did not register a follower proxy")
	}
}

func TestLeaderServerDispatchRequestRename(t *testing.T) {
	leader := &fakeLeader{renameOK: true}
	server := NewLeaderServer(leader)

	payload, _ := marshalPayload(requestRenamePayload{
		SenderId: 1,
		Args:     remoting.RenameRequestArgs{NewName: "main"},
	})

	raw, err := server.Dispatch("RequestRename", payload)
	if err != nil {
		t.Fatalf("Dispatch(RequestRename) error = %v", err)
	}
	args, err := unmarshalPayload[remoting.RenameRequestArgs](raw)
	if err != nil {
		t.Fatalf("unmarshalPayload error = %v", err)
	}
	if !args.Succeeded {
		t.Fatal("Dispatch(RequestRename) Succeeded = false, want true")
	}
}

func TestLeaderServerDispatchUnknownMethod(t *testing.T) {
	server := NewLeaderServer(&fakeLeader{})
	if _, err := server.Dispatch("DoesNotExist", nil); err == nil {
		t.Fatal("Dispatch(unknown method) should fail")
	}
}

func TestLeaderServerDispatchPropagatesError(t *testing.T) {
	server := NewLeaderServer(&fakeLeader{addPeasantErr: errors.New("boom")})
	payload, _ := marshalPayload(addPeasantRequest{FollowerPipeName: "x"})
	if _, err := server.Dispatch("AddPeasant", payload); err == nil {
		t.Fatal("Dispatch(AddPeasant) should propagate leader error")
	}
}
