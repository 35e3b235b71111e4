//go:build windows

package election

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// ErrNotLeader is returned by TryBecomeLeader when another process in
// this federation already holds the class registration.
var ErrNotLeader = errors.New("election: another process already holds the leader class registration")

// ClassLock holds a Windows named mutex that represents this process's
// claim to being the federation's leader. The kernel automatically
// releases it when the owning process terminates — the mechanism by
// which a crashed leader's class registration disappears without any
// explicit cleanup.
type ClassLock struct {
	handle windows.Handle
}

// TryBecomeLeader attempts to win the class-registry race for the given
// class name: the first process to create the named mutex becomes the
// leader candidate; every later call for the same name fails with
// ErrNotLeader until the winner releases or dies.
func TryBecomeLeader(className string) (*ClassLock, error) {
	if className == "" {
		return nil, errors.New("class name is required")
	}
	nameUTF16, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, fmt.Errorf("invalid class name %q: %w", className, err)
	}
	h, err := windows.CreateMutex(nil, true, nameUTF16)
	if err == windows.ERROR_ALREADY_EXISTS {
		if h != 0 {
			windows.CloseHandle(h)
		}
		return nil, ErrNotLeader
	}
	if err != nil {
		if h != 0 {
			windows.CloseHandle(h)
		}
		return nil, fmt.Errorf("CreateMutex %q: %w", className, err)
	}
	return &ClassLock{handle: h}, nil
}

// Revoke releases the class registration immediately, so a process
// mid-shutdown can't be discovered as leader by a follower constructed
// after this call returns (spec §5 teardown). Safe on a nil receiver and
// idempotent.
func (l *ClassLock) Revoke() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(l.handle)
	l.handle = 0
	return err
}

// WaitForProcessExit blocks until the process identified by pid
// terminates. If the process cannot be opened (already gone, or this
// process lacks permission), it returns immediately as if the process
// had already exited — the succession watcher treats "can't observe it"
// the same as "it's dead" so it always makes progress toward
// re-election.
func WaitForProcessExit(pid uint64) {
	h, err := windows.OpenProcess(windows.SYNCHRONIZE, false, uint32(pid))
	if err != nil {
		return
	}
	defer windows.CloseHandle(h)
	windows.WaitForSingleObject(h, windows.INFINITE)
}
