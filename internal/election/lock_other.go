//go:build !windows

package election

import "errors"

// ErrNotLeader is returned by TryBecomeLeader when another process in
// this federation already holds the class registration.
var ErrNotLeader = errors.New("election: another process already holds the leader class registration")

// ClassLock is a no-op on non-Windows platforms.
type ClassLock struct{}

// TryBecomeLeader always succeeds on non-Windows platforms: there is no
// portable class-registry primitive backing this, so every caller on
// these platforms is its own leader.
func TryBecomeLeader(_ string) (*ClassLock, error) { return &ClassLock{}, nil }

// Revoke is a no-op on non-Windows platforms.
func (l *ClassLock) Revoke() error { return nil }

// WaitForProcessExit returns immediately on non-Windows platforms.
func WaitForProcessExit(_ uint64) {}
