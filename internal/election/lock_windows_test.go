//go:build windows

package election

import "testing"

func TestTryBecomeLeader(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "first claim succeeds",
			run: func(t *testing.T) {
				lock, err := TryBecomeLeader(`Global\wtcore-test-first`)
				if err != nil {
					t.Fatalf("TryBecomeLeader failed: %v", err)
				}
				if lock == nil {
					t.Fatal("TryBecomeLeader returned nil lock without error")
				}
				if err := lock.Revoke(); err != nil {
					t.Fatalf("Revoke failed: %v", err)
				}
			},
		},
		{
			name: "second claim returns ErrNotLeader",
			run: func(t *testing.T) {
				lock1, err := TryBecomeLeader(`Global\wtcore-test-second`)
				if err != nil {
					t.Fatalf("first TryBecomeLeader failed: %v", err)
				}
				defer lock1.Revoke()

				lock2, err := TryBecomeLeader(`Global\wtcore-test-second`)
				if err != ErrNotLeader {
					t.Fatalf("second TryBecomeLeader: got err=%v, want ErrNotLeader", err)
				}
				if lock2 != nil {
					t.Fatal("second TryBecomeLeader returned non-nil lock on ErrNotLeader")
				}
			},
		},
		{
			name: "claim reacquirable after revoke",
			run: func(t *testing.T) {
				lock1, err := TryBecomeLeader(`Global\wtcore-test-reacquire`)
				if err != nil {
					t.Fatalf("first TryBecomeLeader failed: %v", err)
				}
				if err := lock1.Revoke(); err != nil {
					t.Fatalf("Revoke failed: %v", err)
				}

				lock2, err := TryBecomeLeader(`Global\wtcore-test-reacquire`)
				if err != nil {
					t.Fatalf("second TryBecomeLeader after revoke failed: %v", err)
				}
				defer lock2.Revoke()
			},
		},
		{
			name: "revoke idempotent",
			run: func(t *testing.T) {
				lock, err := TryBecomeLeader(`Global\wtcore-test-idempotent`)
				if err != nil {
					t.Fatalf("TryBecomeLeader failed: %v", err)
				}
				if err := lock.Revoke(); err != nil {
					t.Fatalf("first Revoke failed: %v", err)
				}
				if err := lock.Revoke(); err != nil {
					t.Fatalf("second Revoke should be no-op, got: %v", err)
				}
			},
		},
		{
			name: "nil lock revoke safe",
			run: func(t *testing.T) {
				var lock *ClassLock
				if err := lock.Revoke(); err != nil {
					t.Fatalf("nil Revoke should be no-op, got: %v", err)
				}
			},
		},
		{
			name: "empty class name returns error",
			run: func(t *testing.T) {
				lock, err := TryBecomeLeader("")
				if err == nil {
					t.Fatal("TryBecomeLeader with empty name should fail")
				}
				if lock != nil {
					lock.Revoke()
					t.Fatal("TryBecomeLeader with empty name returned non-nil lock")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestWaitForProcessExitUnknownPID(t *testing.T) {
	done := make(chan struct{})
	go func() {
		// A pid that (almost certainly) never existed: OpenProcess fails
		// and WaitForProcessExit must return immediately rather than block.
		WaitForProcessExit(0xFFFFFFF0)
		close(done)
	}()

	select {
	case <-done:
	default:
	}
	<-done
}
