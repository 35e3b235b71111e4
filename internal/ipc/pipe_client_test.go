package ipc

import (
	"errors"
	"net"
	"testing"
)

func TestCallUnreachablePipeReturnsErrPeerUnavailable(t *testing.T) {
	_, err := Call(`\\.\pipe\wtcore-test-definitely-absent`, "GetPid", struct{}{})
	if !errors.Is(err, ErrPeerUnavailable) {
		t.Fatalf("Call() error = %v, want ErrPeerUnavailable", err)
	}
}

func TestIsConnectionErrorRecognizesErrPeerUnavailable(t *testing.T) {
	if !IsConnectionError(ErrPeerUnavailable) {
		t.Fatal("IsConnectionError(ErrPeerUnavailable) = false, want true")
	}
}

func TestIsConnectionErrorRecognizesDialOpError(t *testing.T) {
	err := &net.OpError{Op: "dial", Err: errors.New("boom")}
	if !IsConnectionError(err) {
		t.Fatal("IsConnectionError(dial OpError) = false, want true")
	}
}

func TestIsConnectionErrorRejectsUnrelatedError(t *testing.T) {
	if IsConnectionError(errors.New("some other failure")) {
		t.Fatal("IsConnectionError(unrelated error) = true, want false")
	}
}

func TestIsConnectionErrorNilIsFalse(t *testing.T) {
	if IsConnectionError(nil) {
		t.Fatal("IsConnectionError(nil) = true, want false")
	}
}
