package ipc

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func TestReadDelimitedFrameWithinLimitRequest(t *testing.T) {
	payload := `{"method":"GetPid"}` + "\n"
	reader := bufio.NewReaderSize(strings.NewReader(payload), maxPipeRequestBytes+1)

	raw, err := readDelimitedFrame(reader, maxPipeRequestBytes)
	if err != nil {
		t.Fatalf("readDelimitedFrame() error = %v", err)
	}
	if string(raw) != payload {
		t.Fatalf("readDelimitedFrame() = %q, want %q", string(raw), payload)
	}
}

func TestReadDelimitedFrameRejectsOversizedRequest(t *testing.T) {
	oversized := strings.Repeat("a", maxPipeRequestBytes+1) + "\n"
	reader := bufio.NewReaderSize(strings.NewReader(oversized), maxPipeRequestBytes+1)

	if _, err := readDelimitedFrame(reader, maxPipeRequestBytes); err == nil {
		t.Fatalf("readDelimitedFrame() expected size error")
	}
}

func TestReadDelimitedFrameAcceptsEOFWithoutDelimiter(t *testing.T) {
	payload := `{"method":"GetId"}`
	reader := bufio.NewReaderSize(strings.NewReader(payload), maxPipeRequestBytes+1)

	raw, err := readDelimitedFrame(reader, maxPipeRequestBytes)
	if err != nil {
		t.Fatalf("readDelimitedFrame() error = %v", err)
	}
	if string(raw) != payload {
		t.Fatalf("readDelimitedFrame() = %q, want %q", string(raw), payload)
	}
}

func TestReadDelimitedFrameReturnsEOFOnEmptyInput(t *testing.T) {
	reader := bufio.NewReaderSize(strings.NewReader(""), maxPipeRequestBytes+1)

	_, err := readDelimitedFrame(reader, maxPipeRequestBytes)
	if err != io.EOF {
		t.Fatalf("readDelimitedFrame() error = %v, want io.EOF", err)
	}
}

type stubDispatcher struct {
	method  string
	payload json.RawMessage
	result  json.RawMessage
	err     error
}

func (s *stubDispatcher) Dispatch(method string, payload json.RawMessage) (json.RawMessage, error) {
	s.method = method
	s.payload = payload
	return s.result, s.err
}

func TestNewPipeServerRequiresDispatcher(t *testing.T) {
	srv := NewPipeServer(`\\.\pipe\wtcore-test-nodispatcher`, nil)
	if err := srv.Start(); err == nil {
		t.Fatal("Start() with nil dispatcher should fail")
	}
}
