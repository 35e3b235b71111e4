package ipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/Microsoft/go-winio"
)

const (
	defaultPipeDialTimeout = 3 * time.Second
	defaultPipeRWTimeout   = 15 * time.Second
)

// Call sends one (method, payload) envelope to pipeName and waits for
// its response. A dial/read/write failure is always reported as
// ErrPeerUnavailable, matching spec.md's requirement that the transport
// deliver a distinguishable peer-unavailable error.
func Call(pipeName string, method string, payload any) (json.RawMessage, error) {
	rawPayload, err := marshalPayload(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload for %s: %w", method, err)
	}

	dialTimeout := defaultPipeDialTimeout
	conn, err := winio.DialPipe(pipeName, &dialTimeout)
	if err != nil {
		return nil, ErrPeerUnavailable
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(defaultPipeRWTimeout)); err != nil {
		return nil, ErrPeerUnavailable
	}

	rawReq, err := encodeEnvelope(Envelope{Method: method, Payload: rawPayload})
	if err != nil {
		return nil, fmt.Errorf("encode envelope for %s: %w", method, err)
	}

	if _, err := conn.Write(rawReq); err != nil {
		return nil, ErrPeerUnavailable
	}
	if _, err := conn.Write([]byte{'\n'}); err != nil {
		return nil, ErrPeerUnavailable
	}

	rawResp, err := readDelimitedFrame(bufio.NewReaderSize(conn, maxPipeResponseBytes+1), maxPipeResponseBytes)
	if err != nil {
		return nil, ErrPeerUnavailable
	}

	resp, err := decodeResponse(rawResp)
	if err != nil {
		return nil, fmt.Errorf("invalid response to %s: %w", method, err)
	}
	if callErr := resp.err(); callErr != nil {
		return nil, callErr
	}
	return resp.Result, nil
}

// IsConnectionError returns true when the error indicates that the peer
// is absent or unreachable.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrPeerUnavailable) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial" || opErr.Op == "open"
	}
	return false
}
