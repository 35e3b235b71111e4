// Package ipc is the named-pipe wire transport for cross-process
// ILeader/IFollower calls (spec.md §6 External Interfaces). Every call
// is a single request/response round trip over one connection: a
// method name selects the operation, a JSON payload carries its
// arguments, and a distinguishable peer-unavailable error code lets
// callers tell "the peer rejected this" apart from "the peer is gone".
package ipc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/myT-x/wtcore/internal/remoting"
)

// ErrPeerUnavailable is the wire-level counterpart of
// remoting.ErrPeerUnavailable: it is what a dial/read/write failure (or
// an explicit peer-unavailable envelope) is translated to on the
// caller's side, so remoting callers never need to know about pipes.
// It wraps remoting.ErrPeerUnavailable, so errors.Is matches either.
var ErrPeerUnavailable = fmt.Errorf("ipc: %w", remoting.ErrPeerUnavailable)

// errPeerUnavailableCode is the wire sentinel carried in Response.ErrCode
// for a peer-unavailable outcome the server itself detected (as opposed
// to a transport-level failure the client detects locally).
const errPeerUnavailableCode = "peer_unavailable"

// Envelope is a single method call: Method names the ILeader/IFollower
// operation (e.g. "AddPeasant", "ExecuteCommandline") and Payload is
// its JSON-encoded argument struct.
type Envelope struct {
	Method  string          `json:"method"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response carries either a JSON-encoded result or an error code/message.
type Response struct {
	Result  json.RawMessage `json:"result,omitempty"`
	ErrCode string          `json:"err_code,omitempty"`
	ErrMsg  string          `json:"err_msg,omitempty"`
}

func (r Response) err() error {
	if r.ErrCode == "" {
		return nil
	}
	if r.ErrCode == errPeerUnavailableCode {
		return ErrPeerUnavailable
	}
	return errors.New(r.ErrMsg)
}

func successResponse(v any) Response {
	raw, err := json.Marshal(v)
	if err != nil {
		return Response{ErrCode: "encode_error", ErrMsg: err.Error()}
	}
	return Response{Result: raw}
}

func errorResponse(err error) Response {
	if errors.Is(err, ErrPeerUnavailable) {
		return Response{ErrCode: errPeerUnavailableCode, ErrMsg: err.Error()}
	}
	return Response{ErrCode: "call_error", ErrMsg: err.Error()}
}

func encodeEnvelope(e Envelope) ([]byte, error) { return json.Marshal(e) }

func decodeEnvelope(raw []byte) (Envelope, error) {
	var e Envelope
	err := json.Unmarshal(raw, &e)
	return e, err
}

func encodeResponse(r Response) ([]byte, error) { return json.Marshal(r) }

func decodeResponse(raw []byte) (Response, error) {
	var r Response
	err := json.Unmarshal(raw, &r)
	return r, err
}

func marshalPayload(v any) (json.RawMessage, error) {
	raw, err := json.Marshal(v)
	return json.RawMessage(raw), err
}

func unmarshalPayload[T any](raw json.RawMessage) (T, error) {
	var v T
	err := json.Unmarshal(raw, &v)
	return v, err
}
