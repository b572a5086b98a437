package mpd

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when a command is issued on a client whose
// connection has been closed or invalidated by a transport failure.
var ErrNotConnected = errors.New("mpd: not connected")

// Ack is a well-formed server rejection of a specific command. It is
// terminal for that request but leaves the connection valid.
type Ack struct {
	Code         int
	CommandIndex int
	Command      string
	Message      string
}

func (a *Ack) Error() string {
	return fmt.Sprintf("mpd: ACK [%d@%d] {%s} %s", a.Code, a.CommandIndex, a.Command, a.Message)
}

// DecodeError reports server output that does not match the reply grammar.
// The partial response it arrived in is discarded, never surfaced as data.
type DecodeError struct {
	Line string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("mpd: malformed response line %q", e.Line)
}

// TransportError wraps a socket-level failure. It invalidates the
// connection; the caller must reconnect before further calls.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mpd: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
