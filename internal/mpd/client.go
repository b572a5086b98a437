package mpd

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/arpent/strum/internal/logging/events"
)

const dialTimeout = 5 * time.Second

// Client owns one TCP session to the daemon. Requests are strictly
// serialized: the mutex guarantees one outstanding command per connection,
// so the status poller and user-triggered commands interleave but never
// overlap.
type Client struct {
	address string

	mu        sync.Mutex
	conn      net.Conn
	br        *bufio.Reader
	version   string
	connected bool
}

// Connect dials the daemon and consumes the `OK MPD <version>` handshake.
func Connect(address string) (*Client, error) {
	c := &Client{address: address}
	if err := c.dial(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) dial() error {
	conn, err := net.DialTimeout("tcp", c.address, dialTimeout)
	if err != nil {
		return &TransportError{Op: "connect", Err: err}
	}
	br := bufio.NewReader(conn)
	line, err := br.ReadString('\n')
	if err != nil {
		conn.Close()
		return &TransportError{Op: "handshake", Err: err}
	}
	line = strings.TrimRight(line, "\n")
	if !strings.HasPrefix(line, handshakePrefix) {
		conn.Close()
		return &DecodeError{Line: line}
	}
	c.conn = conn
	c.br = br
	c.version = strings.TrimPrefix(line, handshakePrefix)
	c.connected = true
	events.Proto.Connect(c.address, c.version)
	return nil
}

// Reconnect re-dials after a transport failure. It is a no-op on a live
// connection.
func (c *Client) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		return nil
	}
	return c.dial()
}

// Connected reports whether the session is currently usable.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Version returns the protocol version string from the handshake.
func (c *Client) Version() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Close shuts the session down.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked("close requested")
}

func (c *Client) closeLocked(reason string) error {
	if !c.connected {
		return nil
	}
	c.connected = false
	events.Proto.Disconnect(reason)
	err := c.conn.Close()
	c.conn = nil
	c.br = nil
	return err
}

// fail invalidates the connection after a transport error.
func (c *Client) fail(op string, err error) error {
	c.closeLocked(op + ": " + err.Error())
	return &TransportError{Op: op, Err: err}
}

// Send writes one command and pairs it with its decoded response. A server
// Ack is returned as the error; it does not invalidate the connection.
func (c *Client) Send(cmd Command) (Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return Response{}, ErrNotConnected
	}
	events.Proto.Send(cmd.Verb(), len(cmd.args))
	if _, err := c.conn.Write(cmd.pack()); err != nil {
		return Response{}, c.fail("write", err)
	}
	return c.readResponse()
}

// SendBatch submits the commands as one atomic list. On success it returns
// one response per command, in order. If member k fails, the first k
// responses are returned alongside the Ack identifying index k; later
// members are never presented as succeeded.
func (c *Client) SendBatch(cmds []Command) ([]Response, error) {
	if len(cmds) == 0 {
		return nil, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil, ErrNotConnected
	}
	events.Proto.Batch(len(cmds))
	if _, err := c.conn.Write(packBatch(cmds)); err != nil {
		return nil, c.fail("write", err)
	}

	var (
		responses []Response
		current   Response
		decodeErr error
	)
	for {
		line, err := c.br.ReadString('\n')
		if err != nil {
			return nil, c.fail("read", err)
		}
		line = strings.TrimRight(line, "\n")
		switch {
		case line == respListOK:
			responses = append(responses, current)
			current = Response{}
		case line == respOK:
			if decodeErr != nil {
				return nil, decodeErr
			}
			return responses, nil
		default:
			if ack := parseAck(line); ack != nil {
				events.Proto.Ack(ack.Code, ack.CommandIndex, ack.Command, ack.Message)
				return responses, ack
			}
			f, perr := parseField(line)
			if perr != nil {
				if decodeErr == nil {
					decodeErr = perr
				}
				continue
			}
			current.Fields = append(current.Fields, f)
		}
	}
}

// readResponse drains one reply. Malformed lines poison the response: the
// stream is still drained to its terminator so the session stays in sync,
// but the partial data is never returned.
func (c *Client) readResponse() (Response, error) {
	var (
		resp      Response
		decodeErr error
	)
	for {
		line, err := c.br.ReadString('\n')
		if err != nil {
			return Response{}, c.fail("read", err)
		}
		line = strings.TrimRight(line, "\n")
		if line == respOK {
			if decodeErr != nil {
				return Response{}, decodeErr
			}
			return resp, nil
		}
		if ack := parseAck(line); ack != nil {
			events.Proto.Ack(ack.Code, ack.CommandIndex, ack.Command, ack.Message)
			return Response{}, ack
		}
		f, perr := parseField(line)
		if perr != nil {
			if decodeErr == nil {
				decodeErr = perr
			}
			continue
		}
		resp.Fields = append(resp.Fields, f)
	}
}
