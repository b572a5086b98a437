// Package testutil provides a scriptable in-process music daemon for
// exercising the protocol client and the screens against real TCP I/O.
package testutil

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"
)

const serverVersion = "0.23.5"

type reply struct {
	lines []string
	ack   string
}

// MPDServer accepts connections on a loopback port, answers the protocol
// handshake, and serves scripted replies keyed by the exact request line.
type MPDServer struct {
	listener net.Listener

	mu       sync.Mutex
	replies  map[string]reply
	requests []string
}

// StartMPDServer launches a fake daemon and registers its shutdown with
// the test cleanup.
func StartMPDServer(t *testing.T) *MPDServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := &MPDServer{
		listener: ln,
		replies:  make(map[string]reply),
	}
	go s.serve()
	t.Cleanup(func() { ln.Close() })
	return s
}

// Addr returns the address to dial.
func (s *MPDServer) Addr() string { return s.listener.Addr().String() }

// Handle scripts a successful reply: the given body lines followed by the
// OK terminator.
func (s *MPDServer) Handle(request string, lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[request] = reply{lines: lines}
}

// HandleAck scripts a protocol failure for the request. The index is
// substituted when the command runs inside a batch.
func (s *MPDServer) HandleAck(request string, code int, verb, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[request] = reply{ack: fmt.Sprintf("ACK [%d@%%d] {%s} %s", code, verb, message)}
}

// Requests returns every raw line received so far, batch wrappers
// included.
func (s *MPDServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *MPDServer) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handleConn(conn)
	}
}

func (s *MPDServer) handleConn(conn net.Conn) {
	defer conn.Close()
	fmt.Fprintf(conn, "OK MPD %s\n", serverVersion)
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		s.record(line)
		switch {
		case line == "close":
			return
		case line == "command_list_ok_begin":
			var batch []string
			for scanner.Scan() {
				inner := scanner.Text()
				s.record(inner)
				if inner == "command_list_end" {
					break
				}
				batch = append(batch, inner)
			}
			s.answerBatch(conn, batch)
		default:
			s.answerSingle(conn, line)
		}
	}
}

func (s *MPDServer) answerSingle(conn net.Conn, line string) {
	r, ok := s.lookup(line)
	if !ok {
		fmt.Fprintf(conn, "ACK [5@0] {} unknown command %q\n", firstWord(line))
		return
	}
	if r.ack != "" {
		fmt.Fprintf(conn, r.ack+"\n", 0)
		return
	}
	for _, l := range r.lines {
		fmt.Fprintln(conn, l)
	}
	fmt.Fprintln(conn, "OK")
}

func (s *MPDServer) answerBatch(conn net.Conn, batch []string) {
	for i, line := range batch {
		r, ok := s.lookup(line)
		if !ok {
			fmt.Fprintf(conn, "ACK [5@%d] {} unknown command %q\n", i, firstWord(line))
			return
		}
		if r.ack != "" {
			fmt.Fprintf(conn, r.ack+"\n", i)
			return
		}
		for _, l := range r.lines {
			fmt.Fprintln(conn, l)
		}
		fmt.Fprintln(conn, "list_OK")
	}
	fmt.Fprintln(conn, "OK")
}

func (s *MPDServer) lookup(line string) (reply, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.replies[line]
	return r, ok
}

func (s *MPDServer) record(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, line)
}

func firstWord(line string) string {
	if idx := strings.IndexByte(line, ' '); idx >= 0 {
		return line[:idx]
	}
	return line
}
