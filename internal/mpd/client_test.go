package mpd

import (
	"bufio"
	"io"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer speaks just enough of the protocol for client tests: it sends
// the handshake, then answers each request (a single command or a whole
// command list) with the next canned reply.
type fakeServer struct {
	t  *testing.T
	ln net.Listener

	mu       sync.Mutex
	replies  []string
	requests []string
}

func newFakeServer(t *testing.T, replies ...string) *fakeServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := &fakeServer{t: t, ln: ln, replies: replies}
	go s.serve()
	t.Cleanup(func() { ln.Close() })
	return s
}

func (s *fakeServer) addr() string { return s.ln.Addr().String() }

func (s *fakeServer) sentRequests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *fakeServer) nextReply() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.replies) == 0 {
		return "", false
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, true
}

func (s *fakeServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *fakeServer) handle(conn net.Conn) {
	defer conn.Close()
	io.WriteString(conn, "OK MPD 0.23.5\n")
	scanner := bufio.NewScanner(conn)
	inList := false
	for scanner.Scan() {
		line := scanner.Text()
		s.mu.Lock()
		s.requests = append(s.requests, line)
		s.mu.Unlock()
		if line == batchBegin {
			inList = true
			continue
		}
		if inList && line != batchEnd {
			continue
		}
		inList = false
		reply, ok := s.nextReply()
		if !ok {
			return
		}
		io.WriteString(conn, reply)
	}
}

func TestConnectRecordsVersion(t *testing.T) {
	srv := newFakeServer(t)
	c, err := Connect(srv.addr())
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, "0.23.5", c.Version())
	assert.True(t, c.Connected())
}

func TestListTagsDecodesValues(t *testing.T) {
	srv := newFakeServer(t, "Album: A\nAlbum: B\nOK\n")
	c, err := Connect(srv.addr())
	require.NoError(t, err)
	defer c.Close()

	albums, err := c.ListTags("album")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, albums)
	assert.Equal(t, []string{"list album"}, srv.sentRequests())
}

func TestFindSplitsSongRecords(t *testing.T) {
	srv := newFakeServer(t,
		"file: a/01.flac\nTitle: One\nAlbum: A\nfile: a/02.flac\nTitle: Two\nAlbum: A\nOK\n")
	c, err := Connect(srv.addr())
	require.NoError(t, err)
	defer c.Close()

	songs, err := c.Find(Filter{"album", "A"})
	require.NoError(t, err)
	require.Len(t, songs, 2)
	assert.Equal(t, "One", songs[0].Title)
	assert.Equal(t, "a/02.flac", songs[1].File)
	assert.Equal(t, []string{`find album A`}, srv.sentRequests())
}

func TestSendReturnsAckAsValueAndKeepsConnection(t *testing.T) {
	srv := newFakeServer(t,
		"ACK [50@0] {play} No such song\n",
		"OK\n")
	c, err := Connect(srv.addr())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Send(Cmd("play", "99"))
	var ack *Ack
	require.ErrorAs(t, err, &ack)
	assert.Equal(t, 50, ack.Code)
	assert.Equal(t, "play", ack.Command)
	assert.Equal(t, "No such song", ack.Message)

	// The connection survives a protocol error.
	require.True(t, c.Connected())
	_, err = c.Send(Cmd("stop"))
	require.NoError(t, err)
}

func TestDecodeErrorDiscardsPartialResponse(t *testing.T) {
	srv := newFakeServer(t,
		"Album: A\nthis is not a field\nAlbum: B\nOK\n",
		"Album: C\nOK\n")
	c, err := Connect(srv.addr())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Send(Cmd("list", "album"))
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "this is not a field", decodeErr.Line)

	// The stream was drained to its terminator, so the session stays usable.
	albums, err := c.ListTags("album")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, albums)
}

func TestSendBatchPairsResponsesInOrder(t *testing.T) {
	srv := newFakeServer(t, "list_OK\nfile: x.flac\nTitle: X\nlist_OK\nlist_OK\nOK\n")
	c, err := Connect(srv.addr())
	require.NoError(t, err)
	defer c.Close()

	responses, err := c.SendBatch([]Command{
		Cmd("clear"),
		Cmd("find").withFilters([]Filter{{"album", "A"}}),
		Cmd("play", "0"),
	})
	require.NoError(t, err)
	require.Len(t, responses, 3)
	assert.Empty(t, responses[0].Fields)
	title, ok := responses[1].Get("Title")
	assert.True(t, ok)
	assert.Equal(t, "X", title)
	assert.Equal(t, []string{
		"command_list_ok_begin",
		"clear",
		"find album A",
		"play 0",
		"command_list_end",
	}, srv.sentRequests())
}

func TestSendBatchFailureReportsIndexAndTruncates(t *testing.T) {
	srv := newFakeServer(t, "list_OK\nACK [2@1] {add} No such directory\n")
	c, err := Connect(srv.addr())
	require.NoError(t, err)
	defer c.Close()

	responses, err := c.SendBatch([]Command{
		Cmd("clear"),
		Cmd("add", "missing"),
		Cmd("play", "0"),
	})
	var ack *Ack
	require.ErrorAs(t, err, &ack)
	assert.Equal(t, 1, ack.CommandIndex)
	assert.Equal(t, "add", ack.Command)
	// Only the member before the failure is presented as succeeded.
	assert.Len(t, responses, 1)
}

func TestTransportFailureInvalidatesAndReconnectRestores(t *testing.T) {
	srv := newFakeServer(t) // no replies: first request closes the conn
	c, err := Connect(srv.addr())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Send(Cmd("status"))
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.False(t, c.Connected())

	// Further sends fail fast until an explicit reconnect.
	_, err = c.Send(Cmd("status"))
	require.ErrorIs(t, err, ErrNotConnected)

	require.NoError(t, c.Reconnect())
	assert.True(t, c.Connected())
}

func TestCurrentSongEmptyQueue(t *testing.T) {
	srv := newFakeServer(t, "OK\n")
	c, err := Connect(srv.addr())
	require.NoError(t, err)
	defer c.Close()

	_, ok, err := c.CurrentSong()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLsInfoMixedEntries(t *testing.T) {
	srv := newFakeServer(t,
		"directory: albums\nplaylist: favourites\nfile: intro.ogg\nTitle: Intro\nOK\n")
	c, err := Connect(srv.addr())
	require.NoError(t, err)
	defer c.Close()

	entries, err := c.LsInfo("")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].IsDir())
	assert.Equal(t, "favourites", entries[1].Playlist)
	assert.Equal(t, "Intro", entries[2].Song.Title)
}
