package mpd

import "strconv"

// Typed convenience calls. Every one of these compiles down to Send or
// SendBatch; none hold state of their own.

// ListTags returns the distinct values of a tag, optionally restricted by
// exact-match filters on other tags.
func (c *Client) ListTags(tag string, filters ...Filter) ([]string, error) {
	resp, err := c.Send(Cmd("list", tag).withFilters(filters))
	if err != nil {
		return nil, err
	}
	// The reply repeats the tag name capitalized, e.g. `Album: X`.
	if len(resp.Fields) == 0 {
		return nil, nil
	}
	return resp.Values(resp.Fields[0].Key), nil
}

// Find returns the songs matching all filters exactly.
func (c *Client) Find(filters ...Filter) ([]Song, error) {
	resp, err := c.Send(Cmd("find").withFilters(filters))
	if err != nil {
		return nil, err
	}
	return songsFromResponse(resp), nil
}

// FindAdd appends every song matching the filters to the play queue.
func (c *Client) FindAdd(filters ...Filter) error {
	_, err := c.Send(Cmd("findadd").withFilters(filters))
	return err
}

// Status fetches current playback state.
func (c *Client) Status() (Status, error) {
	resp, err := c.Send(Cmd("status"))
	if err != nil {
		return Status{}, err
	}
	return statusFromResponse(resp), nil
}

// CurrentSong returns the playing song, reporting false when the queue has
// no current song.
func (c *Client) CurrentSong() (Song, bool, error) {
	resp, err := c.Send(Cmd("currentsong"))
	if err != nil {
		return Song{}, false, err
	}
	if len(resp.Fields) == 0 {
		return Song{}, false, nil
	}
	return songFromRecord(resp.Fields), true, nil
}

// PlaylistInfo lists the play queue.
func (c *Client) PlaylistInfo() ([]Song, error) {
	resp, err := c.Send(Cmd("playlistinfo"))
	if err != nil {
		return nil, err
	}
	return songsFromResponse(resp), nil
}

// ListPlaylists returns the stored playlist names.
func (c *Client) ListPlaylists() ([]string, error) {
	resp, err := c.Send(Cmd("listplaylists"))
	if err != nil {
		return nil, err
	}
	return resp.Values("playlist"), nil
}

// PlaylistContents lists the songs of a stored playlist.
func (c *Client) PlaylistContents(name string) ([]Song, error) {
	resp, err := c.Send(Cmd("listplaylistinfo", name))
	if err != nil {
		return nil, err
	}
	return songsFromResponse(resp), nil
}

// LsEntry is one directory listing entry: either a subdirectory, a stored
// playlist, or a song.
type LsEntry struct {
	Dir      string
	Playlist string
	Song     Song
}

// IsDir reports whether the entry is a subdirectory.
func (e LsEntry) IsDir() bool { return e.Dir != "" }

// LsInfo lists the given library directory. The empty path is the root.
func (c *Client) LsInfo(path string) ([]LsEntry, error) {
	cmd := Cmd("lsinfo")
	if path != "" {
		cmd = Cmd("lsinfo", path)
	}
	resp, err := c.Send(cmd)
	if err != nil {
		return nil, err
	}
	// Listing entries open with a directory/playlist/file key, so the
	// repeated-field record rule does not apply here; split on those keys.
	var entries []LsEntry
	var song []Field
	flush := func() {
		if song != nil {
			entries = append(entries, LsEntry{Song: songFromRecord(song)})
			song = nil
		}
	}
	for _, f := range resp.Fields {
		switch f.Key {
		case "directory":
			flush()
			entries = append(entries, LsEntry{Dir: f.Value})
		case "playlist":
			flush()
			entries = append(entries, LsEntry{Playlist: f.Value})
		case "file":
			flush()
			song = []Field{f}
		default:
			if song != nil {
				song = append(song, f)
			}
		}
	}
	flush()
	return entries, nil
}

// Add appends the given URI (file or directory) to the play queue.
func (c *Client) Add(uri string) error {
	_, err := c.Send(Cmd("add", uri))
	return err
}

// Play starts playback at the given queue position; a negative position
// resumes wherever the daemon left off.
func (c *Client) Play(pos int) error {
	if pos < 0 {
		_, err := c.Send(Cmd("play"))
		return err
	}
	_, err := c.Send(Cmd("play", strconv.Itoa(pos)))
	return err
}

// TogglePause flips between play and pause.
func (c *Client) TogglePause() error {
	_, err := c.Send(Cmd("pause"))
	return err
}

// Stop halts playback.
func (c *Client) Stop() error {
	_, err := c.Send(Cmd("stop"))
	return err
}

// Next skips to the next queue entry.
func (c *Client) Next() error {
	_, err := c.Send(Cmd("next"))
	return err
}

// Previous returns to the previous queue entry.
func (c *Client) Previous() error {
	_, err := c.Send(Cmd("previous"))
	return err
}

// SetVolume sets the absolute volume, clamped to [0,100].
func (c *Client) SetVolume(volume int) error {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	_, err := c.Send(Cmd("setvol", strconv.Itoa(volume)))
	return err
}

// SeekBy seeks within the current song by a relative offset in seconds.
func (c *Client) SeekBy(seconds int) error {
	arg := strconv.Itoa(seconds)
	if seconds >= 0 {
		arg = "+" + arg
	}
	_, err := c.Send(Cmd("seekcur", arg))
	return err
}

func boolArg(on bool) string {
	if on {
		return "1"
	}
	return "0"
}

// Repeat sets repeat mode.
func (c *Client) Repeat(on bool) error {
	_, err := c.Send(Cmd("repeat", boolArg(on)))
	return err
}

// Random sets random mode.
func (c *Client) Random(on bool) error {
	_, err := c.Send(Cmd("random", boolArg(on)))
	return err
}

// Single sets single mode.
func (c *Client) Single(on bool) error {
	_, err := c.Send(Cmd("single", boolArg(on)))
	return err
}

// Consume sets consume mode.
func (c *Client) Consume(on bool) error {
	_, err := c.Send(Cmd("consume", boolArg(on)))
	return err
}

// Delete removes the queue entry at the given position.
func (c *Client) Delete(pos int) error {
	_, err := c.Send(Cmd("delete", strconv.Itoa(pos)))
	return err
}

// Clear empties the play queue.
func (c *Client) Clear() error {
	_, err := c.Send(Cmd("clear"))
	return err
}

// Save stores the current queue as a named playlist.
func (c *Client) Save(name string) error {
	_, err := c.Send(Cmd("save", name))
	return err
}

// Load appends a stored playlist to the queue.
func (c *Client) Load(name string) error {
	_, err := c.Send(Cmd("load", name))
	return err
}

func songsFromResponse(resp Response) []Song {
	records := resp.Records()
	if len(records) == 0 {
		return nil
	}
	songs := make([]Song, 0, len(records))
	for _, record := range records {
		songs = append(songs, songFromRecord(record))
	}
	return songs
}
