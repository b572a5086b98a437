package mpd

import (
	"strconv"
	"strings"
)

// Song is a typed view over one decoded song record.
type Song struct {
	File     string
	Title    string
	Artist   string
	Album    string
	Track    string
	Duration float64
	Pos      int
	ID       int
}

// songFromRecord maps a decoded record onto a Song. Unknown fields are
// ignored; missing numeric fields stay zero.
func songFromRecord(fields []Field) Song {
	var s Song
	s.Pos = -1
	s.ID = -1
	for _, f := range fields {
		switch f.Key {
		case "file":
			s.File = f.Value
		case "Title":
			s.Title = f.Value
		case "Artist":
			s.Artist = f.Value
		case "Album":
			s.Album = f.Value
		case "Track":
			s.Track = f.Value
		case "duration":
			s.Duration, _ = strconv.ParseFloat(f.Value, 64)
		case "Time":
			if s.Duration == 0 {
				if secs, err := strconv.Atoi(f.Value); err == nil {
					s.Duration = float64(secs)
				}
			}
		case "Pos":
			if n, err := strconv.Atoi(f.Value); err == nil {
				s.Pos = n
			}
		case "Id":
			if n, err := strconv.Atoi(f.Value); err == nil {
				s.ID = n
			}
		}
	}
	return s
}

// DisplayName returns the best human label for the song: the title when
// tagged, otherwise the final path segment of the file.
func (s Song) DisplayName() string {
	if s.Title != "" {
		return s.Title
	}
	if idx := strings.LastIndex(s.File, "/"); idx >= 0 {
		return s.File[idx+1:]
	}
	return s.File
}

// PlayState enumerates the daemon's playback states.
type PlayState int

const (
	StateStop PlayState = iota
	StatePlay
	StatePause
)

func (s PlayState) String() string {
	switch s {
	case StatePlay:
		return "play"
	case StatePause:
		return "pause"
	default:
		return "stop"
	}
}

// Status is the typed view of the daemon's `status` reply.
type Status struct {
	Volume         int
	Repeat         bool
	Random         bool
	Single         bool
	Consume        bool
	State          PlayState
	SongPos        int
	Elapsed        float64
	Duration       float64
	PlaylistLength int
}

func statusFromResponse(r Response) Status {
	st := Status{Volume: -1, SongPos: -1}
	for _, f := range r.Fields {
		switch f.Key {
		case "volume":
			if n, err := strconv.Atoi(f.Value); err == nil {
				st.Volume = n
			}
		case "repeat":
			st.Repeat = f.Value == "1"
		case "random":
			st.Random = f.Value == "1"
		case "single":
			st.Single = f.Value == "1"
		case "consume":
			st.Consume = f.Value == "1"
		case "state":
			switch f.Value {
			case "play":
				st.State = StatePlay
			case "pause":
				st.State = StatePause
			default:
				st.State = StateStop
			}
		case "song":
			if n, err := strconv.Atoi(f.Value); err == nil {
				st.SongPos = n
			}
		case "elapsed":
			st.Elapsed, _ = strconv.ParseFloat(f.Value, 64)
		case "duration":
			st.Duration, _ = strconv.ParseFloat(f.Value, 64)
		case "playlistlength":
			if n, err := strconv.Atoi(f.Value); err == nil {
				st.PlaylistLength = n
			}
		}
	}
	return st
}
