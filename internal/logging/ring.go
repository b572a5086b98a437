package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
)

const ringCapacity = 500

// Record is one captured log entry, retained in memory for the logs screen.
type Record struct {
	Time    time.Time
	Level   clog.Level
	Message string
}

// Display renders the record the way the logs screen lists it.
func (r Record) Display() string {
	return fmt.Sprintf("%s %-5s %s", r.Time.Format("15:04:05"), strings.ToUpper(r.Level.String()), r.Message)
}

var ring = struct {
	mu      sync.Mutex
	records []Record
	seq     uint64
}{}

func record(level clog.Level, msg string, args []any) {
	text := msg
	if len(args) > 0 {
		pairs := make([]string, 0, len(args)/2)
		for i := 0; i+1 < len(args); i += 2 {
			pairs = append(pairs, fmt.Sprintf("%v=%v", args[i], args[i+1]))
		}
		if len(pairs) > 0 {
			text = msg + " " + strings.Join(pairs, " ")
		}
	}
	ring.mu.Lock()
	defer ring.mu.Unlock()
	ring.records = append(ring.records, Record{Time: time.Now(), Level: level, Message: text})
	if len(ring.records) > ringCapacity {
		ring.records = ring.records[len(ring.records)-ringCapacity:]
	}
	ring.seq++
}

// Records returns a copy of the retained records, oldest first.
func Records() []Record {
	ring.mu.Lock()
	defer ring.mu.Unlock()
	out := make([]Record, len(ring.records))
	copy(out, ring.records)
	return out
}

// Seq increases whenever a record is appended or the ring is cleared, letting
// callers detect changes without diffing.
func Seq() uint64 {
	ring.mu.Lock()
	defer ring.mu.Unlock()
	return ring.seq
}

// ClearRecords empties the ring.
func ClearRecords() {
	ring.mu.Lock()
	defer ring.mu.Unlock()
	ring.records = nil
	ring.seq++
}
