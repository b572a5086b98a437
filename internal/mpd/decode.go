package mpd

import (
	"strconv"
	"strings"
)

// Field is one decoded `name: value` line.
type Field struct {
	Key   string
	Value string
}

// Response is the decoded body of a single command's reply: the field lines
// in arrival order, without the terminating OK.
type Response struct {
	Fields []Field
}

// Get returns the first value for the given field name.
func (r Response) Get(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns every value carried by the given field name, in order.
func (r Response) Values(key string) []string {
	var out []string
	for _, f := range r.Fields {
		if f.Key == key {
			out = append(out, f.Value)
		}
	}
	return out
}

// Records splits the fields into implicitly bounded records: a record
// boundary is any line whose field name repeats one already seen in the
// current record.
func (r Response) Records() [][]Field {
	var records [][]Field
	var current []Field
	seen := map[string]bool{}
	for _, f := range r.Fields {
		if seen[f.Key] {
			records = append(records, current)
			current = nil
			seen = map[string]bool{}
		}
		current = append(current, f)
		seen[f.Key] = true
	}
	if len(current) > 0 {
		records = append(records, current)
	}
	return records
}

// parseField decodes one `name: value` line. Lines without the separator
// are decode errors, never dropped.
func parseField(line string) (Field, error) {
	idx := strings.Index(line, ": ")
	if idx <= 0 {
		// `name:` with an empty value is still well formed.
		if strings.HasSuffix(line, ":") && len(line) > 1 {
			return Field{Key: line[:len(line)-1]}, nil
		}
		return Field{}, &DecodeError{Line: line}
	}
	return Field{Key: line[:idx], Value: line[idx+2:]}, nil
}

// parseAck decodes an `ACK [<code>@<index>] {<verb>} <message>` line.
// Returns nil when the line is not an ACK at all.
func parseAck(line string) *Ack {
	if !strings.HasPrefix(line, ackPrefix) {
		return nil
	}
	rest := strings.TrimPrefix(line, ackPrefix)
	ack := &Ack{Message: rest}
	if !strings.HasPrefix(rest, "[") {
		return ack
	}
	bracket := strings.Index(rest, "]")
	if bracket < 0 {
		return ack
	}
	codePart := rest[1:bracket]
	rest = strings.TrimSpace(rest[bracket+1:])
	if at := strings.Index(codePart, "@"); at >= 0 {
		if code, err := strconv.Atoi(codePart[:at]); err == nil {
			ack.Code = code
		}
		if idx, err := strconv.Atoi(codePart[at+1:]); err == nil {
			ack.CommandIndex = idx
		}
	}
	if strings.HasPrefix(rest, "{") {
		if end := strings.Index(rest, "}"); end >= 0 {
			ack.Command = rest[1:end]
			rest = strings.TrimSpace(rest[end+1:])
		}
	}
	ack.Message = rest
	return ack
}
