// Package mpd implements the client side of the MPD line protocol: command
// serialization, response decoding, and a single-session client.
package mpd

import (
	"bytes"
	"strings"
)

// Protocol framing words.
const (
	respOK     = "OK"
	respListOK = "list_OK"
	ackPrefix  = "ACK "

	batchBegin = "command_list_ok_begin"
	batchEnd   = "command_list_end"

	handshakePrefix = "OK MPD "
)

// Command is one outbound request: a verb plus ordered string arguments.
// Commands are immutable once constructed.
type Command struct {
	verb string
	args []string
}

// Cmd builds a Command from a verb and its arguments.
func Cmd(verb string, args ...string) Command {
	return Command{verb: verb, args: append([]string(nil), args...)}
}

// Verb returns the command verb.
func (c Command) Verb() string { return c.verb }

// Args returns a copy of the argument list.
func (c Command) Args() []string { return append([]string(nil), c.args...) }

// Filter is an exact-match (tag, value) pair. Multiple filters on one
// command are ANDed by the server.
type Filter struct {
	Tag   string
	Value string
}

// withFilters appends filter pairs as trailing tag/value arguments,
// preserving order.
func (c Command) withFilters(filters []Filter) Command {
	args := append([]string(nil), c.args...)
	for _, f := range filters {
		args = append(args, f.Tag, f.Value)
	}
	return Command{verb: c.verb, args: args}
}

// pack renders the command as a wire line, quoting arguments that need it.
func (c Command) pack() []byte {
	var buf bytes.Buffer
	buf.WriteString(c.verb)
	for _, a := range c.args {
		buf.WriteByte(' ')
		buf.WriteString(quoteArgument(a))
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

// String renders the command for logs and status messages, not the wire.
func (c Command) String() string {
	if len(c.args) == 0 {
		return c.verb
	}
	return c.verb + " " + strings.Join(c.args, " ")
}

// quoteArgument double-quotes an argument when it contains whitespace or
// quoting metacharacters, escaping backslashes and double quotes.
func quoteArgument(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t'\"\\") {
		return arg
	}
	var buf strings.Builder
	buf.WriteByte('"')
	for _, r := range arg {
		if r == '"' || r == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
	}
	buf.WriteByte('"')
	return buf.String()
}

// packBatch frames an ordered command sequence as one atomic list.
func packBatch(cmds []Command) []byte {
	var buf bytes.Buffer
	buf.WriteString(batchBegin)
	buf.WriteByte('\n')
	for _, c := range cmds {
		buf.Write(c.pack())
	}
	buf.WriteString(batchEnd)
	buf.WriteByte('\n')
	return buf.Bytes()
}
