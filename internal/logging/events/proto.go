package events

import "github.com/arpent/strum/internal/logging"

type ProtoTracer struct{}

var Proto = ProtoTracer{}

func (ProtoTracer) Connect(address, version string) {
	logging.Trace("proto.connect", map[string]interface{}{"address": address, "version": version})
}

func (ProtoTracer) Send(verb string, args int) {
	logging.Trace("proto.send", map[string]interface{}{"verb": verb, "args": args})
}

func (ProtoTracer) Batch(size int) {
	logging.Trace("proto.batch", map[string]interface{}{"size": size})
}

func (ProtoTracer) Ack(code, index int, verb, message string) {
	logging.Trace("proto.ack", map[string]interface{}{
		"code":    code,
		"index":   index,
		"verb":    verb,
		"message": message,
	})
}

func (ProtoTracer) Disconnect(reason string) {
	logging.Trace("proto.disconnect", map[string]interface{}{"reason": reason})
}
