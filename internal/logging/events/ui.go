package events

import "github.com/arpent/strum/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) ScreenEnter(screen string) {
	logging.Trace("screen.enter", map[string]interface{}{"screen": screen})
}

func (UITracer) Cursor(screen string, cursor int) {
	logging.Trace("screen.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

func (UITracer) Preview(screen string, seq uint64, applied bool) {
	logging.Trace("screen.preview", map[string]interface{}{"screen": screen, "seq": seq, "applied": applied})
}

func (UITracer) Descend(screen, entry string, depth int) {
	logging.Trace("screen.descend", map[string]interface{}{
		"screen": screen,
		"entry":  entry,
		"depth":  depth,
	})
}

func (UITracer) Ascend(screen string, depth int) {
	logging.Trace("screen.ascend", map[string]interface{}{"screen": screen, "depth": depth})
}

func (UITracer) Action(screen, action string) {
	logging.Trace("screen.action", map[string]interface{}{"screen": screen, "action": action})
}

func (FilterTracer) Edit(screen, filter string) {
	logging.Trace("filter.edit", map[string]interface{}{"screen": screen, "filter": filter})
}

func (FilterTracer) Commit(screen, filter string) {
	logging.Trace("filter.commit", map[string]interface{}{"screen": screen, "filter": filter})
}

func (FilterTracer) Cleared(screen string) {
	logging.Trace("filter.clear", map[string]interface{}{"screen": screen})
}

func (FilterTracer) Jump(screen string, forward bool, cursor int) {
	logging.Trace("filter.jump", map[string]interface{}{
		"screen":  screen,
		"forward": forward,
		"cursor":  cursor,
	})
}
