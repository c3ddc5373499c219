package await

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// tracer is the sink for task trace events. nil discards events.
var tracer atomic.Pointer[zerolog.Logger]

// SetLogger sets the logger used to emit task trace events.
//
// Two events are emitted per blocking call, at trace level: one when the
// task is spawned and one when it completes, each carrying the parent and
// child task identities. Emission is best-effort and never fails the call.
//
// By default, trace events are discarded.
func SetLogger(l zerolog.Logger) {
	tracer.Store(&l)
}

func emit(event string, parentID, childID uint64) {
	l := tracer.Load()
	if l == nil {
		return
	}
	l.Trace().
		Uint64("parent_id", parentID).
		Uint64("child_id", childID).
		Msg(event)
}
