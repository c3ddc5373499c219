package await

import (
	"sync"

	"github.com/petermattis/goid"
)

// workers associates each goroutine with the task it is currently blocking
// on, so that nested blocking calls can report it as their parent and code
// running inside a task can discover its own identity.
var workers struct {
	sync.Mutex
	m map[int64]Tag
}

// Current returns the [Tag] of the task currently associated with the
// calling goroutine. The second return value is false when the goroutine is
// not driving any task.
func Current() (Tag, bool) {
	gid := goid.Get()
	workers.Lock()
	tag, ok := workers.m[gid]
	workers.Unlock()
	return tag, ok
}

// withTag installs tag as current for the calling goroutine for the
// duration of f, and restores the prior association unconditionally, even
// if f panics.
func withTag(tag Tag, f func()) {
	gid := goid.Get()

	workers.Lock()
	if workers.m == nil {
		workers.m = make(map[int64]Tag)
	}
	prev, ok := workers.m[gid]
	workers.m[gid] = tag
	workers.Unlock()

	defer func() {
		workers.Lock()
		if ok {
			workers.m[gid] = prev
		} else {
			delete(workers.m, gid)
		}
		workers.Unlock()
	}()

	f()
}
