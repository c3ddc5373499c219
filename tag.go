package await

import "sync/atomic"

// A Tag identifies a spawned task.
//
// A Tag is minted once per blocking call and carries the identity of the
// task that was current on the calling goroutine at spawn time, for trace
// correlation. A zero parent identity means the task was spawned from
// outside any task.
type Tag struct {
	id     uint64
	parent uint64
}

var lastTaskID atomic.Uint64

func newTag(parent uint64) Tag {
	return Tag{id: lastTaskID.Add(1), parent: parent}
}

// ID returns the identity of the task. Identities are never reused within
// a process.
func (t Tag) ID() uint64 {
	return t.id
}

// ParentID returns the identity of the task that spawned this one, or zero
// if it was spawned from outside any task.
func (t Tag) ParentID() uint64 {
	return t.parent
}
