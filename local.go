package await

import "sync"

// A Local is a key for task-local storage.
//
// Each task observes its own value for a given Local. Values are stored for
// the duration of the blocking call that drives the task and are released
// when the task completes, on every completion path.
//
// The zero Local is ready for use. A Local is usually declared at package
// level; creating Locals dynamically leaks no memory, but defeats the
// purpose.
type Local[T any] struct {
	finalize func(T)
}

// NewLocal creates a [Local] whose values are passed to finalize once their
// task completes. finalize may be nil.
//
// Finalizers run on the goroutine driving the task, after the task's
// outcome has been recorded but before the blocking call returns. They run
// exactly once per task, regardless of whether the task completed normally
// or panicked.
func NewLocal[T any](finalize func(T)) *Local[T] {
	return &Local[T]{finalize: finalize}
}

// locals stores task-local values for every live task, keyed by task
// identity. Slots for a task are released in one batch when the task
// completes.
var locals struct {
	sync.Mutex
	m map[uint64][]localslot
}

type localslot struct {
	key      any
	value    any
	finalize func()
}

// Get retrieves the calling task's value for l.
// The second return value is false when no value has been set.
func (l *Local[T]) Get(cx *Context) (T, bool) {
	id := cx.Tag().ID()

	locals.Lock()
	defer locals.Unlock()

	for _, slot := range locals.m[id] {
		if slot.key == any(l) {
			return slot.value.(T), true
		}
	}

	var zero T
	return zero, false
}

// Set stores v as the calling task's value for l, replacing any previous
// value. Replacing a value does not finalize the previous one.
func (l *Local[T]) Set(cx *Context, v T) {
	id := cx.Tag().ID()

	var finalize func()
	if l.finalize != nil {
		finalize = func() { l.finalize(v) }
	}

	locals.Lock()
	defer locals.Unlock()

	if locals.m == nil {
		locals.m = make(map[uint64][]localslot)
	}

	slots := locals.m[id]
	for i, slot := range slots {
		if slot.key == any(l) {
			slots[i].value = v
			slots[i].finalize = finalize
			return
		}
	}

	locals.m[id] = append(slots, localslot{key: any(l), value: v, finalize: finalize})
}

// finalizeTask releases every task-local value stored by the task and runs
// their finalizers, most recently set first. The slots are removed before
// any finalizer runs, so finalizers observe an empty storage and run at
// most once even if one of them panics.
func finalizeTask(id uint64) {
	locals.Lock()
	slots := locals.m[id]
	delete(locals.m, id)
	locals.Unlock()

	for i := len(slots) - 1; i >= 0; i-- {
		if f := slots[i].finalize; f != nil {
			f()
		}
	}
}

// addFinalizer wraps f into a [Future] that additionally releases all
// task-local values stored by the task once f completes.
func addFinalizer[T any](f Future[T]) Future[T] {
	return FutureFunc[T](func(cx *Context) (T, bool) {
		v, done := f.Poll(cx)
		if done {
			finalizeTask(cx.Tag().ID())
		}
		return v, done
	})
}
