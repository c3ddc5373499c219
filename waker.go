package await

// A Waker is a capability used to notify that a previously not-yet-ready
// [Future] may now make progress.
//
// Wake is total: it is safe to call from any goroutine, multiple times, and
// after the awaited event has already fired. Multiple wakes may coalesce
// into a single wakeup; this is harmless because a woken task always
// re-polls its [Future].
type Waker interface {
	Wake()
}

// The WakerFunc type is an adapter to allow the use of ordinary functions
// as Wakers.
type WakerFunc func()

// Wake implements [Waker] by calling f.
func (f WakerFunc) Wake() {
	f()
}

// NopWaker is a [Waker] that does nothing.
// It is useful as an initial value in custom [Future] implementations.
var NopWaker Waker = nopWaker{}

type nopWaker struct{}

func (nopWaker) Wake() {}

// A threadWaker unblocks the goroutine parked in a blocking call.
//
// Copies share the underlying parker; waking unparks the referenced
// goroutine. Since parkers are garbage collected, there is no ownership
// count to maintain and a stale wake after the blocking call has returned
// is a no-op.
type threadWaker struct {
	p *parker
}

func (w threadWaker) Wake() {
	w.p.unpark()
}
