package await

// A Context carries the capabilities a [Future] may use during a poll:
// a [Waker] for arranging wakeups, and the [Tag] identifying the task that
// is being driven.
//
// A Context is only valid for the duration of the blocking call that created
// it. A [Future] must not retain a Context across polls; it may, however,
// retain the [Waker], which is safe to use from any goroutine.
type Context struct {
	waker Waker
	tag   Tag
}

// NewContext creates a poll context from a [Waker] and a [Tag].
//
// This is only useful for those who drive Futures themselves, for example,
// in tests. [BlockOn] creates its own contexts.
func NewContext(w Waker, tag Tag) *Context {
	return &Context{waker: w, tag: tag}
}

// Waker returns the [Waker] associated with cx.
func (cx *Context) Waker() Waker {
	return cx.waker
}

// Tag returns the [Tag] of the task being driven.
func (cx *Context) Tag() Tag {
	return cx.tag
}

// A Future is a suspendable computation that eventually produces a value of
// type T.
//
// A Future makes progress only when polled. Poll either produces the final
// value, reporting true, or reports false after arranging for cx.Waker() to
// be woken once progress becomes possible. A Future that reports false
// without storing the [Waker] anywhere suspends its task forever.
//
// On multiple polls, only the most recent [Waker] needs to receive a wakeup.
//
// Poll must not block, and a Future must not be polled again once it has
// reported true. A Future is only ever polled from a single goroutine, so it
// needs not be safe for concurrent use; the [Waker] it hands out is.
type Future[T any] interface {
	Poll(cx *Context) (T, bool)
}

// The FutureFunc type is an adapter to allow the use of ordinary functions
// as Futures.
type FutureFunc[T any] func(cx *Context) (T, bool)

// Poll implements [Future] by calling f(cx).
func (f FutureFunc[T]) Poll(cx *Context) (T, bool) {
	return f(cx)
}

// Ready returns a [Future] that completes immediately with v.
func Ready[T any](v T) Future[T] {
	return FutureFunc[T](func(*Context) (T, bool) {
		return v, true
	})
}

// Pending returns a [Future] that never completes.
//
// Blocking on a Pending future hangs forever.
func Pending[T any]() Future[T] {
	return FutureFunc[T](func(*Context) (T, bool) {
		var zero T
		return zero, false
	})
}
