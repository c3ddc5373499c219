package await

// BlockOn spawns a task to drive f and blocks the calling goroutine on its
// result.
//
// Calling BlockOn is similar to spawning a goroutine and immediately
// waiting for it, except no new goroutine is created: the calling goroutine
// itself polls f, parking between polls until a wakeup arrives. BlockOn
// commits the goroutine entirely; no other work proceeds on it until f
// completes. There is no timeout and no cancellation. If f never completes
// and never wakes its [Waker], BlockOn hangs, just like a blocking read
// with no deadline.
//
// If a poll of f panics, the panic is captured, task-local finalizers still
// run, the completion trace event is still emitted, and then BlockOn
// panics in the caller with an error value carrying the original panic
// payload; when that payload is an error, [errors.Is] and [errors.As] see
// it through Unwrap.
//
// Code running inside f can discover its own identity via [Context.Tag] or
// [Current], and a nested BlockOn reports the enclosing task as its parent.
func BlockOn[T any](f Future[T]) T {
	parent, _ := Current()
	tag := newTag(parent.ID())

	emit("block_on", tag.ParentID(), tag.ID())

	// A place on the stack where the outcome is stored. Written exactly
	// once, read exactly once after the poll loop reports completion.
	var out T
	var pc paniccatcher

	// Wrap f so that a panicking poll completes the task instead of
	// unwinding through the poll loop, and so that the final value lands
	// in the outcome slot.
	inner := FutureFunc[struct{}](func(cx *Context) (_ struct{}, done bool) {
		if !pc.TryCatch(func() {
			var v T
			if v, done = f.Poll(cx); done {
				out = v
			}
		}) {
			done = true
		}
		return
	})

	// Release task-local storage once the task completes, then emit the
	// completion event, in that order.
	wrapped := addFinalizer(Future[struct{}](inner))

	final := FutureFunc[struct{}](func(cx *Context) (struct{}, bool) {
		v, done := wrapped.Poll(cx)
		if done {
			emit("block_on completed", tag.ParentID(), tag.ID())
		}
		return v, done
	})

	withTag(tag, func() { block(Future[struct{}](final), tag) })

	pc.Rethrow()
	return out
}

// block drives f to completion on the calling goroutine, parking it
// between polls.
//
// A fresh parker is used per call, so a [Waker] retained beyond its
// blocking call can never unpark an unrelated, later call on the same
// goroutine.
func block[T any](f Future[T], tag Tag) T {
	p := newParker()
	cx := &Context{waker: threadWaker{p}, tag: tag}

	for {
		if v, done := f.Poll(cx); done {
			return v
		}
		p.park()
	}
}
