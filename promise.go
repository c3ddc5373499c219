package await

import "sync"

// A Promise is a one-shot completion cell that bridges goroutines into the
// poll world.
//
// A Promise is a [Future]: blocking on it suspends the calling goroutine
// until some other goroutine calls Complete. Completing before anyone
// blocks is fine; the first poll then reports ready immediately.
//
// The zero Promise is ready for use. A Promise must not be copied after
// first use, and must not be completed twice.
type Promise[T any] struct {
	mu    sync.Mutex
	value T
	done  bool
	waker Waker
}

// Complete stores v and wakes the task awaiting p, if any.
//
// Complete is safe to call from any goroutine. Completing a Promise twice
// is a programming error and panics.
func (p *Promise[T]) Complete(v T) {
	p.mu.Lock()
	if p.done {
		p.mu.Unlock()
		panic("await(Promise): completed twice")
	}
	p.value = v
	p.done = true
	w := p.waker
	p.waker = nil
	p.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

// Poll implements [Future].
// Only the most recent [Waker] passed to Poll receives the wakeup.
func (p *Promise[T]) Poll(cx *Context) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return p.value, true
	}

	p.waker = cx.Waker()

	var zero T
	return zero, false
}
