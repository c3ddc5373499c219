// Package await implements a blocking bridge for poll-driven futures.
//
// A [Future] is a suspendable computation that makes progress only when
// polled. [BlockOn] lets ordinary synchronous code run a Future to
// completion on the calling goroutine and retrieve its value, as if it had
// called a synchronous function. No scheduler runs outside the call: the
// calling goroutine itself polls the Future, parking between polls and
// waking exactly when progress becomes possible.
//
// # Futures and Wakers
//
// Polling a Future either produces its final value or reports "not yet"
// after the Future has arranged for the provided [Waker] to be woken. The
// Waker is the only cross-goroutine synchronization primitive this package
// defines: it is cheap to copy, safe to wake from any goroutine, and waking
// is idempotent. A wake that races with the goroutine about to park is
// never lost, because at most one pending wakeup token accumulates and the
// following park consumes it. Multiple wakes before a single park coalesce;
// the loop re-polls after waking, so spurious wakeups only cost an extra
// poll.
//
// To get values into the poll world from plain goroutines, use a
// [Promise]: its Complete method wakes the task blocking on it.
//
// # Blocking Semantics
//
// BlockOn commits the calling goroutine entirely until the Future
// completes. There is no timeout, no cancellation and no retry. A Future
// that never completes and never wakes its Waker hangs the call, just like
// a blocking read with no deadline. The Future itself may schedule work on
// other goroutines; readiness comes back through the Waker.
//
// # Task Identity and Tracing
//
// Each blocking call mints a [Tag]: an identity carrying a reference to the
// identity of whichever task was current on the calling goroutine, so that
// nested blocking calls correlate in traces. The Tag is installed as
// current for the duration of the call and restored afterward on every exit
// path. Code inside a Future discovers its own identity via [Context.Tag]
// or [Current]. One trace event is emitted at task start and one at task
// completion; see [SetLogger].
//
// # Task-Local Storage
//
// A [Local] gives each task its own value. Values are released, and their
// finalizers run, exactly once when the task completes, whether it
// completed normally or panicked.
//
// # Panic Propagation
//
// A panic unwinding out of a poll is captured as a value rather than
// allowed to corrupt the poll loop. After task-local finalization and the
// completion trace event, BlockOn re-panics in the caller with an error
// value that preserves the original panic payload and its stack, so
// failure reporting sees the fault as if it had occurred synchronously in
// the caller. Panics are never silently dropped.
package await
