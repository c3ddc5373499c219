package await

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

// A paniccatcher runs poll steps one at a time and converts an unrecovered
// panic into a value, so that a fault unwinding out of user code cannot
// corrupt the poll loop. The captured panic is re-thrown at the outer
// boundary of the blocking call, after finalization has run.
type paniccatcher struct {
	item *panicitem
}

// TryCatch calls f and reports whether it returned normally.
// If f panics, the panic value and the stack are captured and false is
// returned.
func (pc *paniccatcher) TryCatch(f func()) (ok bool) {
	defer func() {
		if !ok {
			v := recover()
			if v == nil {
				panic("await: await does not support runtime.Goexit()")
			}
			pc.item = &panicitem{v, debug.Stack()}
		}
	}()
	f()
	return true
}

// Rethrow panics with the captured panic, if any.
func (pc *paniccatcher) Rethrow() {
	if pc.item != nil {
		panic(&panicvalue{item: *pc.item})
	}
}

type panicitem struct {
	value any
	stack []byte
}

type panicvalue struct {
	item panicitem
	errs atomic.Pointer[[]error]
}

func (pv *panicvalue) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "panic: %v", pv.item.value)
	if pv.item.stack != nil {
		b.WriteString("\n\n")
		b.Write(pv.item.stack)
	}
	return b.String()
}

func (pv *panicvalue) Unwrap() []error {
	if p := pv.errs.Load(); p != nil {
		return *p
	}
	var errs []error
	if err, ok := pv.item.value.(error); ok {
		errs = append(errs, err)
	}
	pv.errs.Store(&errs)
	return errs
}
