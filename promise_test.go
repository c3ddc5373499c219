package await_test

import (
	"testing"

	"github.com/b97tsk/await"
)

func TestPromiseCompleteBeforeBlock(t *testing.T) {
	var p await.Promise[int]

	p.Complete(7)

	if v := await.BlockOn[int](&p); v != 7 {
		t.Errorf("BlockOn returned %v, want 7", v)
	}
}

func TestPromiseWakesMostRecentWaker(t *testing.T) {
	var p await.Promise[int]

	var wakes [2]int

	cx1 := await.NewContext(await.WakerFunc(func() { wakes[0]++ }), await.Tag{})
	cx2 := await.NewContext(await.WakerFunc(func() { wakes[1]++ }), await.Tag{})

	if _, done := p.Poll(cx1); done {
		t.Fatal("Poll reported ready before completion")
	}
	if _, done := p.Poll(cx2); done {
		t.Fatal("Poll reported ready before completion")
	}

	p.Complete(1)

	if wakes[0] != 0 {
		t.Error("stale waker received a wakeup")
	}
	if wakes[1] != 1 {
		t.Errorf("most recent waker woken %d times, want 1", wakes[1])
	}

	if v, done := p.Poll(cx2); !done || v != 1 {
		t.Errorf("Poll after completion = (%v, %v), want (1, true)", v, done)
	}
}

func TestPromiseCompleteTwice(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("completing a promise twice did not panic")
		}
	}()

	var p await.Promise[int]

	p.Complete(1)
	p.Complete(2)
}

func TestNopWaker(t *testing.T) {
	var p await.Promise[int]

	cx := await.NewContext(await.NopWaker, await.Tag{})

	if _, done := p.Poll(cx); done {
		t.Fatal("Poll reported ready before completion")
	}

	p.Complete(3) // Wakes NopWaker; must not panic or block.

	if v, done := p.Poll(cx); !done || v != 3 {
		t.Errorf("Poll after completion = (%v, %v), want (3, true)", v, done)
	}
}
