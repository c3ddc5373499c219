package await

// A parker suspends and resumes a single goroutine without busy-waiting.
//
// At most one unpark token accumulates. An unpark that happens before the
// corresponding park makes that park return immediately, consuming the
// token; further unparks coalesce.
type parker struct {
	token chan struct{}
}

func newParker() *parker {
	return &parker{token: make(chan struct{}, 1)}
}

// park blocks the calling goroutine until a token is available, then
// consumes it.
func (p *parker) park() {
	<-p.token
}

// unpark makes the current or next park return. unpark never blocks.
func (p *parker) unpark() {
	select {
	case p.token <- struct{}{}:
	default:
	}
}
