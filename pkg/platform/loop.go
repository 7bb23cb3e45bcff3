package platform

import (
	"sync"

	"github.com/go-drift/hovertip/pkg/errors"
)

// Loop is a serial executor standing in for a UI thread. Callbacks posted to
// it run one at a time, in post order, on the loop's own goroutine.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

// NewLoop starts a loop.
func NewLoop() *Loop {
	l := &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

// Post queues fn. It never waits for fn to run. It returns false once the
// loop is closed.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	select {
	case l.wake <- struct{}{}:
	default:
	}
	l.mu.Unlock()
	return true
}

// Do posts fn and waits for it to finish. It returns false, without running
// fn, if the loop is closed. Calling Do from the loop itself deadlocks.
func (l *Loop) Do(fn func()) bool {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return false
	}
	<-finished
	return true
}

// Close stops accepting callbacks, runs the ones already queued and waits
// for the loop goroutine to exit.
func (l *Loop) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.wake)
	}
	l.mu.Unlock()
	<-l.done
}

func (l *Loop) run() {
	defer close(l.done)
	for range l.wake {
		l.drain()
	}
	l.drain()
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range batch {
			runSafely(fn)
		}
	}
}

func runSafely(fn func()) {
	defer errors.Recover("platform.Loop")
	fn()
}
