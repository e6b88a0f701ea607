package scheduler

import (
	"context"
	"time"
)

// Posted runs real-time timers and hands their callbacks to a host loop via
// post. post must enqueue the function for execution on the host loop; it is
// called from timer goroutines.
type Posted struct {
	post func(func())
	now  func() time.Time
}

// NewPosted creates a scheduler that forwards fired timers through post.
func NewPosted(post func(func())) *Posted {
	return &Posted{post: post, now: time.Now}
}

// Now returns wall-clock time.
func (p *Posted) Now() time.Time {
	return p.now()
}

// After arms a timer; when it fires, fn is posted to the host loop and runs
// there unless the handle was canceled in the meantime.
func (p *Posted) After(d time.Duration, fn func()) Handle {
	t := &timer{}
	if d < 0 {
		d = 0
	}
	std := time.AfterFunc(d, func() {
		if t.canceled.Load() {
			return
		}
		p.post(func() { t.run(fn) })
	})
	t.stop = std.Stop
	return t
}

// Loop is a minimal single-goroutine event loop. Functions posted from any
// goroutine execute one at a time inside Run.
type Loop struct {
	*Posted
	queue chan func()
	done  chan struct{}
}

// NewLoop creates a loop whose queue buffers up to buffer posted functions
// before Post blocks.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	l := &Loop{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
	l.Posted = NewPosted(l.Post)
	return l
}

// Post enqueues fn for execution on the loop. Functions posted after Run has
// returned are dropped.
func (l *Loop) Post(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.done:
	}
}

// Run executes posted functions until ctx is done. It must be called once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

var (
	_ Scheduler = (*Posted)(nil)
	_ Scheduler = (*Loop)(nil)
)
