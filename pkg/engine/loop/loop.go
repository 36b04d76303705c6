// Package loop is the host's single event queue. Producers (a line reader
// and a clock) only send events; Run hands them to one handler, one at a
// time, so game state is never touched from two goroutines.
package loop

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Event is either a typed line, a clock tick or an input failure
type Event struct {
	Line string
	Tick bool
	Err  error
}

// ReadLines sends every line read from r to out until r is exhausted or ctx
// is done. End of input is reported as an Event carrying io.EOF.
func ReadLines(ctx context.Context, r io.Reader, out chan<- Event) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case out <- Event{Line: scanner.Text()}:
		case <-ctx.Done():
			return
		}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case out <- Event{Err: err}:
	case <-ctx.Done():
	}
}

// Clock sends a tick event every interval while running. It can be stopped
// and started again any number of times.
type Clock struct {
	interval time.Duration
	out      chan<- Event

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewClock creates a stopped clock
func NewClock(interval time.Duration, out chan<- Event) *Clock {
	return &Clock{interval: interval, out: out}
}

// Start begins ticking. Starting a running clock does nothing.
func (c *Clock) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return
	}
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(ctx, c.stop, c.done)
}

// Stop halts the clock and waits for its goroutine to exit. A tick that was
// already queued may still be delivered.
func (c *Clock) Stop() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether the clock is ticking
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

func (c *Clock) run(ctx context.Context, stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			select {
			case c.out <- Event{Tick: true}:
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		case <-stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// ErrStopped is returned by Run when the handler asks to stop
var ErrStopped = errors.New("loop stopped")

// Run feeds events to handle until it returns false, ctx is done or events
// is closed. Each call to handle completes before the next event is read.
func Run(ctx context.Context, events <-chan Event, handle func(Event) bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !handle(ev) {
				return ErrStopped
			}
		}
	}
}
