// Package timer implements the session countdown.
package timer

import (
	"fmt"

	"github.com/pkg/errors"
)

// State of a countdown
type State int

const (
	Idle    State = iota // Created, not started
	Running              // Decrementing on every tick
	Expired              // Reached zero; terminal
	Stopped              // Halted by a win; terminal
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Expired:
		return "expired"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ParseState is the inverse of State.String
func ParseState(s string) (State, error) {
	for _, st := range []State{Idle, Running, Expired, Stopped} {
		if st.String() == s {
			return st, nil
		}
	}
	return Idle, errors.Errorf("unknown timer state %q", s)
}

// Countdown is a whole-second counter that only ever goes down.
// There is no pause: once running it either expires or is stopped.
type Countdown struct {
	state     State
	remaining int
}

// New creates an idle countdown holding seconds (clamped at zero)
func New(seconds int) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{remaining: seconds}
}

// Resume rebuilds a countdown from saved values
func Resume(state State, remaining int) (*Countdown, error) {
	switch {
	case remaining < 0:
		return nil, errors.Errorf("negative remaining time %d", remaining)
	case state == Expired && remaining != 0:
		return nil, errors.Errorf("expired countdown with %d seconds left", remaining)
	case state == Running && remaining == 0:
		return nil, errors.New("running countdown with no time left")
	case state < Idle || state > Stopped:
		return nil, errors.Errorf("unknown timer state %d", int(state))
	}
	return &Countdown{state: state, remaining: remaining}, nil
}

// Start moves an idle countdown to running. Starting with nothing left
// expires it immediately. Returns false if the countdown was not idle.
func (c *Countdown) Start() bool {
	if c.state != Idle {
		return false
	}
	c.state = Running
	if c.remaining == 0 {
		c.state = Expired
	}
	return true
}

// Tick takes one second off a running countdown and reports whether this
// tick made it expire. Ticks in any other state do nothing.
func (c *Countdown) Tick() bool {
	if c.state != Running {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = Expired
		return true
	}
	return false
}

// Stop freezes a running countdown
func (c *Countdown) Stop() {
	if c.state == Running {
		c.state = Stopped
	}
}

// State returns the current state
func (c *Countdown) State() State {
	return c.state
}

// Remaining returns the seconds left
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Format renders seconds as mm:ss
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
