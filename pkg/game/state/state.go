package state

import (
	"fmt"

	"github.com/pkg/errors"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/rooms"
	"escaperoom/pkg/game/timer"
)

// Outcome is the terminal result of a session
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ParseOutcome is the inverse of Outcome.String
func ParseOutcome(s string) (Outcome, error) {
	for _, o := range []Outcome{OutcomeNone, OutcomeWon, OutcomeLost} {
		if o.String() == s {
			return o, nil
		}
	}
	return OutcomeNone, errors.Errorf("unknown outcome %q", s)
}

// Session is one playthrough: the only owner of mutable game state.
type Session struct {
	Graph     *rooms.Graph
	Current   rooms.RoomID
	Inventory *world.Inventory
	Timer     *timer.Countdown

	Outcome   Outcome
	Started   bool
	HintsUsed int
}

// NewSession creates an unstarted session in the start room
func NewSession(graph *rooms.Graph, start rooms.RoomID, seconds int) (*Session, error) {
	if !graph.Has(start) {
		return nil, errors.Wrapf(rooms.ErrNotFound, "start room %q", start)
	}
	return &Session{
		Graph:     graph,
		Current:   start,
		Inventory: world.NewInventory(),
		Timer:     timer.New(seconds),
	}, nil
}

// Room returns the current room
func (s *Session) Room() (rooms.Room, error) {
	return s.Graph.Get(s.Current)
}

// Finished returns true once the session is won or lost
func (s *Session) Finished() bool {
	return s.Outcome != OutcomeNone
}

// Active returns true while the player can still act
func (s *Session) Active() bool {
	return s.Started && !s.Finished()
}

// Snapshot is a detached copy of everything a renderer or a test can observe
type Snapshot struct {
	Room      rooms.Room
	Here      []world.Item // Room items not yet held; filled in by the controller
	Inventory []world.Item
	Remaining int
	Timer     timer.State
	Outcome   Outcome
	Started   bool
	HintsUsed int
	Gates     []rooms.GateStatus
}

// Snapshot copies the observable state of the session
func (s *Session) Snapshot() Snapshot {
	room, _ := s.Room()
	return Snapshot{
		Room:      room,
		Inventory: s.Inventory.Items(),
		Remaining: s.Timer.Remaining(),
		Timer:     s.Timer.State(),
		Outcome:   s.Outcome,
		Started:   s.Started,
		HintsUsed: s.HintsUsed,
		Gates:     s.Graph.Gates(),
	}
}

// Solved reports whether the side puzzle id has been solved
func (s Snapshot) Solved(id rooms.PuzzleID) bool {
	for _, g := range s.Gates {
		if g.Optional && g.Puzzle == id {
			return g.Cleared
		}
	}
	return false
}

// Finished mirrors Session.Finished for renderers
func (s Snapshot) Finished() bool {
	return s.Outcome != OutcomeNone
}
