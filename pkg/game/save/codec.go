// Package save persists sessions: a versioned JSON blob, a SQLite table of
// named slots and plain files for export and import.
package save

import (
	"bytes"
	"io"

	goccy "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/rooms"
	"escaperoom/pkg/game/setup"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/game/timer"
)

// Version of the blob layout written by Encode
const Version = 1

// ErrInvalidFormat is returned for blobs that are malformed, written by
// another version or inconsistent with the layout.
var ErrInvalidFormat = errors.New("invalid save format")

type record struct {
	Version   int              `json:"version"`
	Room      rooms.RoomID     `json:"room"`
	Inventory []world.ItemID   `json:"inventory"`
	Cleared   []rooms.RoomID   `json:"cleared"`
	Solved    []rooms.PuzzleID `json:"solved"`
	Timer     timerRecord      `json:"timer"`
	Outcome   string           `json:"outcome"`
	Started   bool             `json:"started"`
	HintsUsed int              `json:"hints_used"`
}

type timerRecord struct {
	State     string `json:"state"`
	Remaining int    `json:"remaining"`
}

// Encode serializes the session
func Encode(s *state.Session) ([]byte, error) {
	rec := record{
		Version:   Version,
		Room:      s.Current,
		Inventory: s.Inventory.IDs(),
		Cleared:   s.Graph.Cleared(),
		Solved:    s.Graph.Solved(),
		Timer: timerRecord{
			State:     s.Timer.State().String(),
			Remaining: s.Timer.Remaining(),
		},
		Outcome:   s.Outcome.String(),
		Started:   s.Started,
		HintsUsed: s.HintsUsed,
	}
	if rec.Inventory == nil {
		rec.Inventory = []world.ItemID{}
	}
	if rec.Cleared == nil {
		rec.Cleared = []rooms.RoomID{}
	}
	if rec.Solved == nil {
		rec.Solved = []rooms.PuzzleID{}
	}
	b, err := goccy.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "encode session")
	}
	return b, nil
}

// Decode rebuilds a session for layout from blob. The result is a brand new
// session; nothing is shared with any live one.
func Decode(layout setup.Layout, blob []byte) (*state.Session, error) {
	var rec record
	dec := goccy.NewDecoder(bytes.NewReader(blob))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "%v", err)
	}
	if dec.More() {
		return nil, errors.Wrap(ErrInvalidFormat, "trailing data after record")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.Wrapf(ErrInvalidFormat, "trailing data after record: %v", err)
	}
	if rec.Version != Version {
		return nil, errors.Wrapf(ErrInvalidFormat, "version %d, want %d", rec.Version, Version)
	}

	s, err := layout.NewSession()
	if err != nil {
		return nil, errors.Wrap(err, "build session")
	}
	if !s.Graph.Has(rec.Room) {
		return nil, errors.Wrapf(ErrInvalidFormat, "unknown room %q", rec.Room)
	}
	s.Current = rec.Room

	for _, id := range rec.Cleared {
		if err := s.Graph.ClearGate(id); err != nil {
			return nil, errors.Wrapf(ErrInvalidFormat, "cleared gate: %v", err)
		}
	}
	for _, id := range rec.Solved {
		if err := s.Graph.SolveSide(id); err != nil {
			return nil, errors.Wrapf(ErrInvalidFormat, "solved puzzle: %v", err)
		}
	}
	for _, id := range rec.Inventory {
		item, ok := layout.Item(id)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidFormat, "unknown item %q", id)
		}
		if !s.Inventory.Add(item) {
			return nil, errors.Wrapf(ErrInvalidFormat, "item %q listed twice", id)
		}
	}

	ts, err := timer.ParseState(rec.Timer.State)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "%v", err)
	}
	if rec.Timer.Remaining > layout.TimeLimit {
		return nil, errors.Wrapf(ErrInvalidFormat, "%d seconds left of a %d second limit", rec.Timer.Remaining, layout.TimeLimit)
	}
	if s.Timer, err = timer.Resume(ts, rec.Timer.Remaining); err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "%v", err)
	}
	if s.Outcome, err = state.ParseOutcome(rec.Outcome); err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "%v", err)
	}
	if rec.HintsUsed < 0 {
		return nil, errors.Wrapf(ErrInvalidFormat, "negative hint count %d", rec.HintsUsed)
	}
	s.Started = rec.Started
	s.HintsUsed = rec.HintsUsed

	if err := checkConsistent(layout, s); err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "%v", err)
	}
	return s, nil
}

// checkConsistent rejects combinations no sequence of moves can produce
func checkConsistent(layout setup.Layout, s *state.Session) error {
	ts := s.Timer.State()
	switch {
	case !s.Started && (ts != timer.Idle || s.Outcome != state.OutcomeNone):
		return errors.Errorf("unstarted session with timer %s and outcome %s", ts, s.Outcome)
	case s.Started && ts == timer.Idle:
		return errors.New("started session with an idle timer")
	case s.Outcome == state.OutcomeWon && ts != timer.Stopped:
		return errors.Errorf("won session with timer %s", ts)
	case s.Outcome == state.OutcomeLost && ts != timer.Expired:
		return errors.Errorf("lost session with timer %s", ts)
	case s.Outcome == state.OutcomeNone && s.Started && ts != timer.Running:
		return errors.Errorf("session in progress with timer %s", ts)
	}

	for _, id := range s.Graph.Cleared() {
		r, _ := layout.Room(id)
		if reward, ok := entities.RewardOf(r.Gate); ok && !s.Inventory.Has(reward) {
			return errors.Errorf("gate in %q cleared without its reward %q", id, reward)
		}
		if _, final := r.Gate.(entities.FinalGate); final && s.Outcome != state.OutcomeWon {
			return errors.Errorf("final gate in %q cleared but the session is %s", id, s.Outcome)
		}
	}
	if s.Outcome == state.OutcomeWon {
		r, _ := layout.Room(s.Current)
		if _, final := r.Gate.(entities.FinalGate); !final {
			return errors.Errorf("won outside the final room")
		}
		if room, _ := s.Room(); !room.CanAdvance() {
			return errors.New("won with the final gate still locked")
		}
	}

	// The current room must be reachable through cleared gates and held keys.
	reached := mapset.New[rooms.RoomID]()
	id := layout.Start
	for id != s.Current {
		reached.Put(id)
		room, err := s.Graph.Get(id)
		if err != nil {
			return err
		}
		next, ok := room.NextRoom()
		if !ok {
			return errors.Errorf("room %q is not reachable", s.Current)
		}
		if room.Key != "" && !s.Inventory.Has(room.Key) {
			return errors.Errorf("passed %q without %q", id, room.Key)
		}
		id = next
	}
	reached.Put(s.Current)

	// Side puzzles can only have been solved in a room already entered.
	for _, p := range s.Graph.Solved() {
		room, _ := s.Graph.SideRoom(p)
		if !reached.Has(room) {
			return errors.Errorf("puzzle %q solved in %q which was never entered", p, room)
		}
		r, _ := s.Graph.Get(room)
		for _, side := range r.Side {
			if side.ID != p {
				continue
			}
			if reward, ok := entities.RewardOf(side.Gate); ok && !s.Inventory.Has(reward) {
				return errors.Errorf("puzzle %q solved without its reward %q", p, reward)
			}
		}
	}
	return nil
}
