// Package setup holds the static configuration of the escape room: rooms,
// gates, items and the time limit. A Layout is read-only; every session
// gets its own copy of the rooms.
package setup

import (
	"strings"

	"github.com/pkg/errors"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/rooms"
	"escaperoom/pkg/game/state"
)

// DefaultTimeLimit is the default session length in seconds (20 minutes)
const DefaultTimeLimit = 20 * 60

// ErrInvalidLayout is returned by Validate for unusable configurations
var ErrInvalidLayout = errors.New("invalid layout")

// Layout is the static description of a game
type Layout struct {
	Start     rooms.RoomID
	TimeLimit int // Seconds
	Rooms     []rooms.Room
	Items     []world.Item
}

// Item looks up an item definition by id
func (l Layout) Item(id world.ItemID) (world.Item, bool) {
	for _, item := range l.Items {
		if item.ID == id {
			return item, true
		}
	}
	return world.Item{}, false
}

// FindItem looks up an item by id or display name
func (l Layout) FindItem(ref string) (world.Item, bool) {
	for _, item := range l.Items {
		if item.Matches(ref) {
			return item, true
		}
	}
	return world.Item{}, false
}

// Room looks up a room definition by id
func (l Layout) Room(id rooms.RoomID) (rooms.Room, bool) {
	for _, r := range l.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return rooms.Room{}, false
}

// NewSession builds a fresh, unstarted session from the layout
func (l Layout) NewSession() (*state.Session, error) {
	return state.NewSession(rooms.NewGraph(l.Rooms), l.Start, l.TimeLimit)
}

// Validate checks that every reference in the layout resolves and that the
// game can be finished.
func (l Layout) Validate() error {
	if l.TimeLimit <= 0 {
		return errors.Wrapf(ErrInvalidLayout, "time limit %d must be positive", l.TimeLimit)
	}
	if len(l.Rooms) == 0 {
		return errors.Wrap(ErrInvalidLayout, "no rooms")
	}

	items := map[world.ItemID]bool{}
	for _, item := range l.Items {
		if item.ID == "" {
			return errors.Wrap(ErrInvalidLayout, "item with empty id")
		}
		if items[item.ID] {
			return errors.Wrapf(ErrInvalidLayout, "duplicate item %q", item.ID)
		}
		items[item.ID] = true
	}

	ids := map[rooms.RoomID]bool{}
	for _, r := range l.Rooms {
		if r.ID == "" {
			return errors.Wrap(ErrInvalidLayout, "room with empty id")
		}
		if ids[r.ID] {
			return errors.Wrapf(ErrInvalidLayout, "duplicate room %q", r.ID)
		}
		ids[r.ID] = true
	}
	if !ids[l.Start] {
		return errors.Wrapf(ErrInvalidLayout, "start room %q does not exist", l.Start)
	}

	finals := 0
	puzzles := map[rooms.PuzzleID]bool{}
	for _, r := range l.Rooms {
		if r.Next != "" && !ids[r.Next] {
			return errors.Wrapf(ErrInvalidLayout, "room %q leads to unknown room %q", r.ID, r.Next)
		}
		if r.Key != "" && !items[r.Key] {
			return errors.Wrapf(ErrInvalidLayout, "room %q needs unknown item %q", r.ID, r.Key)
		}
		for _, id := range r.Items {
			if !items[id] {
				return errors.Wrapf(ErrInvalidLayout, "room %q holds unknown item %q", r.ID, id)
			}
		}
		if r.Gate != nil {
			if err := checkGate(r.Gate, items); err != nil {
				return errors.Wrapf(err, "gate in %q", r.ID)
			}
		}
		if _, ok := r.Gate.(entities.FinalGate); ok {
			finals++
		}
		for _, p := range r.Side {
			if p.ID == "" {
				return errors.Wrapf(ErrInvalidLayout, "side puzzle in %q has empty id", r.ID)
			}
			if puzzles[p.ID] {
				return errors.Wrapf(ErrInvalidLayout, "duplicate side puzzle %q", p.ID)
			}
			puzzles[p.ID] = true
			switch p.Gate.(type) {
			case nil:
				return errors.Wrapf(ErrInvalidLayout, "side puzzle %q has no gate", p.ID)
			case entities.FinalGate:
				return errors.Wrapf(ErrInvalidLayout, "side puzzle %q cannot be a final gate", p.ID)
			}
			if err := checkGate(p.Gate, items); err != nil {
				return errors.Wrapf(err, "side puzzle %q", p.ID)
			}
		}
	}
	if finals != 1 {
		return errors.Wrapf(ErrInvalidLayout, "want exactly one final gate, found %d", finals)
	}

	return checkSolvable(l)
}

// checkGate rejects gates that can never be solved or reward unknown items
func checkGate(gate entities.Gate, items map[world.ItemID]bool) error {
	if reward, ok := entities.RewardOf(gate); ok && !items[reward] {
		return errors.Wrapf(ErrInvalidLayout, "rewards unknown item %q", reward)
	}
	switch g := gate.(type) {
	case entities.CodeGate:
		if strings.TrimSpace(g.Code) == "" {
			return errors.Wrap(ErrInvalidLayout, "code gate has no code")
		}
	case entities.CipherGate:
		if strings.TrimSpace(g.Answer) == "" {
			return errors.Wrap(ErrInvalidLayout, "cipher gate has no answer")
		}
	case entities.FinalGate:
		if strings.TrimSpace(g.Code) == "" {
			return errors.Wrap(ErrInvalidLayout, "final gate has no code")
		}
	case entities.ClueGate:
		for _, kw := range g.Keywords {
			if strings.TrimSpace(kw) == "" {
				return errors.Wrap(ErrInvalidLayout, "clue gate has a blank keyword")
			}
		}
		if len(g.Keywords) == 0 {
			return errors.Wrap(ErrInvalidLayout, "clue gate has no keywords")
		}
	}
	return nil
}
