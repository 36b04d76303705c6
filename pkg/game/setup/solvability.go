package setup

import (
	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/rooms"
)

// checkSolvable walks the exits from the start room the way a player would,
// collecting pickups and gate rewards, and fails if an exit key is needed
// before it can be obtained, if the path loops, or if the final gate is
// never reached. Side puzzle rewards are optional and never count.
func checkSolvable(l Layout) error {
	byID := make(map[rooms.RoomID]rooms.Room, len(l.Rooms))
	for _, r := range l.Rooms {
		byID[r.ID] = r
	}

	visited := mapset.New[rooms.RoomID]()
	held := mapset.New[world.ItemID]()

	current := l.Start
	for {
		if visited.Has(current) {
			return errors.Wrapf(ErrInvalidLayout, "exits loop back to %q", current)
		}
		visited.Put(current)
		room := byID[current]

		for _, id := range room.Items {
			held.Put(id)
		}
		if _, ok := room.Gate.(entities.FinalGate); ok {
			return nil
		}
		if reward, ok := entities.RewardOf(room.Gate); ok {
			held.Put(reward)
		}
		if room.Next == "" {
			return errors.Wrapf(ErrInvalidLayout, "dead end at %q before the final gate", current)
		}
		if room.Key != "" && !held.Has(room.Key) {
			return errors.Wrapf(ErrInvalidLayout, "exit of %q needs %q which cannot be obtained first", current, room.Key)
		}
		current = room.Next
	}
}
