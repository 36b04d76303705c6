package gameplay

import (
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/notify"
	"escaperoom/pkg/game/rooms"
	"escaperoom/pkg/game/state"
)

// Move is the result of AttemptTransition
type Move int

const (
	MoveIgnored  Move = iota // Session not active
	MoveMoved                // Player is in the next room
	MoveLocked               // The room's gate is still pending
	MoveNeedsKey             // The exit needs an item the player lacks
	MoveDeadEnd              // The room has no next room
)

func (m Move) String() string {
	switch m {
	case MoveMoved:
		return "moved"
	case MoveLocked:
		return "locked"
	case MoveNeedsKey:
		return "needs-key"
	case MoveDeadEnd:
		return "dead-end"
	default:
		return "ignored"
	}
}

// Pickup is the result of PickUp
type Pickup int

const (
	PickupIgnored Pickup = iota
	PickupTaken
	PickupAlreadyHeld
	PickupNotHere
)

func (p Pickup) String() string {
	switch p {
	case PickupTaken:
		return "taken"
	case PickupAlreadyHeld:
		return "already-held"
	case PickupNotHere:
		return "not-here"
	default:
		return "ignored"
	}
}

// AttemptTransition moves the player to the next room when the current
// room's gate is cleared, a next room exists and any exit key is held.
// Otherwise nothing changes.
func (c *Controller) AttemptTransition() Move {
	if !c.session.Active() {
		return MoveIgnored
	}
	room, ok := c.currentRoom()
	if !ok {
		return MoveIgnored
	}

	switch {
	case !room.CanAdvance():
		c.blocked(i18n.Get("TRANSITION_LOCKED", gateTitle(room.Gate)))
		return MoveLocked
	case room.Next == "":
		c.blocked(i18n.Get("TRANSITION_DEAD_END"))
		return MoveDeadEnd
	case room.Key != "" && !c.session.Inventory.Has(room.Key):
		name := string(room.Key)
		if item, ok := c.layout.Item(room.Key); ok {
			name = item.Name
		}
		c.blocked(i18n.Get("TRANSITION_NEEDS_KEY", name))
		return MoveNeedsKey
	}

	c.session.Current = room.Next
	c.notify(notify.Event{Kind: notify.RoomEntered})
	c.changed()
	return MoveMoved
}

func (c *Controller) blocked(reason string) {
	c.notify(notify.Event{Kind: notify.TransitionBlocked, Text: reason})
	c.Render()
}

func gateTitle(g entities.Gate) string {
	if g.Title() != "" {
		return g.Title()
	}
	return g.Kind().String()
}

// SubmitPuzzleAnswer checks answer against the current room's code or
// cipher gate. A correct answer clears the gate and grants its reward but
// never moves the player. Final gates are left to SubmitFinalCode.
func (c *Controller) SubmitPuzzleAnswer(answer string) entities.Verdict {
	if !c.session.Active() {
		return entities.VerdictIgnored
	}
	room, ok := c.currentRoom()
	if !ok || room.Gate == nil || room.Gate.Kind() == entities.GateFinal {
		return entities.VerdictIgnored
	}

	if entities.Evaluate(room.Gate, answer) != entities.VerdictCleared {
		c.notify(notify.Event{Kind: notify.PuzzleRejected, Text: gateTitle(room.Gate)})
		c.Render()
		return entities.VerdictRejected
	}

	if err := c.session.Graph.ClearGate(room.ID); err != nil {
		c.logger.Error("clear gate", "room", room.ID, "error", err)
		return entities.VerdictIgnored
	}
	c.notify(notify.Event{Kind: notify.PuzzleCleared, Text: gateTitle(room.Gate)})
	if reward, ok := entities.RewardOf(room.Gate); ok {
		if item, ok := c.layout.Item(reward); ok {
			c.grant(item)
		}
	}
	c.changed()
	return entities.VerdictCleared
}

// SubmitFinalCode checks answer against the current room's final gate. A
// correct code wins the session and stops the countdown.
func (c *Controller) SubmitFinalCode(answer string) entities.Verdict {
	if !c.session.Active() {
		return entities.VerdictIgnored
	}
	room, ok := c.currentRoom()
	if !ok {
		return entities.VerdictIgnored
	}
	gate, ok := room.Gate.(entities.FinalGate)
	if !ok {
		return entities.VerdictIgnored
	}

	if entities.Evaluate(gate, answer) != entities.VerdictCleared {
		c.notify(notify.Event{Kind: notify.PuzzleRejected, Text: gateTitle(gate)})
		c.Render()
		return entities.VerdictRejected
	}

	if err := c.session.Graph.ClearGate(room.ID); err != nil {
		c.logger.Error("clear final gate", "room", room.ID, "error", err)
		return entities.VerdictIgnored
	}
	c.session.Outcome = state.OutcomeWon
	c.session.Timer.Stop()
	c.notify(notify.Event{Kind: notify.PuzzleCleared, Text: gateTitle(gate)})
	c.notify(notify.Event{Kind: notify.SessionWon})
	c.logger.Info("session won", "remaining", c.session.Timer.Remaining(), "hints", c.session.HintsUsed)
	c.changed()
	return entities.VerdictCleared
}

// Submit sends answer to whichever gate the current room has
func (c *Controller) Submit(answer string) entities.Verdict {
	if room, ok := c.currentRoom(); ok {
		if _, final := room.Gate.(entities.FinalGate); final {
			return c.SubmitFinalCode(answer)
		}
	}
	return c.SubmitPuzzleAnswer(answer)
}

// SolveSide checks answer against the side puzzle ref (an id or title) of
// the current room. A correct answer grants the puzzle's reward; the exit
// is unaffected. Unknown and already solved puzzles are ignored.
func (c *Controller) SolveSide(ref, answer string) entities.Verdict {
	if !c.session.Active() {
		return entities.VerdictIgnored
	}
	room, ok := c.currentRoom()
	if !ok {
		return entities.VerdictIgnored
	}
	p, ok := room.FindSide(ref)
	if !ok || c.session.Graph.IsSolved(p.ID) {
		return entities.VerdictIgnored
	}

	if entities.Evaluate(p.Gate, answer) != entities.VerdictCleared {
		c.notify(notify.Event{Kind: notify.PuzzleRejected, Text: gateTitle(p.Gate)})
		c.Render()
		return entities.VerdictRejected
	}

	if err := c.session.Graph.SolveSide(p.ID); err != nil {
		c.logger.Error("solve side puzzle", "puzzle", p.ID, "error", err)
		return entities.VerdictIgnored
	}
	c.notify(notify.Event{Kind: notify.PuzzleCleared, Text: gateTitle(p.Gate)})
	if reward, ok := entities.RewardOf(p.Gate); ok {
		if item, ok := c.layout.Item(reward); ok {
			c.grant(item)
		}
	}
	c.changed()
	return entities.VerdictCleared
}

// PickUp takes an item lying in the current room. ref is an item id or name;
// an empty ref takes the first item not yet held.
func (c *Controller) PickUp(ref string) Pickup {
	if !c.session.Active() {
		return PickupIgnored
	}
	room, ok := c.currentRoom()
	if !ok {
		return PickupIgnored
	}

	item, found := c.findInRoom(room, ref)
	if !found {
		c.notify(notify.Event{Kind: notify.ItemNotHere, Text: ref})
		c.Render()
		return PickupNotHere
	}
	if !c.grant(item) {
		c.Render()
		return PickupAlreadyHeld
	}
	c.changed()
	return PickupTaken
}

func (c *Controller) findInRoom(room rooms.Room, ref string) (world.Item, bool) {
	if ref == "" {
		var first world.Item
		found := false
		for _, id := range room.Items {
			item, ok := c.layout.Item(id)
			if !ok {
				continue
			}
			if !c.session.Inventory.Has(id) {
				return item, true
			}
			if !found {
				first, found = item, true
			}
		}
		// Everything here is held already: report it as such.
		return first, found
	}
	item, ok := c.layout.FindItem(ref)
	if !ok || !room.HasItem(item.ID) {
		return world.Item{}, false
	}
	return item, true
}

// grant adds item to the inventory, announcing the result. It returns false
// if the item was already held.
func (c *Controller) grant(item world.Item) bool {
	ev := notify.Event{Kind: notify.ItemGained, Item: item.ID, ItemName: item.Name}
	added := c.session.Inventory.Add(item)
	if !added {
		ev.Kind = notify.ItemAlreadyHeld
	}
	c.notify(ev)
	return added
}

// UseHint returns the current room's hint and counts it. Rooms without a
// hint return false and are not counted.
func (c *Controller) UseHint() (string, bool) {
	if !c.session.Active() {
		return "", false
	}
	room, ok := c.currentRoom()
	if !ok || room.Hint == "" {
		return "", false
	}
	c.session.HintsUsed++
	c.notify(notify.Event{Kind: notify.HintShown, Text: room.Hint})
	c.changed()
	return room.Hint, true
}
