// Package rooms defines the room graph: a fixed set of rooms, each with an
// optional puzzle gate, optional side puzzles and an optional exit to the
// next room. The shape of the graph never changes after construction; the
// only runtime mutations are clearing a room's gate and solving side puzzles.
package rooms

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
)

// ErrNotFound is returned for references to rooms that are not in the graph
var ErrNotFound = errors.New("room not found")

// RoomID identifies a room
type RoomID string

// PuzzleID identifies a side puzzle across the whole graph
type PuzzleID string

// SidePuzzle is an optional puzzle. Solving it grants its gate's reward but
// never opens an exit.
type SidePuzzle struct {
	ID     PuzzleID
	Prompt string
	Gate   entities.Gate
}

// Room is one node of the graph
type Room struct {
	ID          RoomID
	Name        string
	Background  string // Opaque reference for renderers
	Description string
	Hint        string
	Gate        entities.Gate // nil when absent or cleared
	Next        RoomID        // Empty for the last room
	Key         world.ItemID  // Item required to use the exit, may be empty
	Items       []world.ItemID
	Side        []SidePuzzle
}

// CanAdvance returns true if the room has no pending gate
func (r Room) CanAdvance() bool {
	return r.Gate == nil
}

// NextRoom returns the configured next room, but only once the room's gate
// has been cleared.
func (r Room) NextRoom() (RoomID, bool) {
	if !r.CanAdvance() || r.Next == "" {
		return "", false
	}
	return r.Next, true
}

// HasItem reports whether the item can be picked up in this room
func (r Room) HasItem(id world.ItemID) bool {
	for _, item := range r.Items {
		if item == id {
			return true
		}
	}
	return false
}

// FindSide looks up a side puzzle of this room by id or title, ignoring case
func (r Room) FindSide(ref string) (SidePuzzle, bool) {
	ref = strings.TrimSpace(ref)
	for _, p := range r.Side {
		if strings.EqualFold(string(p.ID), ref) || (p.Gate != nil && strings.EqualFold(p.Gate.Title(), ref)) {
			return p, true
		}
	}
	return SidePuzzle{}, false
}

func (r Room) clone() Room {
	r.Items = append([]world.ItemID(nil), r.Items...)
	r.Side = append([]SidePuzzle(nil), r.Side...)
	return r
}

// GateStatus describes one configured gate or side puzzle for status panels
type GateStatus struct {
	Room     RoomID
	Puzzle   PuzzleID // Set for side puzzles only
	Title    string
	Kind     entities.GateKind
	Optional bool
	Cleared  bool
}

// Graph holds a session's copy of the rooms
type Graph struct {
	rooms   map[RoomID]*Room
	order   []RoomID
	gates   map[RoomID]entities.Gate // As configured, kept for status and save data
	cleared mapset.Set[RoomID]
	sides   map[PuzzleID]RoomID
	solved  mapset.Set[PuzzleID]
}

// NewGraph copies rooms into a new graph. Later changes to the slice do not
// affect the graph.
func NewGraph(rooms []Room) *Graph {
	g := &Graph{
		rooms:   make(map[RoomID]*Room, len(rooms)),
		gates:   make(map[RoomID]entities.Gate),
		cleared: mapset.New[RoomID](),
		sides:   make(map[PuzzleID]RoomID),
		solved:  mapset.New[PuzzleID](),
	}
	for _, r := range rooms {
		room := r.clone()
		g.rooms[room.ID] = &room
		g.order = append(g.order, room.ID)
		if room.Gate != nil {
			g.gates[room.ID] = room.Gate
		}
		for _, p := range room.Side {
			g.sides[p.ID] = room.ID
		}
	}
	return g
}

// Get returns a copy of the room with the given id
func (g *Graph) Get(id RoomID) (Room, error) {
	room, ok := g.rooms[id]
	if !ok {
		return Room{}, errors.Wrapf(ErrNotFound, "%q", id)
	}
	return room.clone(), nil
}

// Has reports whether id is a known room
func (g *Graph) Has(id RoomID) bool {
	_, ok := g.rooms[id]
	return ok
}

// IDs returns the room ids in configuration order
func (g *Graph) IDs() []RoomID {
	return append([]RoomID(nil), g.order...)
}

// ClearGate permanently removes the pending gate of a room. Clearing is
// one-way: a room without a pending gate cannot be cleared again.
func (g *Graph) ClearGate(id RoomID) error {
	room, ok := g.rooms[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "%q", id)
	}
	if room.Gate == nil {
		return errors.Errorf("room %q has no pending gate", id)
	}
	room.Gate = nil
	g.cleared.Put(id)
	return nil
}

// Cleared returns the rooms whose gates have been solved, in configuration order
func (g *Graph) Cleared() []RoomID {
	var out []RoomID
	for _, id := range g.order {
		if g.cleared.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// SideRoom returns the room holding a side puzzle
func (g *Graph) SideRoom(id PuzzleID) (RoomID, bool) {
	room, ok := g.sides[id]
	return room, ok
}

// SolveSide marks a side puzzle as solved. Like ClearGate it is one-way.
func (g *Graph) SolveSide(id PuzzleID) error {
	if _, ok := g.sides[id]; !ok {
		return errors.Wrapf(ErrNotFound, "puzzle %q", id)
	}
	if g.solved.Has(id) {
		return errors.Errorf("puzzle %q already solved", id)
	}
	g.solved.Put(id)
	return nil
}

// IsSolved reports whether a side puzzle has been solved
func (g *Graph) IsSolved(id PuzzleID) bool {
	return g.solved.Has(id)
}

// Solved returns the solved side puzzles in configuration order
func (g *Graph) Solved() []PuzzleID {
	var out []PuzzleID
	for _, id := range g.order {
		for _, p := range g.rooms[id].Side {
			if g.solved.Has(p.ID) {
				out = append(out, p.ID)
			}
		}
	}
	return out
}

// Gates lists every configured gate with its current state, each room's
// gate followed by its side puzzles
func (g *Graph) Gates() []GateStatus {
	var out []GateStatus
	for _, id := range g.order {
		if gate, ok := g.gates[id]; ok {
			out = append(out, GateStatus{
				Room:    id,
				Title:   gate.Title(),
				Kind:    gate.Kind(),
				Cleared: g.cleared.Has(id),
			})
		}
		for _, p := range g.rooms[id].Side {
			if p.Gate == nil {
				continue
			}
			out = append(out, GateStatus{
				Room:     id,
				Puzzle:   p.ID,
				Title:    p.Gate.Title(),
				Kind:     p.Gate.Kind(),
				Optional: true,
				Cleared:  g.solved.Has(p.ID),
			})
		}
	}
	return out
}
