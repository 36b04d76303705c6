package world

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// ItemID identifies an item across the layout, the inventory and save data
type ItemID string

// ItemSet is a set of item identifiers
type ItemSet = mapset.Set[ItemID]

// ItemKind tells the host how an item is used
type ItemKind int

const (
	KindTool ItemKind = iota // Used implicitly (keys, gears, lenses)
	KindNote                 // Carries text the player can read
)

// Item represents a collectible item in the world
type Item struct {
	ID   ItemID
	Name string
	Icon string
	Kind ItemKind
	Note string // Only meaningful for KindNote
}

// Matches reports whether ref names this item, either by id or by
// case-insensitive display name.
func (i Item) Matches(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}
	return string(i.ID) == ref || strings.EqualFold(i.Name, ref)
}

// Inventory is the player's append-only set of held items.
// Acquisition order is kept for display and save data.
type Inventory struct {
	held  ItemSet
	items []Item
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{held: mapset.New[ItemID]()}
}

// Add adds item unless it is already held. It returns false when the item
// was already in the inventory, in which case nothing changes.
func (inv *Inventory) Add(item Item) bool {
	if inv.held.Has(item.ID) {
		return false
	}
	inv.held.Put(item.ID)
	inv.items = append(inv.items, item)
	return true
}

// Has checks if the inventory holds the item with the given id
func (inv *Inventory) Has(id ItemID) bool {
	return inv.held.Has(id)
}

// Len returns the number of distinct items held
func (inv *Inventory) Len() int {
	return inv.held.Size()
}

// Items returns a copy of the held items in acquisition order
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// IDs returns the held item ids in acquisition order
func (inv *Inventory) IDs() []ItemID {
	out := make([]ItemID, 0, len(inv.items))
	for _, item := range inv.items {
		out = append(out, item.ID)
	}
	return out
}

// Find returns the held item matching ref
func (inv *Inventory) Find(ref string) (Item, bool) {
	for _, item := range inv.items {
		if item.Matches(ref) {
			return item, true
		}
	}
	return Item{}, false
}
