package world

import (
	"testing"

	"github.com/bxcodec/faker/v4"
	"github.com/bxcodec/faker/v4/pkg/options"
	"github.com/google/go-cmp/cmp"
)

type fakeItem struct {
	ID   string
	Name string
}

type fakeHaul struct {
	Items []fakeItem
}

func TestInventory_AddIsIdempotent(t *testing.T) {
	inv := NewInventory()
	key := Item{ID: "brass-key", Name: "Brass Key"}

	if !inv.Add(key) {
		t.Fatal("Add(brass-key) on empty inventory = false, want true")
	}
	before := inv.Items()

	if inv.Add(key) {
		t.Error("second Add(brass-key) = true, want false (already held)")
	}
	if diff := cmp.Diff(before, inv.Items()); diff != "" {
		t.Errorf("inventory changed after duplicate Add (-before +after):\n%s", diff)
	}
	if inv.Len() != 1 {
		t.Errorf("Len() = %d, want 1", inv.Len())
	}
}

func TestInventory_DuplicateIDDifferentName(t *testing.T) {
	inv := NewInventory()
	inv.Add(Item{ID: "lens", Name: "Lens"})
	if inv.Add(Item{ID: "lens", Name: "Magnifying Lens"}) {
		t.Error("Add with an id already held = true, want false")
	}
	got := inv.Items()
	if len(got) != 1 || got[0].Name != "Lens" {
		t.Errorf("Items() = %v, want the first Lens only", got)
	}
}

func TestInventory_GeneratedItems(t *testing.T) {
	haul := &fakeHaul{}
	if err := faker.FakeData(haul, options.WithRandomMapAndSliceMaxSize(10)); err != nil {
		t.Fatal(err)
	}

	inv := NewInventory()
	seen := map[ItemID]bool{}
	var wantOrder []ItemID
	for _, fi := range haul.Items {
		item := Item{ID: ItemID(fi.ID), Name: fi.Name}
		added := inv.Add(item)
		if added == seen[item.ID] {
			t.Errorf("Add(%q) = %v, want %v", item.ID, added, !seen[item.ID])
		}
		if !seen[item.ID] {
			wantOrder = append(wantOrder, item.ID)
		}
		seen[item.ID] = true
		// Adding twice in a row must never change anything.
		if inv.Add(item) {
			t.Errorf("repeated Add(%q) = true, want false", item.ID)
		}
	}

	if diff := cmp.Diff(wantOrder, inv.IDs()); diff != "" && len(wantOrder) > 0 {
		t.Errorf("IDs() order mismatch (-want +got):\n%s", diff)
	}
	for id := range seen {
		if !inv.Has(id) {
			t.Errorf("Has(%q) = false, want true", id)
		}
	}
}

func TestInventory_HasUnknown(t *testing.T) {
	inv := NewInventory()
	if inv.Has("anything") {
		t.Error("Has on empty inventory = true, want false")
	}
}

func TestItem_Matches(t *testing.T) {
	note := Item{ID: "tucked-note", Name: "Tucked Note", Kind: KindNote, Note: "Remember 7"}
	tests := []struct {
		ref  string
		want bool
	}{
		{"tucked-note", true},
		{"Tucked Note", true},
		{"  tucked note ", true},
		{"note", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := note.Matches(tt.ref); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestInventory_Find(t *testing.T) {
	inv := NewInventory()
	inv.Add(Item{ID: "tucked-note", Name: "Tucked Note", Kind: KindNote, Note: "Remember 7"})
	item, ok := inv.Find("TUCKED NOTE")
	if !ok || item.Note != "Remember 7" {
		t.Errorf("Find(TUCKED NOTE) = %v, %v, want the note", item, ok)
	}
	if _, ok := inv.Find("lens"); ok {
		t.Error("Find(lens) = true, want false")
	}
}
