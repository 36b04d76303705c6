package save

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/rooms"
	"escaperoom/pkg/game/setup"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/game/timer"
)

// inVault returns a practice session that has solved the keypad, picked up
// the sketch and spent a few seconds.
func inVault(t *testing.T) (setup.Layout, *state.Session) {
	t.Helper()
	layout := setup.PracticeLayout()
	s, err := layout.NewSession()
	if err != nil {
		t.Fatal(err)
	}
	s.Started = true
	s.Timer.Start()
	for i := 0; i < 30; i++ {
		s.Timer.Tick()
	}
	if err := s.Graph.ClearGate(setup.RoomStudy); err != nil {
		t.Fatal(err)
	}
	s.Current = setup.RoomVault
	sketch, _ := layout.Item("sun-sketch")
	s.Inventory.Add(sketch)
	s.HintsUsed = 2
	return layout, s
}

func TestRoundTrip(t *testing.T) {
	layout, s := inVault(t)
	blob, err := Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(layout, blob)
	if err != nil {
		t.Fatalf("Decode() = %v\nblob: %s", err, blob)
	}
	if diff := cmp.Diff(s.Snapshot(), got.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if got.Graph == s.Graph || got.Inventory == s.Inventory || got.Timer == s.Timer {
		t.Error("decoded session shares state with the original")
	}
}

func TestRoundTrip_Fresh(t *testing.T) {
	layout := setup.DefaultLayout()
	s, err := layout.NewSession()
	if err != nil {
		t.Fatal(err)
	}
	blob, err := Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(blob), `"inventory":[]`) {
		t.Errorf("empty inventory not encoded as a list: %s", blob)
	}
	got, err := Decode(layout, blob)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s.Snapshot(), got.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_Won(t *testing.T) {
	layout, s := inVault(t)
	if err := s.Graph.ClearGate(setup.RoomVault); err != nil {
		t.Fatal(err)
	}
	if err := s.Graph.ClearGate(setup.RoomFinal); err != nil {
		t.Fatal(err)
	}
	s.Current = setup.RoomFinal
	s.Outcome = state.OutcomeWon
	s.Timer.Stop()

	blob, err := Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(layout, blob)
	if err != nil {
		t.Fatalf("Decode() = %v\nblob: %s", err, blob)
	}
	if got.Outcome != state.OutcomeWon || got.Timer.State() != timer.Stopped {
		t.Errorf("decoded outcome %s timer %s", got.Outcome, got.Timer.State())
	}
}

func TestDecode_Invalid(t *testing.T) {
	layout := setup.PracticeLayout()
	valid := `{"version":1,"room":"vault","inventory":["sun-sketch"],"cleared":["study"],` +
		`"timer":{"state":"running","remaining":870},"outcome":"none","started":true,"hints_used":0}`
	if _, err := Decode(layout, []byte(valid)); err != nil {
		t.Fatalf("valid blob rejected: %v", err)
	}

	tests := []struct {
		name string
		blob string
	}{
		{"empty", ``},
		{"not json", `room=vault`},
		{"truncated", valid[:40]},
		{"wrong version", strings.Replace(valid, `"version":1`, `"version":2`, 1)},
		{"unknown field", strings.Replace(valid, `"started":true`, `"started":true,"cheat":1`, 1)},
		{"unknown room", strings.Replace(valid, `"room":"vault"`, `"room":"attic"`, 1)},
		{"unknown item", strings.Replace(valid, `["sun-sketch"]`, `["crowbar"]`, 1)},
		{"duplicate item", strings.Replace(valid, `["sun-sketch"]`, `["sun-sketch","sun-sketch"]`, 1)},
		{"unknown gate", strings.Replace(valid, `["study"]`, `["attic"]`, 1)},
		{"room without gate cleared", strings.Replace(valid, `["study"]`, `["study","lobby"]`, 1)},
		{"bad timer state", strings.Replace(valid, `"running"`, `"paused"`, 1)},
		{"negative time", strings.Replace(valid, `870`, `-1`, 1)},
		{"more time than the limit", strings.Replace(valid, `870`, `901`, 1)},
		{"bad outcome", strings.Replace(valid, `"outcome":"none"`, `"outcome":"draw"`, 1)},
		{"lost with running timer", strings.Replace(valid, `"outcome":"none"`, `"outcome":"lost"`, 1)},
		{"expired with time left", strings.Replace(valid, `"running"`, `"expired"`, 1)},
		{"not started but running", strings.Replace(valid, `"started":true`, `"started":false`, 1)},
		{"unreachable room", strings.Replace(valid, `["study"]`, `[]`, 1)},
		{"negative hints", strings.Replace(valid, `"hints_used":0`, `"hints_used":-3`, 1)},
		{"trailing garbage", valid + `garbage`},
		{"second record", valid + `{"version":9}`},
		{"final cleared without a win", strings.Replace(valid, `["study"]`, `["study","vault","final"]`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(layout, []byte(tt.blob)); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode() = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestDecode_MissingReward(t *testing.T) {
	layout := setup.DefaultLayout()
	blob := `{"version":1,"room":"study","inventory":[],"cleared":["lobby"],` +
		`"timer":{"state":"running","remaining":1000},"outcome":"none","started":true,"hints_used":0}`
	if _, err := Decode(layout, []byte(blob)); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Decode() = %v, want ErrInvalidFormat", err)
	}
}

// inDefaultVault returns a classic session standing in the vault with the
// tile pattern solved.
func inDefaultVault(t *testing.T) (setup.Layout, *state.Session) {
	t.Helper()
	layout := setup.DefaultLayout()
	s, err := layout.NewSession()
	if err != nil {
		t.Fatal(err)
	}
	s.Started = true
	s.Timer.Start()
	for _, id := range []rooms.RoomID{setup.RoomLobby, setup.RoomStudy} {
		if err := s.Graph.ClearGate(id); err != nil {
			t.Fatal(err)
		}
	}
	for _, id := range []world.ItemID{setup.ItemBrassKey, setup.ItemLens, setup.ItemTiledEmblem} {
		item, _ := layout.Item(id)
		s.Inventory.Add(item)
	}
	if err := s.Graph.SolveSide(setup.PuzzleTiles); err != nil {
		t.Fatal(err)
	}
	s.Current = setup.RoomVault
	return layout, s
}

func TestRoundTrip_SolvedSidePuzzles(t *testing.T) {
	layout, s := inDefaultVault(t)
	blob, err := Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(blob), `"solved":["tiles"]`) {
		t.Errorf("solved puzzles missing from %s", blob)
	}
	got, err := Decode(layout, blob)
	if err != nil {
		t.Fatalf("Decode() = %v\nblob: %s", err, blob)
	}
	if diff := cmp.Diff(s.Snapshot(), got.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if !got.Graph.IsSolved(setup.PuzzleTiles) || got.Graph.IsSolved(setup.PuzzleChimes) {
		t.Errorf("decoded solved puzzles = %v, want [tiles]", got.Graph.Solved())
	}
}

func TestDecode_InvalidSolved(t *testing.T) {
	layout := setup.DefaultLayout()
	valid := `{"version":1,"room":"vault","inventory":["brass-key","lens","tiled-emblem"],"cleared":["lobby","study"],` +
		`"solved":["tiles"],"timer":{"state":"running","remaining":1000},"outcome":"none","started":true,"hints_used":0}`
	if _, err := Decode(layout, []byte(valid)); err != nil {
		t.Fatalf("valid blob rejected: %v", err)
	}

	tests := []struct {
		name string
		blob string
	}{
		{"unknown puzzle", strings.Replace(valid, `["tiles"]`, `["jigsaw"]`, 1)},
		{"puzzle listed twice", strings.Replace(valid, `["tiles"]`, `["tiles","tiles"]`, 1)},
		{"solved without reward", strings.Replace(valid, `,"tiled-emblem"]`, `]`, 1)},
		{"solved before entering the room", strings.NewReplacer(
			`"room":"vault"`, `"room":"study"`,
			`["lobby","study"]`, `["lobby"]`,
			`"lens",`, ``,
		).Replace(valid)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(layout, []byte(tt.blob)); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode() = %v, want ErrInvalidFormat", err)
			}
		})
	}
}
