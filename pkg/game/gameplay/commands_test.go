package gameplay

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/save"
	"escaperoom/pkg/game/setup"
	"escaperoom/pkg/game/state"
)

func newCommands(t *testing.T) (*Commands, *fixture) {
	t.Helper()
	f := newFixture(t, setup.PracticeLayout())
	store, err := save.Open(context.Background(), filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return &Commands{Controller: f.ctrl, Slot: &save.Slot{Store: store, Name: "ve_room_state_v1"}}, f
}

func run(t *testing.T, c *Commands, line string) string {
	t.Helper()
	res := c.ExecuteLine(line)
	return strings.Join(res.Lines, "\n")
}

func TestCommands_Play(t *testing.T) {
	c, f := newCommands(t)

	if got := run(t, c, "go"); got != i18n.Get("NOT_STARTED") {
		t.Errorf("go before start = %q", got)
	}
	if got := run(t, c, "start"); got != "" {
		t.Errorf("start = %q", got)
	}
	if got := run(t, c, "start"); got != i18n.Get("ALREADY_STARTED") {
		t.Errorf("second start = %q", got)
	}
	if got := run(t, c, "solve 1"); got != i18n.Get("NOTHING_TO_SOLVE") {
		t.Errorf("solve in the lobby = %q", got)
	}
	run(t, c, "next")
	if got := run(t, c, "solve"); !strings.HasPrefix(got, "Usage") {
		t.Errorf("solve without answer = %q", got)
	}
	run(t, c, "solve 123")
	run(t, c, "go")
	if got := run(t, c, "inventory"); got != i18n.Get("NO_ITEMS") {
		t.Errorf("empty inventory = %q", got)
	}
	run(t, c, "take")
	if got := run(t, c, "i"); !strings.Contains(got, "Sun Sketch") || !strings.Contains(got, "1 item") {
		t.Errorf("inventory = %q", got)
	}
	if got := run(t, c, "read sun sketch"); !strings.Contains(got, "fnu") {
		t.Errorf("read = %q", got)
	}
	if got := run(t, c, "hint"); got != "" {
		t.Errorf("hint = %q, want it delivered as an event", got)
	}
	run(t, c, `solve "SUN"`)
	run(t, c, "go")
	run(t, c, "solve freedom")

	if f.ctrl.Snapshot().Outcome != state.OutcomeWon {
		t.Fatalf("outcome = %s, want won", f.ctrl.Snapshot().Outcome)
	}
	if got := run(t, c, "go"); got != i18n.Get("GAME_OVER") {
		t.Errorf("go after winning = %q", got)
	}
	run(t, c, "reset")
	if f.ctrl.Snapshot().Started {
		t.Error("reset did not return to an unstarted session")
	}
}

func TestCommands_Read(t *testing.T) {
	c, _ := newCommands(t)
	run(t, c, "start")
	if got := run(t, c, "read map"); got != i18n.Get("NOTE_NOT_HELD", "map") {
		t.Errorf("read unheld = %q", got)
	}
	if got := run(t, c, "read"); !strings.HasPrefix(got, "Usage") {
		t.Errorf("read without item = %q", got)
	}
}

func TestCommands_SaveLoad(t *testing.T) {
	c, f := newCommands(t)

	if got := run(t, c, "load"); got != i18n.Get("NO_SAVE", "ve_room_state_v1") {
		t.Errorf("load from empty slot = %q", got)
	}
	run(t, c, "start")
	run(t, c, "go")
	if got := run(t, c, "save"); got != i18n.Get("SAVED", "ve_room_state_v1") {
		t.Errorf("save = %q", got)
	}
	run(t, c, "reset")
	if got := run(t, c, "load"); got != i18n.Get("LOADED", "ve_room_state_v1") {
		t.Errorf("load = %q", got)
	}
	if f.room() != setup.RoomStudy {
		t.Errorf("room after load = %q, want study", f.room())
	}
	if got := run(t, c, "slots"); !strings.Contains(got, "ve_room_state_v1") {
		t.Errorf("slots = %q", got)
	}
}

func TestCommands_ExportImport(t *testing.T) {
	c, f := newCommands(t)
	path := filepath.Join(t.TempDir(), "escape save.json")

	run(t, c, "start")
	run(t, c, "go")
	if got := run(t, c, "export '"+path+"'"); got != i18n.Get("EXPORTED", path) {
		t.Errorf("export = %q", got)
	}
	run(t, c, "reset")
	if got := run(t, c, "import '"+path+"'"); got != i18n.Get("IMPORTED") {
		t.Errorf("import = %q", got)
	}
	if f.room() != setup.RoomStudy {
		t.Errorf("room after import = %q, want study", f.room())
	}
	if got := run(t, c, "import /does/not/exist.json"); got != i18n.Get("INVALID_SAVE") {
		t.Errorf("import missing file = %q", got)
	}
}

func TestCommands_NoStore(t *testing.T) {
	f := newFixture(t, setup.PracticeLayout())
	c := &Commands{Controller: f.ctrl}
	for _, line := range []string{"save", "load", "slots", "wipe"} {
		if got := run(t, c, line); got != i18n.Get("NO_STORE") {
			t.Errorf("%s without store = %q", line, got)
		}
	}
}

func TestCommands_Meta(t *testing.T) {
	c, _ := newCommands(t)
	if got := run(t, c, "dance"); got != i18n.Get("UNKNOWN_COMMAND") {
		t.Errorf("unknown = %q", got)
	}
	if res := c.ExecuteLine(""); len(res.Lines) != 0 || res.Quit {
		t.Errorf("blank line = %+v", res)
	}
	if res := c.Execute(input.Intent{Action: input.ActionQuit}); !res.Quit {
		t.Error("quit did not quit")
	}
	if got := run(t, c, "help"); got != i18n.Get("HELP") {
		t.Errorf("help = %q", got)
	}
	if got := run(t, c, "help n"); got != "ACTION{Go}: advance, go, n, next" {
		t.Errorf("help n = %q", got)
	}
	if got := run(t, c, "help dance"); got != i18n.Get("UNKNOWN_COMMAND") {
		t.Errorf("help dance = %q", got)
	}
}

func TestCommands_Wipe(t *testing.T) {
	c, _ := newCommands(t)
	run(t, c, "start")
	run(t, c, "save")
	if got := run(t, c, "wipe"); got != i18n.Get("WIPED", "ve_room_state_v1") {
		t.Errorf("wipe = %q", got)
	}
	if got := run(t, c, "load"); got != i18n.Get("NO_SAVE", "ve_room_state_v1") {
		t.Errorf("load after wipe = %q", got)
	}
	// Wiping an empty slot is not an error.
	if got := run(t, c, "wipe"); got != i18n.Get("WIPED", "ve_room_state_v1") {
		t.Errorf("second wipe = %q", got)
	}
}

func TestCommands_Try(t *testing.T) {
	f := newFixture(t, setup.DefaultLayout())
	c := &Commands{Controller: f.ctrl}

	if got := run(t, c, "try tiles 110110011"); got != i18n.Get("NOT_STARTED") {
		t.Errorf("try before start = %q", got)
	}
	run(t, c, "start")
	if got := run(t, c, "try tiles 110110011"); got != i18n.Get("NO_SUCH_PUZZLE", "tiles") {
		t.Errorf("try in the lobby = %q", got)
	}

	f.reachVault(t)
	if got := run(t, c, "try tiles"); !strings.HasPrefix(got, "Usage") {
		t.Errorf("try without answer = %q", got)
	}
	if got := run(t, c, "try riddle piano map door"); got != "" {
		t.Errorf("wrong riddle = %q, want it delivered as an event", got)
	}
	run(t, c, "try riddle Piano Water Vault")
	run(t, c, `try "music box" it sounded like a bell`)
	if got := run(t, c, "try riddle piano water vault"); got != i18n.Get("ALREADY_SOLVED", "Riddle Path") {
		t.Errorf("repeat riddle = %q", got)
	}

	snap := f.ctrl.Snapshot()
	if !snap.Solved(setup.PuzzleRiddle) || !snap.Solved(setup.PuzzleChimes) || snap.Solved(setup.PuzzleTiles) {
		t.Errorf("solved gates = %+v", snap.Gates)
	}
	if got := run(t, c, "i"); !strings.Contains(got, "Riddle Key") || !strings.Contains(got, "Audio Stamp") {
		t.Errorf("inventory = %q", got)
	}
}
