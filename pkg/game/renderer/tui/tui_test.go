package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"escaperoom/pkg/game/notify"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/setup"
	"escaperoom/pkg/game/state"
)

func render(t *testing.T, snap state.Snapshot, log *notify.Log) string {
	t.Helper()
	var buf bytes.Buffer
	New(&buf, log).Render(snap)
	return color.ClearCode(buf.String())
}

func snapshot(t *testing.T) state.Snapshot {
	t.Helper()
	s, err := setup.DefaultLayout().NewSession()
	if err != nil {
		t.Fatal(err)
	}
	return s.Snapshot()
}

func TestRender_NotStarted(t *testing.T) {
	out := render(t, snapshot(t), nil)

	if strings.HasPrefix(out, clearScreen) {
		t.Error("cleared a non-terminal writer")
	}
	for _, want := range []string{"Lobby", "20:00", "Antique Keypad"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "> ") {
		t.Errorf("frame does not end with a prompt: %q", out)
	}
}

func TestRender_Started(t *testing.T) {
	snap := snapshot(t)
	snap.Started = true
	item, _ := setup.DefaultLayout().Item(setup.ItemTuckedNote)
	snap.Here = append(snap.Here, item)

	log := notify.NewLog()
	log.Add("You found ITEM{Brass Key}! Check your inventory.")

	out := render(t, snap, log)
	for _, want := range []string{"Tucked Note", "Messages", "You found Brass Key!"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ITEM{") {
		t.Errorf("markup leaked into frame:\n%s", out)
	}
}

func TestRender_SidePuzzles(t *testing.T) {
	layout := setup.DefaultLayout()
	s, err := layout.NewSession()
	if err != nil {
		t.Fatal(err)
	}
	s.Started = true
	s.Current = setup.RoomVault
	if err := s.Graph.SolveSide(setup.PuzzleTiles); err != nil {
		t.Fatal(err)
	}

	out := render(t, s.Snapshot(), nil)
	for _, want := range []string{"Side puzzles:", "Music Box [try chimes]", "Riddle Path [try riddle]", "Tile Pattern (solved)", "Tile Pattern (optional)"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
}

func TestRender_Outcome(t *testing.T) {
	snap := snapshot(t)
	snap.Started = true
	snap.Outcome = state.OutcomeLost
	if out := render(t, snap, nil); !strings.Contains(out, "***") {
		t.Errorf("lost frame has no banner:\n%s", out)
	}
}

func TestStyleText_Normal(t *testing.T) {
	r := New(&bytes.Buffer{}, nil)
	if got := r.StyleText("plain", renderer.StyleNormal); got != "plain" {
		t.Errorf("StyleText(normal) = %q, want plain", got)
	}
}

func TestVisibleLen(t *testing.T) {
	styled := color.Style{color.FgRed}.Sprint("abc")
	if got := visibleLen(styled); got != 3 {
		t.Errorf("visibleLen(%q) = %d, want 3", styled, got)
	}
}
