package renderer

import (
	"fmt"
	"testing"
)

type bracketStyler struct{}

func (bracketStyler) StyleText(text string, style TextStyle) string {
	return fmt.Sprintf("[%d:%s]", style, text)
}

func TestStrip(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"You found ITEM{Brass Key}! Check your inventory.", "You found Brass Key! Check your inventory."},
		{"DENIED{Time is up.} The room keeps you.", "Time is up. The room keeps you."},
		{"Type ACTION{start} to begin.", "Type start to begin."},
		{"no markup at all", "no markup at all"},
		{"UNKNOWN{kept}", "kept"},
	}
	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_Styles(t *testing.T) {
	got := Format("ROOM{Study} ACTION{go}", bracketStyler{})
	want := fmt.Sprintf("[%d:Study] [%d:g][%d:o]", StyleRoom, StyleActionShort, StyleAction)
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestSegments(t *testing.T) {
	got := Segments("You found ITEM{Lens}!")
	want := []Segment{
		{Text: "You found "},
		{Text: "Lens", Style: StyleItem},
		{Text: "!"},
	}
	if len(got) != len(want) {
		t.Fatalf("Segments() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
