// Package notify carries player-facing game events out of the controller.
package notify

import (
	"sync"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/rooms"
	"escaperoom/pkg/game/timer"
)

// Kind identifies what happened
type Kind string

const (
	ItemGained        Kind = "item-gained"
	ItemAlreadyHeld   Kind = "item-already-held"
	ItemNotHere       Kind = "item-not-here"
	PuzzleRejected    Kind = "puzzle-rejected"
	PuzzleCleared     Kind = "puzzle-cleared"
	SessionWon        Kind = "session-won"
	SessionLost       Kind = "session-lost"
	RoomEntered       Kind = "room-entered"
	TransitionBlocked Kind = "transition-blocked"
	HintShown         Kind = "hint-shown"
	SessionStarted    Kind = "session-started"
	SessionReset      Kind = "session-reset"
	SessionRestored   Kind = "session-restored"
)

// Event is a single notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind      Kind
	Room      rooms.RoomID
	RoomName  string
	Item      world.ItemID
	ItemName  string
	Text      string // Gate title, hint text or blocking reason
	Remaining int    // Seconds left when the event happened
}

// Notifier receives game events. Implementations must not call back into
// the controller.
type Notifier interface {
	Notify(Event)
}

// Nop discards every event
type Nop struct{}

func (Nop) Notify(Event) {}

// Fanout delivers every event to each notifier in order
type Fanout []Notifier

func (f Fanout) Notify(ev Event) {
	for _, n := range f {
		if n != nil {
			n.Notify(ev)
		}
	}
}

// MaxMessages is how many lines a Log keeps
const MaxMessages = 5

// Log keeps the most recent localized messages for display
type Log struct {
	mu    sync.Mutex
	lines []string
}

// NewLog creates an empty message log
func NewLog() *Log {
	return &Log{}
}

func (l *Log) Notify(ev Event) {
	if msg := Message(ev); msg != "" {
		l.Add(msg)
	}
}

// Add appends a line, dropping the oldest once the log is full
func (l *Log) Add(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, msg)
	if len(l.lines) > MaxMessages {
		l.lines = l.lines[len(l.lines)-MaxMessages:]
	}
}

// Lines returns the kept messages, oldest first
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Clear empties the log
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}

// Message renders ev with the active catalog. Events with no player-facing
// text return an empty string.
func Message(ev Event) string {
	switch ev.Kind {
	case ItemGained:
		return i18n.Get("ITEM_GAINED", ev.ItemName)
	case ItemAlreadyHeld:
		return i18n.Get("ITEM_ALREADY_HELD")
	case ItemNotHere:
		if ev.Text == "" {
			return i18n.Get("NOTHING_HERE")
		}
		return i18n.Get("ITEM_NOT_HERE", ev.Text)
	case PuzzleRejected:
		return i18n.Get("PUZZLE_REJECTED")
	case PuzzleCleared:
		return i18n.Get("PUZZLE_CLEARED", ev.Text)
	case SessionWon:
		return i18n.Get("SESSION_WON", timer.Format(ev.Remaining))
	case SessionLost:
		return i18n.Get("SESSION_LOST")
	case RoomEntered:
		return i18n.Get("ROOM_ENTERED", ev.RoomName)
	case TransitionBlocked:
		return ev.Text
	case HintShown:
		return i18n.Get("HINT", ev.Text)
	case SessionStarted:
		return i18n.Get("SESSION_STARTED", timer.Format(ev.Remaining))
	case SessionReset:
		return i18n.Get("SESSION_RESET")
	case SessionRestored:
		return i18n.Get("SESSION_RESTORED", ev.RoomName)
	}
	return ""
}
