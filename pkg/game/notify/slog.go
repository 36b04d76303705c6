package notify

import (
	"context"
	"log/slog"
)

// Slog writes one structured log line per event
type Slog struct {
	Logger *slog.Logger
}

func (s Slog) Notify(ev Event) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []slog.Attr{slog.String("kind", string(ev.Kind))}
	if ev.Room != "" {
		attrs = append(attrs, slog.String("room", string(ev.Room)))
	}
	if ev.Item != "" {
		attrs = append(attrs, slog.String("item", string(ev.Item)))
	}
	if ev.Text != "" {
		attrs = append(attrs, slog.String("text", ev.Text))
	}
	attrs = append(attrs, slog.Int("remaining", ev.Remaining))

	level := slog.LevelInfo
	if ev.Kind == PuzzleRejected || ev.Kind == TransitionBlocked || ev.Kind == ItemNotHere {
		level = slog.LevelDebug
	}
	logger.LogAttrs(context.Background(), level, "game event", attrs...)
}
