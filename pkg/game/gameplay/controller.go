// Package gameplay provides the game controller: the only code that mutates
// a session. Every exported operation runs to completion, and afterwards
// the renderer sees a fresh snapshot and the autosave target a fresh blob.
package gameplay

import (
	"log/slog"

	"github.com/pkg/errors"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/notify"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/rooms"
	"escaperoom/pkg/game/save"
	"escaperoom/pkg/game/setup"
	"escaperoom/pkg/game/state"
)

// ErrAlreadyStarted is returned by Start on a session that was started before
var ErrAlreadyStarted = errors.New("session already started")

// Saver receives the serialized session after every change
type Saver interface {
	Save(blob []byte) error
}

// Options wires the controller to the outside world. Nil fields are
// replaced by no-op implementations; a nil Saver disables autosave.
type Options struct {
	Renderer renderer.Renderer
	Notifier notify.Notifier
	Saver    Saver
	Logger   *slog.Logger
}

// Controller owns one session at a time. It is not safe for concurrent use:
// the host must call it from a single event loop.
type Controller struct {
	layout  setup.Layout
	session *state.Session

	renderer renderer.Renderer
	notifier notify.Notifier
	saver    Saver
	logger   *slog.Logger
}

// New validates layout and creates a controller holding an unstarted session
func New(layout setup.Layout, opts Options) (*Controller, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	session, err := layout.NewSession()
	if err != nil {
		return nil, errors.Wrap(err, "new session")
	}

	c := &Controller{
		layout:   layout,
		session:  session,
		renderer: opts.Renderer,
		notifier: opts.Notifier,
		saver:    opts.Saver,
		logger:   opts.Logger,
	}
	if c.renderer == nil {
		c.renderer = renderer.Nop{}
	}
	if c.notifier == nil {
		c.notifier = notify.Nop{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c, nil
}

// Layout returns the static configuration the controller was built with
func (c *Controller) Layout() setup.Layout {
	return c.layout
}

// Snapshot returns a detached copy of the session
func (c *Controller) Snapshot() state.Snapshot {
	snap := c.session.Snapshot()
	for _, id := range snap.Room.Items {
		if item, ok := c.layout.Item(id); ok && !c.session.Inventory.Has(id) {
			snap.Here = append(snap.Here, item)
		}
	}
	return snap
}

// Active reports whether the session is started and not finished
func (c *Controller) Active() bool {
	return c.session.Active()
}

// Held returns the held item matching ref
func (c *Controller) Held(ref string) (world.Item, bool) {
	return c.session.Inventory.Find(ref)
}

// Render pushes the current snapshot to the renderer without changing anything
func (c *Controller) Render() {
	c.renderer.Render(c.Snapshot())
}

// changed renders and autosaves after a mutation
func (c *Controller) changed() {
	c.Render()
	c.autosave()
}

func (c *Controller) autosave() {
	if c.saver == nil {
		return
	}
	blob, err := save.Encode(c.session)
	if err != nil {
		c.logger.Error("encode session for autosave", "error", err)
		return
	}
	if err := c.saver.Save(blob); err != nil {
		c.logger.Warn("autosave failed", "error", err)
	}
}

func (c *Controller) notify(ev notify.Event) {
	if ev.Room == "" {
		ev.Room = c.session.Current
	}
	if ev.RoomName == "" {
		if room, err := c.session.Graph.Get(ev.Room); err == nil {
			ev.RoomName = room.Name
		}
	}
	ev.Remaining = c.session.Timer.Remaining()
	c.notifier.Notify(ev)
}

// currentRoom returns the room the player is in. A missing room means the
// session was built from a broken layout, which New rules out.
func (c *Controller) currentRoom() (rooms.Room, bool) {
	room, err := c.session.Room()
	if err != nil {
		c.logger.Error("current room", "room", c.session.Current, "error", err)
		return rooms.Room{}, false
	}
	return room, true
}
