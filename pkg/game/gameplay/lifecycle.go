package gameplay

import (
	"escaperoom/pkg/game/notify"
	"escaperoom/pkg/game/save"
	"escaperoom/pkg/game/state"
)

// Start begins the session: the player stands in the start room and the
// countdown runs. A session can only be started once per reset.
func (c *Controller) Start() error {
	if c.session.Started {
		return ErrAlreadyStarted
	}
	c.session.Started = true
	c.session.Current = c.layout.Start
	c.session.Timer.Start()

	c.notify(notify.Event{Kind: notify.SessionStarted})
	c.notify(notify.Event{Kind: notify.RoomEntered})
	if c.session.Timer.Remaining() == 0 {
		c.lose()
	}
	c.changed()
	return nil
}

// Tick takes one second off the countdown. The tick that reaches zero loses
// the session; ticks on an inactive session do nothing.
func (c *Controller) Tick() {
	if !c.session.Active() {
		return
	}
	if c.session.Timer.Tick() {
		c.lose()
	}
	c.changed()
}

func (c *Controller) lose() {
	c.session.Outcome = state.OutcomeLost
	c.notify(notify.Event{Kind: notify.SessionLost})
	c.logger.Info("session lost", "room", c.session.Current)
}

// Reset discards the session and builds a fresh, unstarted one from the
// layout. It works in every state.
func (c *Controller) Reset() {
	session, err := c.layout.NewSession()
	if err != nil {
		// New validated the layout, so this cannot happen.
		c.logger.Error("reset session", "error", err)
		return
	}
	c.session = session
	c.notify(notify.Event{Kind: notify.SessionReset})
	c.changed()
}

// Serialize encodes the session
func (c *Controller) Serialize() ([]byte, error) {
	return save.Encode(c.session)
}

// Restore replaces the session with one decoded from blob. On error the
// live session is left exactly as it was.
func (c *Controller) Restore(blob []byte) error {
	session, err := save.Decode(c.layout, blob)
	if err != nil {
		return err
	}
	c.session = session
	c.logger.Info("session restored",
		"room", session.Current,
		"remaining", session.Timer.Remaining(),
		"outcome", session.Outcome.String())
	c.notify(notify.Event{Kind: notify.SessionRestored})
	c.changed()
	return nil
}
