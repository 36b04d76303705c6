package renderer

import (
	"escaperoom/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleTimer
	StyleTimerLow
	StyleSolved
)

// Renderer defines the interface for game rendering backends.
// Render is called with a detached snapshot after every state change and
// must not call back into the controller.
type Renderer interface {
	Render(snap state.Snapshot)
}

// Styler applies a TextStyle to text. Terminal renderers return ANSI
// sequences, graphical ones may return the text unchanged.
type Styler interface {
	StyleText(text string, style TextStyle) string
}

// Nop ignores every frame
type Nop struct{}

func (Nop) Render(state.Snapshot) {}

// Plain is a Styler that never decorates text
type Plain struct{}

func (Plain) StyleText(text string, _ TextStyle) string { return text }
