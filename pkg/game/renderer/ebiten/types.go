// Package ebiten provides an Ebiten-based graphical front end. The window
// owns the game loop: typed lines, hotkeys and countdown ticks are all
// handled from Update, so the controller is only ever touched from one
// goroutine.
package ebiten

import (
	"image/color"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/notify"
	"escaperoom/pkg/game/state"
)

// particle is one piece of victory confetti
type particle struct {
	x, y   float64
	vx, vy float64
	color  color.RGBA
}

// Window is the Ebiten renderer and input source
type Window struct {
	messages *notify.Log
	commands *gameplay.Commands
	logger   *slog.Logger

	// Countdown pacing, in frames
	tickFrames int
	frames     int

	// Line being typed at the prompt
	typed []rune

	// Last frame handed to Render
	snapshot      state.Snapshot
	hasSnapshot   bool
	snapshotMutex sync.RWMutex

	confetti []particle
	rng      *rand.Rand

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for the prompt and ciphertext
	sansFontSource *text.GoTextFaceSource // Sans-serif font for UI text
	boldFontSource *text.GoTextFaceSource // Bold for titles and banners

	// Cached font faces
	cachedMonoFace  *text.GoTextFace
	cachedSansFace  *text.GoTextFace
	cachedTitleFace *text.GoTextFace

	quit bool
}

// Options configures a Window
type Options struct {
	Messages *notify.Log   // Message pane contents; may be nil
	Tick     time.Duration // Wall time per countdown second
	Logger   *slog.Logger
}
