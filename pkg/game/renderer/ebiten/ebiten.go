package ebiten

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/game/timer"
)

var _ renderer.Renderer = (*Window)(nil)

// New creates a window renderer. Attach must be called before Run.
func New(opts Options) (*Window, error) {
	if opts.Tick <= 0 {
		opts.Tick = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	w := &Window{
		messages:   opts.Messages,
		logger:     opts.Logger,
		tickFrames: framesPerTick(opts.Tick, ebiten.TPS()),
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	if err := w.loadFonts(); err != nil {
		return nil, err
	}
	return w, nil
}

// Attach connects the command set driven by keyboard input
func (w *Window) Attach(cmds *gameplay.Commands) {
	w.commands = cmds
}

// Render stores the frame for the next Draw. A fresh win starts the
// confetti.
func (w *Window) Render(snap state.Snapshot) {
	w.snapshotMutex.Lock()
	defer w.snapshotMutex.Unlock()

	won := snap.Outcome == state.OutcomeWon
	wasWon := w.hasSnapshot && w.snapshot.Outcome == state.OutcomeWon
	if won && !wasWon {
		w.confetti = spawnConfetti(w.rng, windowWidth)
	}
	if !won {
		w.confetti = nil
	}
	w.snapshot = snap
	w.hasSnapshot = true
}

// Run opens the window and blocks until the player quits
func (w *Window) Run() error {
	if w.commands == nil {
		return errors.New("window has no commands attached")
	}
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(i18n.Get("TITLE"))
	w.logger.Info("window opened", "tick_frames", w.tickFrames)
	w.commands.Controller.Render()
	return ebiten.RunGame(w)
}

// Update handles input and advances the countdown
func (w *Window) Update() error {
	w.handleInput()
	if w.quit {
		return ebiten.Termination
	}

	if w.commands.Controller.Active() {
		w.frames++
		if w.frames >= w.tickFrames {
			w.frames = 0
			w.commands.Controller.Tick()
		}
	} else {
		w.frames = 0
	}

	w.snapshotMutex.Lock()
	w.confetti = stepConfetti(w.confetti, windowHeight)
	w.snapshotMutex.Unlock()
	return nil
}

// Layout returns the game's logical screen size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

// Draw renders the last snapshot to the screen
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	w.snapshotMutex.RLock()
	snap, ok := w.snapshot, w.hasSnapshot
	w.snapshotMutex.RUnlock()
	if !ok {
		return
	}

	y := w.drawHeader(screen, snap)
	y = w.drawRoom(screen, snap, y)
	w.drawGatePanel(screen, snap)
	w.drawMessages(screen)
	w.drawPrompt(screen)
	if snap.Finished() {
		w.drawBanner(screen, snap, y)
	}

	w.snapshotMutex.RLock()
	w.drawConfetti(screen)
	w.snapshotMutex.RUnlock()
}

func (w *Window) drawHeader(screen *ebiten.Image, snap state.Snapshot) float64 {
	title := w.getTitleFontFace()
	drawColoredText(screen, snap.Room.Name, margin, margin, colorRoom, title)

	style := renderer.StyleTimer
	switch {
	case snap.Timer == timer.Stopped:
		style = renderer.StyleSolved
	case snap.Timer == timer.Expired, snap.Started && snap.Remaining <= renderer.TimerLowSeconds:
		style = renderer.StyleTimerLow
	}
	clock := timer.Format(snap.Remaining)
	cw, _ := text.Measure(clock, title, 0)
	drawColoredText(screen, clock, windowWidth-margin-cw, margin, styleColor(style), title)

	return margin + lineHeight(title) + 8
}

// drawRoom draws the description, pending puzzle and item lists in the
// left column and returns the y below them
func (w *Window) drawRoom(screen *ebiten.Image, snap state.Snapshot, y float64) float64 {
	face := w.getSansFontFace()
	lh := lineHeight(face)
	column := float64(windowWidth)*0.6 - margin

	for _, line := range wrap(snap.Room.Description, face, column) {
		drawColoredText(screen, line, margin, y, colorText, face)
		y += lh
	}
	y += lh / 2

	if !snap.Started {
		drawMarkup(screen, i18n.Get("NOT_STARTED"), margin, y, face)
		return y + lh
	}

	if gate := snap.Room.Gate; gate != nil {
		x := drawMarkup(screen, i18n.Get("PUZZLE")+": ", margin, y, face)
		drawColoredText(screen, gate.Title(), x, y, colorAction, face)
		y += lh
		if cipher, ok := gate.(entities.CipherGate); ok {
			x := drawMarkup(screen, i18n.Get("CIPHERTEXT")+" ", margin, y, face)
			drawColoredText(screen, cipher.Ciphertext, x, y, colorItem, w.getMonoFontFace())
			y += lh
		}
	}

	if len(snap.Room.Side) > 0 {
		drawColoredText(screen, i18n.Get("SIDE_PUZZLES")+":", margin, y, colorSubtle, face)
		y += lh
		for _, p := range snap.Room.Side {
			col := colorAction
			if snap.Solved(p.ID) {
				col = colorSolved
			}
			drawColoredText(screen, "  "+p.Gate.Title()+" [try "+string(p.ID)+"]", margin, y, col, face)
			y += lh
			for _, line := range wrap(p.Prompt, face, column-2*margin) {
				drawColoredText(screen, "    "+line, margin, y, colorSubtle, face)
				y += lh
			}
		}
	}

	for _, item := range snap.Here {
		drawMarkup(screen, i18n.Get("ROOM_ITEMS", "ITEM{"+item.Name+"}"), margin, y, face)
		y += lh
	}

	y += lh / 2
	x := drawMarkup(screen, i18n.Get("INVENTORY")+": ", margin, y, face)
	if len(snap.Inventory) == 0 {
		drawColoredText(screen, i18n.Get("NO_ITEMS"), x, y, colorSubtle, face)
	}
	y += lh
	for _, item := range snap.Inventory {
		drawColoredText(screen, "  "+item.Icon+" "+item.Name, margin, y, colorItem, face)
		y += lh
	}
	if snap.HintsUsed > 0 {
		drawColoredText(screen, i18n.GetN("HINTS_USED", "HINTS_USED_PLURAL", snap.HintsUsed, snap.HintsUsed), margin, y, colorSubtle, face)
		y += lh
	}
	return y
}

// drawGatePanel lists every gate and whether it is solved
func (w *Window) drawGatePanel(screen *ebiten.Image, snap state.Snapshot) {
	face := w.getSansFontFace()
	lh := lineHeight(face)
	x := float64(windowWidth) * 0.62
	y := margin + lineHeight(w.getTitleFontFace()) + 8
	width := float64(windowWidth) - x - margin
	height := lh * float64(len(snap.Gates)+2)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), colorPanelBackground, false)

	x += 10
	y += lh / 2
	drawColoredText(screen, i18n.Get("STATUS"), x, y, colorSubtle, face)
	y += lh
	for _, g := range snap.Gates {
		col, status := colorDenied, i18n.Get("UNSOLVED")
		if g.Cleared {
			col, status = colorSolved, i18n.Get("SOLVED")
		}
		title := g.Title
		if g.Optional {
			title = "  " + title
		}
		drawColoredText(screen, title, x, y, colorText, face)
		sw, _ := text.Measure(status, face, 0)
		drawColoredText(screen, status, x+width-20-sw, y, col, face)
		y += lh
	}
}

// drawMessages draws the message log above the prompt
func (w *Window) drawMessages(screen *ebiten.Image) {
	if w.messages == nil {
		return
	}
	face := w.getSansFontFace()
	lh := lineHeight(face)

	var lines []string
	for _, msg := range w.messages.Lines() {
		lines = append(lines, splitLines(msg)...)
	}

	top := float64(windowHeight) - margin - lh*float64(len(lines)+2)
	vector.DrawFilledRect(screen, 0, float32(top-lh/2), windowWidth, float32(windowHeight)-float32(top-lh/2), colorPanelBackground, false)

	y := top
	for _, line := range lines {
		drawMarkup(screen, line, margin, y, face)
		y += lh
	}
}

func (w *Window) drawPrompt(screen *ebiten.Image) {
	face := w.getMonoFontFace()
	y := float64(windowHeight) - margin - lineHeight(face)
	cursor := ""
	if (time.Now().UnixMilli()/500)%2 == 0 {
		cursor = "_"
	}
	drawColoredText(screen, "> "+string(w.typed)+cursor, margin, y, colorPrompt, face)
}

func (w *Window) drawBanner(screen *ebiten.Image, snap state.Snapshot, y float64) {
	face := w.getTitleFontFace()
	msg, col := i18n.Get("TRAPPED"), colorDenied
	if snap.Outcome == state.OutcomeWon {
		msg, col = i18n.Get("ESCAPED"), colorSolved
	}
	msg = fmt.Sprintf("*** %s ***", msg)
	bw, _ := text.Measure(msg, face, 0)
	drawColoredText(screen, msg, (windowWidth-bw)/2, y+lineHeight(face), col, face)
}
