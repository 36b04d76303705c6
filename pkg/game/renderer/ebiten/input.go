package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/gameplay"
)

// hotkeys are looked up in the same binding table as typed commands
var hotkeys = map[ebiten.Key]string{
	ebiten.KeyF1:     "f1",
	ebiten.KeyF5:     "f5",
	ebiten.KeyEscape: "escape",
}

// handleInput collects typed characters and fires hotkeys
func (w *Window) handleInput() {
	for key, code := range hotkeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if act, ok := engineinput.Lookup(code); ok {
			w.apply(w.commands.Execute(engineinput.Intent{Action: act}))
		}
	}

	w.typed = ebiten.AppendInputChars(w.typed)
	if len(w.typed) > maxTypedRunes {
		w.typed = w.typed[:maxTypedRunes]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(w.typed) > 0 {
		w.typed = w.typed[:len(w.typed)-1]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		line := string(w.typed)
		w.typed = w.typed[:0]
		w.apply(w.commands.ExecuteLine(line))
	}
}

// apply shows command output and redraws
func (w *Window) apply(res gameplay.Result) {
	if w.messages != nil {
		for _, line := range res.Lines {
			w.messages.Add(line)
		}
	}
	if res.Quit {
		w.quit = true
		return
	}
	w.commands.Controller.Render()
}
