package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the bundled Go fonts
func (w *Window) loadFonts() error {
	var err error
	if w.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return errors.Wrap(err, "load mono font")
	}
	if w.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return errors.Wrap(err, "load sans font")
	}
	if w.boldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return errors.Wrap(err, "load bold font")
	}
	return nil
}

// getMonoFontFace returns a cached monospace font face
func (w *Window) getMonoFontFace() *text.GoTextFace {
	if w.cachedMonoFace == nil {
		w.cachedMonoFace = &text.GoTextFace{Source: w.monoFontSource, Size: uiFontSize}
	}
	return w.cachedMonoFace
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (w *Window) getSansFontFace() *text.GoTextFace {
	if w.cachedSansFace == nil {
		w.cachedSansFace = &text.GoTextFace{Source: w.sansFontSource, Size: uiFontSize}
	}
	return w.cachedSansFace
}

// getTitleFontFace returns a cached bold face for the room title and banners
func (w *Window) getTitleFontFace() *text.GoTextFace {
	if w.cachedTitleFace == nil {
		w.cachedTitleFace = &text.GoTextFace{Source: w.boldFontSource, Size: titleSize}
	}
	return w.cachedTitleFace
}
