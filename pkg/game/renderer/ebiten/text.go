package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"escaperoom/pkg/game/renderer"
)

// styleColor maps a markup style to the palette
func styleColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleRoom:
		return colorRoom
	case renderer.StyleItem:
		return colorItem
	case renderer.StyleAction, renderer.StyleActionShort:
		return colorAction
	case renderer.StyleDenied:
		return colorDenied
	case renderer.StyleSubtle:
		return colorSubtle
	case renderer.StyleTimer:
		return colorTimer
	case renderer.StyleTimerLow:
		return colorTimerLow
	case renderer.StyleSolved:
		return colorSolved
	default:
		return colorText
	}
}

// drawColoredText draws a single run of text with its top-left at x, y
func drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawMarkup draws msg with each markup segment in its own color and
// returns the x position after the last segment
func drawMarkup(screen *ebiten.Image, msg string, x, y float64, face *text.GoTextFace) float64 {
	for _, seg := range renderer.Segments(msg) {
		if seg.Text == "" {
			continue
		}
		drawColoredText(screen, seg.Text, x, y, styleColor(seg.Style), face)
		w, _ := text.Measure(seg.Text, face, 0)
		x += w
	}
	return x
}

// lineHeight is the vertical advance for one line in face
func lineHeight(face *text.GoTextFace) float64 {
	return face.Size * lineSpacing
}

// wrap breaks s into lines no wider than maxWidth as measured in face.
// A single word wider than maxWidth gets a line of its own.
func wrap(s string, face *text.GoTextFace, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if w, _ := text.Measure(renderer.Strip(candidate), face, 0); w > maxWidth && line != "" {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// splitLines splits a message on newlines, dropping a trailing empty line
func splitLines(msg string) []string {
	return strings.Split(strings.TrimRight(msg, "\n"), "\n")
}
