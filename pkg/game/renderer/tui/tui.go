// Package tui renders the game as text frames on a terminal.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/rodaine/table"

	"escaperoom/pkg/engine/terminal"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/notify"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/game/timer"
)

const clearScreen = "\033[H\033[2J"

var _ renderer.Renderer = (*TUIRenderer)(nil)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out      io.Writer
	messages *notify.Log
	clear    bool

	colorCell        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorTimer       color.Style
	colorTimerLow    color.Style
	colorSolved      color.Style
}

// New creates a TUI renderer writing to out. messages may be nil.
// The screen is only cleared between frames when out is a terminal.
func New(out io.Writer, messages *notify.Log) *TUIRenderer {
	t := &TUIRenderer{
		out:      out,
		messages: messages,
		clear:    terminal.IsTerminal(out),
	}
	t.Init()
	return t
}

// Init initializes the color styles
func (t *TUIRenderer) Init() {
	t.colorCell = color.Style{color.FgCyan, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgYellow}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTimer = color.Style{color.FgGreen, color.OpBold}
	t.colorTimerLow = color.Style{color.FgRed, color.OpBold, color.OpBlink}
	t.colorSolved = color.Style{color.FgGreen}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorCell.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleTimer:
		return t.colorTimer.Sprint(text)
	case renderer.StyleTimerLow:
		return t.colorTimerLow.Sprint(text)
	case renderer.StyleSolved:
		return t.colorSolved.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string) string {
	return renderer.Format(msg, t)
}

// PrintLines writes command output directly, outside of a frame
func (t *TUIRenderer) PrintLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(t.out, t.FormatText(line))
	}
}

// Render draws a complete frame
func (t *TUIRenderer) Render(snap state.Snapshot) {
	if t.clear {
		fmt.Fprint(t.out, clearScreen)
	}

	t.printHeader(snap)
	t.printRoom(snap)
	t.printStatusBar(snap)
	t.printPuzzles(snap)
	if snap.Finished() {
		t.printBanner(snap)
	}
	t.printMessagesPane()

	fmt.Fprint(t.out, "\n> ")
}

func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(fmt.Sprintf(msg, a...)))
}

// printHeader prints the room name with the countdown on the right
func (t *TUIRenderer) printHeader(snap state.Snapshot) {
	width := terminal.GetWidth(t.out)
	left := t.colorCell.Sprint(snap.Room.Name)
	right := i18n.Get("TIME_LEFT") + " " + t.timer(snap)

	pad := width - visibleLen(left) - visibleLen(right)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintln(t.out, left+strings.Repeat(" ", pad)+right)
	fmt.Fprintln(t.out)
}

func (t *TUIRenderer) timer(snap state.Snapshot) string {
	clock := timer.Format(snap.Remaining)
	switch {
	case snap.Timer == timer.Stopped:
		return t.StyleText(clock, renderer.StyleSolved)
	case snap.Timer == timer.Expired, snap.Started && snap.Remaining <= renderer.TimerLowSeconds:
		return t.StyleText(clock, renderer.StyleTimerLow)
	default:
		return t.StyleText(clock, renderer.StyleTimer)
	}
}

// printRoom prints the description, pending puzzle and loose items
func (t *TUIRenderer) printRoom(snap state.Snapshot) {
	fmt.Fprintln(t.out, snap.Room.Description)

	if !snap.Started {
		fmt.Fprintln(t.out)
		t.printString("%s\n", i18n.Get("NOT_STARTED"))
		return
	}

	if gate := snap.Room.Gate; gate != nil {
		fmt.Fprintln(t.out)
		fmt.Fprintf(t.out, "%s %s\n", t.colorSubtle.Sprint(i18n.Get("PUZZLE")+":"), t.colorAction.Sprint(gate.Title()))
		if cipher, ok := gate.(entities.CipherGate); ok {
			fmt.Fprintf(t.out, "%s %s\n", i18n.Get("CIPHERTEXT"), t.colorItem.Sprint(cipher.Ciphertext))
		}
	}

	if len(snap.Room.Side) > 0 {
		fmt.Fprintln(t.out)
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(i18n.Get("SIDE_PUZZLES")+":"))
		for _, p := range snap.Room.Side {
			title := t.colorAction.Sprint(p.Gate.Title())
			if snap.Solved(p.ID) {
				title = t.colorSolved.Sprint(p.Gate.Title() + " (" + i18n.Get("SOLVED") + ")")
			}
			fmt.Fprintf(t.out, "  %s %s %s\n", title, t.colorSubtle.Sprint("[try "+string(p.ID)+"]"), p.Prompt)
		}
	}

	if len(snap.Here) > 0 {
		fmt.Fprintln(t.out)
		t.printString("%s\n", i18n.Get("ROOM_ITEMS", joinItems(snap.Here)))
	}
}

func joinItems(items []world.Item) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, "ITEM{"+item.Name+"}")
	}
	return strings.Join(names, ", ")
}

// printStatusBar renders the inventory status bar
func (t *TUIRenderer) printStatusBar(snap state.Snapshot) {
	fmt.Fprintln(t.out)
	fmt.Fprint(t.out, t.colorSubtle.Sprint(i18n.Get("INVENTORY")+": "))
	if len(snap.Inventory) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("("+i18n.Get("NO_ITEMS")+")"))
	} else {
		items := []string{}
		for _, item := range snap.Inventory {
			name := item.Name
			if item.Icon != "" {
				name = item.Icon + " " + name
			}
			items = append(items, t.colorItem.Sprint(name))
		}
		fmt.Fprintln(t.out, strings.Join(items, t.colorSubtle.Sprint(", ")))
	}
	if snap.HintsUsed > 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(i18n.GetN("HINTS_USED", "HINTS_USED_PLURAL", snap.HintsUsed, snap.HintsUsed)))
	}
}

// printPuzzles renders the puzzle status panel
func (t *TUIRenderer) printPuzzles(snap state.Snapshot) {
	if len(snap.Gates) == 0 {
		return
	}
	fmt.Fprintln(t.out)
	tbl := table.New(i18n.Get("ROOM"), i18n.Get("PUZZLE"), i18n.Get("STATUS")).
		WithHeaderFormatter(t.colorSubtle.Sprintf).
		WithWriter(t.out)
	for _, g := range snap.Gates {
		status := t.colorDenied.Sprint(i18n.Get("UNSOLVED"))
		if g.Cleared {
			status = t.colorSolved.Sprint(i18n.Get("SOLVED"))
		}
		title := g.Title
		if g.Optional {
			title += " (" + i18n.Get("OPTIONAL") + ")"
		}
		tbl.AddRow(string(g.Room), title, status)
	}
	tbl.Print()
}

func (t *TUIRenderer) printBanner(snap state.Snapshot) {
	text := i18n.Get("TRAPPED")
	style := t.colorDenied
	if snap.Outcome == state.OutcomeWon {
		text = i18n.Get("ESCAPED")
		style = t.colorTimer
	}
	fmt.Fprintln(t.out)
	t.printStringCenter(style.Sprint("*** " + text + " ***"))
	fmt.Fprintln(t.out)
}

// printStringCenter prints a string centered
func (t *TUIRenderer) printStringCenter(s string) {
	width := terminal.GetWidth(t.out)
	pad := (width - visibleLen(s)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprint(t.out, strings.Repeat(" ", pad)+s)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane() {
	if t.messages == nil {
		return
	}
	width := terminal.GetWidth(t.out)

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	lines := t.messages.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range lines {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText(msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// visibleLen is the printed width of s, ignoring color codes
func visibleLen(s string) int {
	return len([]rune(color.ClearCode(s)))
}
