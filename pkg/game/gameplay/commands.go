package gameplay

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rodaine/table"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/save"
)

// Commands maps player intents onto the controller and the host's save
// targets. Both front ends drive the game through it.
type Commands struct {
	Controller *Controller
	Slot       *save.Slot // Nil when saving is disabled
}

// Result is what a command produced for the player
type Result struct {
	Lines []string // Markup-formatted text; game events go through the notifier instead
	Quit  bool
}

func lines(s ...string) Result {
	return Result{Lines: s}
}

// ExecuteLine parses and runs one typed line
func (c *Commands) ExecuteLine(line string) Result {
	in, err := input.Parse(line)
	if err != nil {
		return lines(i18n.Get("UNKNOWN_COMMAND"))
	}
	return c.Execute(in)
}

// Execute runs one intent
func (c *Commands) Execute(in input.Intent) Result {
	ctrl := c.Controller
	switch in.Action {
	case input.ActionNone:
		return Result{}

	case input.ActionStart:
		if err := ctrl.Start(); errors.Is(err, ErrAlreadyStarted) {
			return lines(i18n.Get("ALREADY_STARTED"))
		}
		return Result{}

	case input.ActionReset:
		ctrl.Reset()
		return Result{}

	case input.ActionQuit:
		return Result{Lines: []string{i18n.Get("GOODBYE")}, Quit: true}

	case input.ActionHelp:
		return help(in.Arg())

	case input.ActionLook:
		ctrl.Render()
		return Result{}

	case input.ActionInventory:
		return lines(c.inventory())

	case input.ActionRead:
		return c.read(in.Arg())

	case input.ActionSave:
		return c.save()
	case input.ActionLoad:
		return c.load()
	case input.ActionSlots:
		return c.slots()
	case input.ActionExport:
		return c.export(in.Arg())
	case input.ActionImport:
		return c.importFile(in.Arg())
	case input.ActionWipe:
		return c.wipe()
	}

	// Everything below needs a running session.
	if msg, ok := c.inactive(); ok {
		return lines(msg)
	}

	switch in.Action {
	case input.ActionAdvance:
		ctrl.AttemptTransition()
	case input.ActionSolve:
		answer := in.Arg()
		if answer == "" {
			return lines(i18n.Get("USAGE", "solve <answer>"))
		}
		if ctrl.Submit(answer) == entities.VerdictIgnored {
			return lines(i18n.Get("NOTHING_TO_SOLVE"))
		}
	case input.ActionTry:
		return c.try(in.Args)
	case input.ActionTake:
		ctrl.PickUp(in.Arg())
	case input.ActionHint:
		if _, ok := ctrl.UseHint(); !ok {
			return lines(i18n.Get("NO_HINT"))
		}
	}
	return Result{}
}

// help lists the commands, or every word bound to one command
func help(word string) Result {
	if word == "" {
		return lines(i18n.Get("HELP"))
	}
	act, ok := input.Lookup(strings.ToLower(word))
	if !ok {
		return lines(i18n.Get("UNKNOWN_COMMAND"))
	}
	codes := input.GetBindingsByAction()[act]
	return lines(fmt.Sprintf("ACTION{%s}: %s", input.ActionName(act), strings.Join(codes, ", ")))
}

// inactive explains why play commands are not accepted right now
func (c *Commands) inactive() (string, bool) {
	snap := c.Controller.Snapshot()
	switch {
	case !snap.Started:
		return i18n.Get("NOT_STARTED"), true
	case snap.Finished():
		return i18n.Get("GAME_OVER"), true
	}
	return "", false
}

func (c *Commands) inventory() string {
	items := c.Controller.Snapshot().Inventory
	if len(items) == 0 {
		return i18n.Get("NO_ITEMS")
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, "ITEM{"+itemLabel(item)+"}")
	}
	return i18n.GetN("ITEMS_HELD", "ITEMS_HELD_PLURAL", len(items), len(items)) + ": " + strings.Join(names, ", ")
}

// try answers a side puzzle: the first word names it, the rest is the answer
func (c *Commands) try(args []string) Result {
	if len(args) < 2 {
		return lines(i18n.Get("USAGE", "try <puzzle> <answer>"))
	}
	ref := args[0]
	snap := c.Controller.Snapshot()
	p, ok := snap.Room.FindSide(ref)
	if !ok {
		return lines(i18n.Get("NO_SUCH_PUZZLE", ref))
	}
	if snap.Solved(p.ID) {
		return lines(i18n.Get("ALREADY_SOLVED", p.Gate.Title()))
	}
	c.Controller.SolveSide(string(p.ID), strings.Join(args[1:], " "))
	return Result{}
}

func itemLabel(item world.Item) string {
	if item.Icon == "" {
		return item.Name
	}
	return item.Icon + " " + item.Name
}

func (c *Commands) read(ref string) Result {
	if ref == "" {
		return lines(i18n.Get("USAGE", "read <item>"))
	}
	item, ok := c.Controller.Held(ref)
	if !ok {
		return lines(i18n.Get("NOTE_NOT_HELD", ref))
	}
	if item.Kind != world.KindNote {
		return lines(i18n.Get("NOT_A_NOTE", item.Name))
	}
	return lines(i18n.Get("NOTE", item.Name, item.Note))
}

func (c *Commands) save() Result {
	if c.Slot == nil {
		return lines(i18n.Get("NO_STORE"))
	}
	blob, err := c.Controller.Serialize()
	if err == nil {
		err = c.Slot.Save(blob)
	}
	if err != nil {
		c.Controller.logger.Error("save", "slot", c.Slot.Name, "error", err)
		return lines(i18n.Get("NO_STORE"))
	}
	return lines(i18n.Get("SAVED", c.Slot.Name))
}

func (c *Commands) load() Result {
	if c.Slot == nil {
		return lines(i18n.Get("NO_STORE"))
	}
	blob, err := c.Slot.Load()
	if errors.Is(err, save.ErrNoSave) {
		return lines(i18n.Get("NO_SAVE", c.Slot.Name))
	}
	if err == nil {
		err = c.Controller.Restore(blob)
	}
	if err != nil {
		c.Controller.logger.Warn("load", "slot", c.Slot.Name, "error", err)
		return lines(i18n.Get("INVALID_SAVE"))
	}
	return lines(i18n.Get("LOADED", c.Slot.Name))
}

func (c *Commands) wipe() Result {
	if c.Slot == nil {
		return lines(i18n.Get("NO_STORE"))
	}
	if err := c.Slot.Clear(); err != nil {
		c.Controller.logger.Error("wipe", "slot", c.Slot.Name, "error", err)
		return lines(i18n.Get("NO_STORE"))
	}
	return lines(i18n.Get("WIPED", c.Slot.Name))
}

func (c *Commands) slots() Result {
	if c.Slot == nil {
		return lines(i18n.Get("NO_STORE"))
	}
	infos, err := c.Slot.List()
	if err != nil {
		c.Controller.logger.Error("list slots", "error", err)
		return lines(i18n.Get("NO_STORE"))
	}
	if len(infos) == 0 {
		return lines(i18n.Get("NO_SLOTS"))
	}

	var buf bytes.Buffer
	tbl := table.New(i18n.Get("SLOT"), i18n.Get("SIZE"), i18n.Get("UPDATED")).WithWriter(&buf)
	for _, info := range infos {
		tbl.AddRow(info.Name, info.Size, info.Updated().Local().Format(time.DateTime))
	}
	tbl.Print()
	return lines(strings.TrimRight(buf.String(), "\n"))
}

func (c *Commands) export(path string) Result {
	if path == "" {
		return lines(i18n.Get("USAGE", "export <file>"))
	}
	blob, err := c.Controller.Serialize()
	if err == nil {
		err = save.Export(path, blob)
	}
	if err != nil {
		c.Controller.logger.Error("export", "path", path, "error", err)
		return lines(i18n.Get("INVALID_SAVE"))
	}
	return lines(i18n.Get("EXPORTED", path))
}

func (c *Commands) importFile(path string) Result {
	if path == "" {
		return lines(i18n.Get("USAGE", "import <file>"))
	}
	blob, err := save.Import(path)
	if err == nil {
		err = c.Controller.Restore(blob)
	}
	if err != nil {
		c.Controller.logger.Warn("import", "path", path, "error", err)
		return lines(i18n.Get("INVALID_SAVE"))
	}
	return lines(i18n.Get("IMPORTED"))
}
