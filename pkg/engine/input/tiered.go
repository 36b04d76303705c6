package input

import (
	"sort"
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Session
	ActionStart
	ActionReset
	ActionQuit

	// Play
	ActionAdvance
	ActionSolve
	ActionTry
	ActionTake
	ActionRead
	ActionLook
	ActionInventory
	ActionHint

	// Save data
	ActionSave
	ActionLoad
	ActionSlots
	ActionExport
	ActionImport
	ActionWipe

	ActionHelp
)

// bindings maps command words and key names to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"start": ActionStart,
	"begin": ActionStart,

	"reset":   ActionReset,
	"restart": ActionReset,
	"f5":      ActionReset,

	"quit":   ActionQuit,
	"q":      ActionQuit,
	"exit":   ActionQuit,
	"escape": ActionQuit,

	"go":      ActionAdvance,
	"next":    ActionAdvance,
	"n":       ActionAdvance,
	"advance": ActionAdvance,

	"solve":  ActionSolve,
	"enter":  ActionSolve,
	"answer": ActionSolve,

	"try":     ActionTry,
	"attempt": ActionTry,

	"take":    ActionTake,
	"inspect": ActionTake,
	"search":  ActionTake,

	"read": ActionRead,

	"look": ActionLook,
	"l":    ActionLook,

	"inventory": ActionInventory,
	"inv":       ActionInventory,
	"i":         ActionInventory,

	"hint": ActionHint,
	"?":    ActionHint,

	"save":   ActionSave,
	"load":   ActionLoad,
	"slots":  ActionSlots,
	"export": ActionExport,
	"import": ActionImport,
	"wipe":   ActionWipe,

	"help": ActionHelp,
	"h":    ActionHelp,
	"f1":   ActionHelp,
}

// Lookup returns the action bound to code
func Lookup(code string) (Action, bool) {
	act, ok := bindings[code]
	return act, ok
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionAdvance:
		return "Go"
	case ActionSolve:
		return "Solve"
	case ActionTry:
		return "Try"
	case ActionTake:
		return "Take"
	case ActionRead:
		return "Read"
	case ActionLook:
		return "Look"
	case ActionInventory:
		return "Inventory"
	case ActionHint:
		return "Hint"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionSlots:
		return "Slots"
	case ActionExport:
		return "Export"
	case ActionImport:
		return "Import"
	case ActionWipe:
		return "Wipe"
	case ActionHelp:
		return "Help"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help output doesn't change between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
