// Package input turns typed command lines into high-level intents.
package input

import (
	"strings"

	"github.com/buildkite/shellwords"
	"github.com/pkg/errors"
)

// Intent is the high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Args   []string
}

// Arg joins the arguments back into a single string, which is what answers
// and item names expect: `solve there is a next` and `solve "there is a next"`
// mean the same thing.
func (i Intent) Arg() string {
	return strings.Join(i.Args, " ")
}

// Parse splits line into words, honouring shell quoting, and maps the first
// word to an action. Blank lines return ActionNone without error.
func Parse(line string) (Intent, error) {
	words, err := shellwords.SplitPosix(strings.TrimSpace(line))
	if err != nil {
		return Intent{}, errors.Wrapf(err, "parse %q", line)
	}
	if len(words) == 0 {
		return Intent{Action: ActionNone}, nil
	}

	act, ok := Lookup(strings.ToLower(words[0]))
	if !ok {
		return Intent{Action: ActionNone, Args: words}, errors.Errorf("unknown command %q", words[0])
	}
	return Intent{Action: act, Args: words[1:]}, nil
}
