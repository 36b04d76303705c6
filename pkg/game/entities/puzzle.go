package entities

import (
	"strings"

	"escaperoom/pkg/engine/world"
)

// GateKind represents the closed set of puzzle kinds that can gate a room
type GateKind int

const (
	GateCode   GateKind = iota // Digit or pattern code (e.g. "3142", "14789")
	GateCipher                 // Decoded substitution-cipher text
	GateFinal                  // The terminal code that ends the session
	GateClue                   // Free text that must mention a keyword
)

func (k GateKind) String() string {
	switch k {
	case GateCode:
		return "code"
	case GateCipher:
		return "cipher"
	case GateFinal:
		return "final"
	case GateClue:
		return "clue"
	default:
		return "unknown"
	}
}

// Gate is a puzzle blocking a room's exit or guarding an optional reward.
// The concrete variants are CodeGate, CipherGate, FinalGate and ClueGate;
// no other package can add one.
type Gate interface {
	Kind() GateKind
	Title() string
	gate()
}

// ClueGate accepts any answer mentioning one of its keywords, ignoring case
// ("a bell" and "Chimes" both clear {"bell", "chime"})
type ClueGate struct {
	Label    string
	Keywords []string
	Reward   world.ItemID
}

// CodeGate is a keypad or pattern lock. Digit codes are compared literally
// after trimming, word codes ignore case.
type CodeGate struct {
	Label  string
	Code   string
	Reward world.ItemID // Granted when solved, may be empty
}

// CipherGate shows Ciphertext and expects its decoded text, case-insensitively
type CipherGate struct {
	Label      string
	Ciphertext string
	Answer     string
	Reward     world.ItemID
}

// FinalGate is the exit code; solving it wins the session
type FinalGate struct {
	Label string
	Code  string
}

func (CodeGate) Kind() GateKind   { return GateCode }
func (CipherGate) Kind() GateKind { return GateCipher }
func (FinalGate) Kind() GateKind  { return GateFinal }
func (ClueGate) Kind() GateKind   { return GateClue }

func (g CodeGate) Title() string   { return g.Label }
func (g CipherGate) Title() string { return g.Label }
func (g FinalGate) Title() string  { return g.Label }
func (g ClueGate) Title() string   { return g.Label }

func (CodeGate) gate()   {}
func (CipherGate) gate() {}
func (FinalGate) gate()  {}
func (ClueGate) gate()   {}

// Verdict is the result of submitting an answer
type Verdict int

const (
	VerdictRejected Verdict = iota
	VerdictCleared
	VerdictIgnored // Nothing was evaluated (no gate, wrong kind, finished session)
)

func (v Verdict) String() string {
	switch v {
	case VerdictCleared:
		return "cleared"
	case VerdictIgnored:
		return "ignored"
	default:
		return "rejected"
	}
}

// Evaluate checks answer against gate. It holds no state and owns no
// answers: the expected value always comes from the gate itself.
func Evaluate(gate Gate, answer string) Verdict {
	var ok bool
	switch g := gate.(type) {
	case CodeGate:
		ok = matchCode(g.Code, answer)
	case CipherGate:
		ok = normalizeText(answer) == strings.ToLower(g.Answer)
	case FinalGate:
		ok = matchCode(g.Code, answer)
	case ClueGate:
		ok = mentions(answer, g.Keywords)
	}
	if ok {
		return VerdictCleared
	}
	return VerdictRejected
}

// RewardOf returns the item granted for solving gate, if any
func RewardOf(gate Gate) (world.ItemID, bool) {
	var reward world.ItemID
	switch g := gate.(type) {
	case CodeGate:
		reward = g.Reward
	case CipherGate:
		reward = g.Reward
	case ClueGate:
		reward = g.Reward
	}
	return reward, reward != ""
}

// matchCode compares digit codes exactly and word codes case-insensitively.
// Both are trimmed.
func matchCode(code, answer string) bool {
	if isDigits(code) {
		return strings.TrimSpace(answer) == code
	}
	return normalizeText(answer) == normalizeText(code)
}

// mentions reports whether answer contains any non-blank keyword
func mentions(answer string, keywords []string) bool {
	answer = normalizeText(answer)
	for _, kw := range keywords {
		kw = normalizeText(kw)
		if kw != "" && strings.Contains(answer, kw) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CaesarShift shifts every ASCII letter in text by n places, preserving case
func CaesarShift(text string, n int) string {
	n = ((n % 26) + 26) % 26
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune('a' + (r-'a'+rune(n))%26)
		case r >= 'A' && r <= 'Z':
			b.WriteRune('A' + (r-'A'+rune(n))%26)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
