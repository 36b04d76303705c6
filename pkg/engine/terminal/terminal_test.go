package terminal

import (
	"bytes"
	"testing"
)

func TestNonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Error("IsTerminal(buffer) = true")
	}
	if w, h := GetSize(&buf); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("GetSize(buffer) = %d, %d, want defaults", w, h)
	}
	if got := GetWidth(&buf); got != DefaultWidth {
		t.Errorf("GetWidth(buffer) = %d", got)
	}
}
