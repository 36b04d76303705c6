package timer

import "testing"

func TestTick_IdleDoesNothing(t *testing.T) {
	c := New(10)
	if c.Tick() {
		t.Error("Tick() on idle countdown = true, want false")
	}
	if c.Remaining() != 10 || c.State() != Idle {
		t.Errorf("idle tick changed countdown: %d %v", c.Remaining(), c.State())
	}
}

func TestTick_DecrementsByOne(t *testing.T) {
	c := New(900)
	c.Start()
	for want := 899; want > 0; want-- {
		if c.Tick() {
			t.Fatalf("Tick() expired early with %d left", c.Remaining())
		}
		if c.Remaining() != want {
			t.Fatalf("Remaining() = %d, want %d", c.Remaining(), want)
		}
	}
	if !c.Tick() {
		t.Fatal("900th Tick() = false, want true (expiry)")
	}
	if c.Remaining() != 0 || c.State() != Expired {
		t.Errorf("after expiry: %d %v, want 0 expired", c.Remaining(), c.State())
	}
}

func TestTick_ExpiredIsTerminal(t *testing.T) {
	c := New(1)
	c.Start()
	c.Tick()
	for i := 0; i < 5; i++ {
		if c.Tick() {
			t.Error("Tick() after expiry = true, want false")
		}
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0 (never negative)", c.Remaining())
	}
	if c.Start() {
		t.Error("Start() on expired countdown = true, want false")
	}
}

func TestStop(t *testing.T) {
	c := New(60)
	c.Stop()
	if c.State() != Idle {
		t.Errorf("Stop() on idle countdown changed state to %v", c.State())
	}
	c.Start()
	c.Tick()
	c.Stop()
	if c.State() != Stopped {
		t.Errorf("State() = %v, want stopped", c.State())
	}
	c.Tick()
	if c.Remaining() != 59 {
		t.Errorf("Remaining() after stop + tick = %d, want 59", c.Remaining())
	}
}

func TestStart_ZeroExpiresImmediately(t *testing.T) {
	c := New(-5)
	if c.Remaining() != 0 {
		t.Errorf("New(-5).Remaining() = %d, want 0", c.Remaining())
	}
	c.Start()
	if c.State() != Expired {
		t.Errorf("State() = %v, want expired", c.State())
	}
}

func TestResume(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		remaining int
		wantErr   bool
	}{
		{"idle", Idle, 900, false},
		{"running", Running, 12, false},
		{"expired", Expired, 0, false},
		{"stopped", Stopped, 300, false},
		{"negative", Running, -1, true},
		{"expired with time", Expired, 5, true},
		{"running at zero", Running, 0, true},
		{"bogus state", State(42), 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Resume(tt.state, tt.remaining)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resume(%v, %d) error = %v, wantErr %v", tt.state, tt.remaining, err, tt.wantErr)
			}
			if err == nil && (c.State() != tt.state || c.Remaining() != tt.remaining) {
				t.Errorf("Resume(%v, %d) = %v %d", tt.state, tt.remaining, c.State(), c.Remaining())
			}
		})
	}
}

func TestParseState(t *testing.T) {
	for _, st := range []State{Idle, Running, Expired, Stopped} {
		got, err := ParseState(st.String())
		if err != nil || got != st {
			t.Errorf("ParseState(%q) = %v, %v, want %v", st.String(), got, err, st)
		}
	}
	if _, err := ParseState("paused"); err == nil {
		t.Error("ParseState(paused) error = nil, want error")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1200, "20:00"},
		{899, "14:59"},
		{61, "01:01"},
		{0, "00:00"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
