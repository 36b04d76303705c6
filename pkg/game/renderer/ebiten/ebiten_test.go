package ebiten

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFramesPerTick(t *testing.T) {
	tests := []struct {
		interval time.Duration
		tps      int
		want     int
	}{
		{time.Second, 60, 60},
		{500 * time.Millisecond, 60, 30},
		{time.Millisecond, 60, 1},
		{0, 60, 1},
	}
	for _, tt := range tests {
		if got := framesPerTick(tt.interval, tt.tps); got != tt.want {
			t.Errorf("framesPerTick(%v, %d) = %d, want %d", tt.interval, tt.tps, got, tt.want)
		}
	}
}

func TestConfetti_FallsOffScreen(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	ps := spawnConfetti(rng, windowWidth)
	if len(ps) != confettiCount {
		t.Fatalf("spawned %d particles, want %d", len(ps), confettiCount)
	}
	for _, p := range ps {
		if p.vy <= 0 {
			t.Fatalf("particle %+v starts moving up", p)
		}
	}

	for i := 0; i < 10000 && len(ps) > 0; i++ {
		ps = stepConfetti(ps, windowHeight)
	}
	if len(ps) != 0 {
		t.Errorf("%d particles never left the screen", len(ps))
	}
}

func TestStepConfetti_Gravity(t *testing.T) {
	ps := []particle{{x: 10, y: 10, vx: 1, vy: 0}}
	got := stepConfetti(ps, windowHeight)
	want := []particle{{x: 11, y: 10 + confettiGravity, vx: 1, vy: confettiGravity}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(particle{})); diff != "" {
		t.Errorf("stepConfetti() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("one\ntwo\n")
	if diff := cmp.Diff([]string{"one", "two"}, got); diff != "" {
		t.Errorf("splitLines() mismatch (-want +got):\n%s", diff)
	}
}
