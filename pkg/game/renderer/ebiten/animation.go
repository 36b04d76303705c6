package ebiten

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// spawnConfetti bursts particles from the top centre of a width-wide screen
func spawnConfetti(rng *rand.Rand, width float64) []particle {
	out := make([]particle, 0, confettiCount)
	for i := 0; i < confettiCount; i++ {
		angle := math.Pi/2 + (rng.Float64()-0.5)*math.Pi*0.8
		speed := 2 + rng.Float64()*5
		out = append(out, particle{
			x:     width/2 + (rng.Float64()-0.5)*width*0.3,
			y:     0,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			color: confettiColors[i%len(confettiColors)],
		})
	}
	return out
}

// stepConfetti advances every particle by one frame and drops the ones that
// fell below height
func stepConfetti(ps []particle, height float64) []particle {
	kept := ps[:0]
	for _, p := range ps {
		p.vy += confettiGravity
		p.x += p.vx
		p.y += p.vy
		if p.y > height {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func (w *Window) drawConfetti(screen *ebiten.Image) {
	for _, p := range w.confetti {
		vector.DrawFilledRect(screen, float32(p.x), float32(p.y), confettiSize, confettiSize, p.color, false)
	}
}

// framesPerTick is how many Update calls make up one countdown second
func framesPerTick(interval time.Duration, tps int) int {
	n := int(math.Round(interval.Seconds() * float64(tps)))
	if n < 1 {
		n = 1
	}
	return n
}
