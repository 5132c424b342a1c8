package out

import (
	"math/rand/v2"
	"time"

	drawout "numdraw/internal/modules/draw/port/out"
)

type MathRandom struct {
	r *rand.Rand
}

// NewMathRandom returns a PCG-backed source. A zero seed picks one from the
// current time; any other seed makes the sequence reproducible.
func NewMathRandom(seed int64) drawout.RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MathRandom{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (m *MathRandom) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + m.r.IntN(max-min+1)
}
