package scenario

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/floatzone/pkg/floats"
)

// Random generates a scenario of n floats in a block of the given inline
// size. The same seed always yields the same scenario. Sizes and ceilings
// are integers so that placements compare exactly.
//
// Floats are at most half the block wide and their ceilings trail the total
// height placed so far, so later floats keep interacting with earlier ones.
// About one float in eight clears a side.
func Random(seed uint64, n, inlineSize int) *Scenario {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := &Scenario{
		Name:       fmt.Sprintf("random-%d", seed),
		InlineSize: float64(inlineSize),
		Floats:     make([]Float, n),
	}
	depth := 0
	for i := range s.Floats {
		f := Float{
			Side:   floats.Side(r.IntN(2)),
			Width:  float64(r.IntN(inlineSize/2 + 1)),
			Height: float64(1 + r.IntN(60)),
		}
		if depth > 0 {
			f.Ceiling = float64(r.IntN(depth/4 + 1))
		}
		if r.IntN(8) == 0 {
			f.Clear = floats.Clear(1 + r.IntN(3))
		}
		depth += int(f.Height)
		s.Floats[i] = f
	}
	s.Clearances = []Query{
		{Clear: floats.ClearLeft},
		{Clear: floats.ClearRight},
		{Clear: floats.ClearBoth},
	}
	return s
}
