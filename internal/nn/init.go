package nn

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat/distuv"
)

// PopulateRandomWeights resets every weight to an independent draw from
// N(0, σ²) with σ = 1/sqrt(m), where m is the row count of the matrix the
// weight belongs to.
//
// A nil src draws from the global math/rand/v2 source. Passing a seeded
// source makes initialisation reproducible.
func (n *Net) PopulateRandomWeights(src rand.Source) {
	for _, w := range n.weights {
		normal := distuv.Normal{
			Mu:    0,
			Sigma: float64(1 / math32.Sqrt(float32(w.Rows()))),
			Src:   src,
		}
		w.Apply(func(float32) float32 { return float32(normal.Rand()) })
	}
}
