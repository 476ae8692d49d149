package nn

import "github.com/chewxy/math32"

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
//
// It is strictly increasing and bounded in (0, 1) for every finite input in
// the range the network produces, with σ(0) exactly 0.5.
func Sigmoid(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}

// sigmoidInPlace applies Sigmoid to every element of v.
func sigmoidInPlace(v []float32) {
	for i, x := range v {
		v[i] = Sigmoid(x)
	}
}
