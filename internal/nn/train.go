package nn

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/born-ml/sketchnet/internal/matrix"
)

// Forward feeds input through the network and returns the activations of
// every layer. Element 0 is the input itself; element k+1 is
// sigmoid(weights[k] · activations[k]).
func (n *Net) Forward(input matrix.Vector) ([][]float32, error) {
	if input.Len() != n.InputSize() {
		return nil, fmt.Errorf("forward: input length %d, want %d: %w", input.Len(), n.InputSize(), ErrDimensionMismatch)
	}

	acts := make([][]float32, 0, len(n.weights)+1)
	acts = append(acts, matrix.Collect(input))

	for k, w := range n.weights {
		next, err := w.MulVec(matrix.Slice(acts[k]))
		if err != nil {
			return nil, fmt.Errorf("forward: layer %d: %w", k, err)
		}
		sigmoidInPlace(next)
		acts = append(acts, next)
	}
	return acts, nil
}

// Predict returns only the output-layer activations for input.
func (n *Net) Predict(input matrix.Vector) ([]float32, error) {
	acts, err := n.Forward(input)
	if err != nil {
		return nil, err
	}
	return acts[len(acts)-1], nil
}

// TrainOne performs one online gradient-descent step on sample and
// returns the summed absolute output error measured before the update.
//
// Layers are processed from the output back to the input. Within a layer,
// each row is updated with
//
//	s = σ(row · a)
//	row[j] -= lr * 2 * err[i] * s * (1-s) * a[j]
//
// where a is the previous layer's activation from the forward pass and s is
// recomputed from the row rather than read back from the forward pass. The
// error handed to the previous layer is then transpose(W)·err using the
// weights as just updated, not the weights the forward pass saw.
func (n *Net) TrainOne(sample Sample) (float32, error) {
	out := n.OutputSize()
	if sample.Label < 0 || sample.Label >= out {
		return 0, fmt.Errorf("train: label %d with %d outputs: %w", sample.Label, out, ErrInvalidLabel)
	}

	acts, err := n.Forward(matrix.Slice(Normalize(sample.Data)))
	if err != nil {
		return 0, fmt.Errorf("train: %w", err)
	}

	target := Target(sample.Label, out)
	output := acts[len(acts)-1]

	errs := make(matrix.Slice, out)
	var total float32
	for i := range errs {
		errs[i] = output[i] - target[i]
		total += math32.Abs(errs[i])
	}

	for layer := len(n.weights) - 1; layer >= 0; layer-- {
		w := n.weights[layer]
		prev := matrix.Slice(acts[layer])

		for i := 0; i < w.Rows(); i++ {
			row := w.RowView(i)
			dot, err := matrix.Dot(row, prev)
			if err != nil {
				return 0, fmt.Errorf("train: layer %d row %d: %w", layer, i, err)
			}
			s := Sigmoid(dot)
			step := -n.learningRate * 2 * errs[i] * s * (1 - s)

			data := row.Slice()
			for j := range data {
				data[j] += step * prev[j]
			}
		}

		if layer == 0 {
			break
		}
		errs, err = w.Transpose().MulVec(errs)
		if err != nil {
			return 0, fmt.Errorf("train: propagate through layer %d: %w", layer, err)
		}
	}

	return total, nil
}
