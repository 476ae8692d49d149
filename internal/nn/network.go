// Package nn implements a sigmoid multilayer perceptron trained by online
// stochastic gradient descent on squared error.
//
// A Net is not safe for concurrent use; the trainer package wraps it in a
// single reader/writer lock.
package nn

import (
	"fmt"

	"github.com/born-ml/sketchnet/internal/matrix"
)

// Config describes a network.
type Config struct {
	// Structure lists layer sizes: input size first, output size last, and
	// at least two entries.
	Structure []int

	// LearningRate scales every gradient step.
	LearningRate float32
}

// DefaultConfig returns the digit classifier layout: 28×28 inputs, one
// hidden layer of 100 neurons, 10 outputs, learning rate 0.06.
func DefaultConfig() Config {
	return Config{
		Structure:    []int{28 * 28, 100, 10},
		LearningRate: 0.06,
	}
}

// Net holds one weight matrix per layer transition. weights[k] has shape
// (Structure[k+1], Structure[k]), so adjacent matrices always chain.
type Net struct {
	structure    []int
	weights      []*matrix.Matrix
	learningRate float32
}

// New allocates a network with all-zero weights.
// Call PopulateRandomWeights before training.
func New(cfg Config) (*Net, error) {
	if len(cfg.Structure) < 2 {
		return nil, fmt.Errorf("%d layer sizes, need at least 2: %w", len(cfg.Structure), ErrInvalidStructure)
	}
	for i, size := range cfg.Structure {
		if size <= 0 {
			return nil, fmt.Errorf("layer %d has size %d: %w", i, size, ErrInvalidStructure)
		}
	}

	structure := make([]int, len(cfg.Structure))
	copy(structure, cfg.Structure)

	weights := make([]*matrix.Matrix, 0, len(structure)-1)
	for k := 0; k+1 < len(structure); k++ {
		weights = append(weights, matrix.New(structure[k+1], structure[k]))
	}

	return &Net{
		structure:    structure,
		weights:      weights,
		learningRate: cfg.LearningRate,
	}, nil
}

// SetLearningRate sets the rate used by the next TrainOne call.
// The value is not range-checked.
func (n *Net) SetLearningRate(rate float32) {
	n.learningRate = rate
}

// LearningRate returns the current learning rate.
func (n *Net) LearningRate() float32 {
	return n.learningRate
}

// Structure returns a copy of the layer sizes.
func (n *Net) Structure() []int {
	out := make([]int, len(n.structure))
	copy(out, n.structure)
	return out
}

// InputSize returns the length Forward expects.
func (n *Net) InputSize() int { return n.structure[0] }

// OutputSize returns the length of Predict's result.
func (n *Net) OutputSize() int { return n.structure[len(n.structure)-1] }

// NumLayers returns the number of weight matrices.
func (n *Net) NumLayers() int { return len(n.weights) }

// Layer returns a copy of weight matrix k.
func (n *Net) Layer(k int) *matrix.Matrix {
	return n.weights[k].Clone()
}
