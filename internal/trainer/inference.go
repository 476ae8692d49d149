package trainer

import (
	"fmt"

	"github.com/born-ml/sketchnet/internal/matrix"
	"github.com/born-ml/sketchnet/internal/nn"
)

// Prediction is the network's answer for one input.
type Prediction struct {
	Outputs    []float32
	Class      int
	Confidence float32
}

func newPrediction(out []float32) Prediction {
	class := nn.Argmax(out)
	p := Prediction{Outputs: out, Class: class}
	if class >= 0 {
		p.Confidence = out[class]
	}
	return p
}

// IntensitySource yields an input raster without blocking.
// canvas.Shared implements it.
type IntensitySource interface {
	TryIntensities() ([]byte, bool)
}

// TryPredict runs the network on raw intensities unless a training step
// holds the lock. ok is false, with no error, when the lock was taken.
func (t *Trainer) TryPredict(input []byte) (out []float32, ok bool, err error) {
	if !t.mu.TryRLock() {
		return nil, false, nil
	}
	defer t.mu.RUnlock()

	out, err = t.predict(input)
	return out, true, err
}

// Predict is TryPredict that waits for the lock.
func (t *Trainer) Predict(input []byte) ([]float32, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.predict(input)
}

// TryClassify reads src and classifies it, giving up if either the source
// or the network is busy.
func (t *Trainer) TryClassify(src IntensitySource) (Prediction, bool, error) {
	input, ok := src.TryIntensities()
	if !ok {
		return Prediction{}, false, nil
	}
	out, ok, err := t.TryPredict(input)
	if !ok || err != nil {
		return Prediction{}, ok, err
	}
	return newPrediction(out), true, nil
}

// predict requires t.mu held for reading.
func (t *Trainer) predict(input []byte) ([]float32, error) {
	out, err := t.net.Predict(matrix.Slice(nn.Normalize(input)))
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	return out, nil
}
