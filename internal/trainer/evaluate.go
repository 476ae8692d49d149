package trainer

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/born-ml/sketchnet/internal/nn"
	"github.com/born-ml/sketchnet/internal/parallel"
)

// Evaluation summarises the network over a labelled set.
type Evaluation struct {
	Samples int
	Correct int

	// Accuracy is Correct / Samples.
	Accuracy float64

	// MeanError is the average summed absolute output error, measured the
	// same way TrainOne measures it.
	MeanError float32
}

// Evaluate scores samples against the current weights. Training steps
// are held off for the duration; samples are spread over the parallel
// worker pool.
func (t *Trainer) Evaluate(samples []nn.Sample) (Evaluation, error) {
	return t.EvaluateWith(samples, parallel.DefaultConfig())
}

// EvaluateWith is Evaluate with an explicit worker configuration.
func (t *Trainer) EvaluateWith(samples []nn.Sample, cfg parallel.Config) (Evaluation, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := checkSamples(t.net, samples); err != nil {
		return Evaluation{}, fmt.Errorf("evaluate: %w", err)
	}

	outSize := t.net.OutputSize()
	hits := make([]bool, len(samples))
	losses := make([]float32, len(samples))
	errs := make([]error, len(samples))

	parallel.For(len(samples), func(i int) {
		out, err := t.predict(samples[i].Data)
		if err != nil {
			errs[i] = err
			return
		}
		target := nn.Target(samples[i].Label, outSize)
		for j := range out {
			losses[i] += math32.Abs(out[j] - target[j])
		}
		hits[i] = nn.Argmax(out) == samples[i].Label
	}, cfg)

	ev := Evaluation{Samples: len(samples)}
	var total float32
	for i := range samples {
		if errs[i] != nil {
			return Evaluation{}, fmt.Errorf("evaluate: sample %d: %w", i, errs[i])
		}
		if hits[i] {
			ev.Correct++
		}
		total += losses[i]
	}
	ev.Accuracy = float64(ev.Correct) / float64(ev.Samples)
	ev.MeanError = total / float32(ev.Samples)
	return ev, nil
}
