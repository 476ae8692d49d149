// Package trainer runs network training in the background while other
// goroutines keep reading predictions.
//
// All access to the network goes through one reader/writer lock. The
// training loop takes the write lock for a single TrainOne at a time, so an
// interactive reader waits at most one step, and the Try methods never wait
// at all.
package trainer

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/born-ml/sketchnet/internal/nn"
)

// Config controls the training loop.
type Config struct {
	// FlushEvery is how many per-iteration errors are buffered locally
	// before being appended to the History in one batch.
	FlushEvery int

	// PollEvery is how many iterations run between cancellation checks.
	PollEvery int

	// MaxIterations stops the run after this many steps. Zero means run
	// until cancelled.
	MaxIterations int

	// Shuffle reorders the samples at the start of every pass.
	Shuffle bool

	// Seed drives the shuffle.
	Seed uint64

	// Logger receives run lifecycle and progress records. Nil discards them.
	Logger *slog.Logger

	// LogEvery emits a progress record every LogEvery iterations. Zero
	// disables progress records.
	LogEvery int
}

// DefaultConfig returns the settings used by the interactive driver.
func DefaultConfig() Config {
	return Config{
		FlushEvery: 100,
		PollEvery:  100,
		Shuffle:    true,
		Seed:       1,
		LogEvery:   10000,
	}
}

func (c Config) validate() error {
	if c.FlushEvery <= 0 {
		return fmt.Errorf("flush every %d: %w", c.FlushEvery, ErrInvalidConfig)
	}
	if c.PollEvery <= 0 {
		return fmt.Errorf("poll every %d: %w", c.PollEvery, ErrInvalidConfig)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max iterations %d: %w", c.MaxIterations, ErrInvalidConfig)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("log every %d: %w", c.LogEvery, ErrInvalidConfig)
	}
	return nil
}

// Trainer owns a network, the samples it learns from and the error
// history of every run started on it.
type Trainer struct {
	mu      sync.RWMutex
	net     *nn.Net
	samples []nn.Sample

	cfg     Config
	logger  *slog.Logger
	history History
	running atomic.Bool
}

// New checks samples against net and returns a Trainer that owns net.
// The caller must not use net directly afterwards.
func New(net *nn.Net, samples []nn.Sample, cfg Config) (*Trainer, error) {
	if net == nil {
		return nil, fmt.Errorf("nil network: %w", ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := checkSamples(net, samples); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Trainer{
		net:     net,
		samples: samples,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func checkSamples(net *nn.Net, samples []nn.Sample) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	in, out := net.InputSize(), net.OutputSize()
	for i, s := range samples {
		if len(s.Data) != in {
			return fmt.Errorf("sample %d has %d values, network takes %d: %w", i, len(s.Data), in, nn.ErrDimensionMismatch)
		}
		if s.Label < 0 || s.Label >= out {
			return fmt.Errorf("sample %d label %d with %d outputs: %w", i, s.Label, out, nn.ErrInvalidLabel)
		}
	}
	return nil
}

// History returns the error record shared by all runs.
func (t *Trainer) History() *History {
	return &t.history
}

// Running reports whether a run is in progress.
func (t *Trainer) Running() bool {
	return t.running.Load()
}

// Structure returns the network's layer sizes.
func (t *Trainer) Structure() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.net.Structure()
}

// SetLearningRate changes the rate used from the next training step on.
func (t *Trainer) SetLearningRate(rate float32) {
	t.mu.Lock()
	t.net.SetLearningRate(rate)
	t.mu.Unlock()
}

// LearningRate returns the current learning rate.
func (t *Trainer) LearningRate() float32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.net.LearningRate()
}
