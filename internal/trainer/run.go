package trainer

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Run is one background training session.
type Run struct {
	ID uuid.UUID

	cancel     context.CancelFunc
	done       chan struct{}
	err        error
	iterations atomic.Int64
}

// Cancel asks the loop to stop. It returns immediately; the loop notices
// within PollEvery iterations.
func (r *Run) Cancel() { r.cancel() }

// Done is closed after the loop has exited and flushed its history.
func (r *Run) Done() <-chan struct{} { return r.done }

// Wait blocks until the loop exits. It returns nil when the run was
// cancelled or reached MaxIterations, and the training error otherwise.
func (r *Run) Wait() error {
	<-r.done
	return r.err
}

// Iterations returns the number of completed training steps.
func (r *Run) Iterations() int {
	return int(r.iterations.Load())
}

// Start launches the training loop in a new goroutine. Cancelling ctx or
// calling Run.Cancel stops it. Only one run may be active per Trainer.
func (t *Trainer) Start(ctx context.Context) (*Run, error) {
	if !t.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	r := &Run{
		ID:     uuid.New(),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go t.loop(ctx, r)
	return r, nil
}

func (t *Trainer) loop(ctx context.Context, r *Run) {
	defer close(r.done)
	defer t.running.Store(false)
	defer r.cancel()

	log := t.logger.With("run", r.ID.String())
	log.Info("training started", "samples", len(t.samples), "max_iterations", t.cfg.MaxIterations)
	started := time.Now()

	order := make([]int, len(t.samples))
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewPCG(t.cfg.Seed, uint64(len(order))))

	pending := make([]float32, 0, t.cfg.FlushEvery)
	it := 0
	for ; t.cfg.MaxIterations == 0 || it < t.cfg.MaxIterations; it++ {
		if it%t.cfg.PollEvery == 0 && ctx.Err() != nil {
			break
		}

		pos := it % len(order)
		if pos == 0 && t.cfg.Shuffle {
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}

		e, err := t.step(order[pos])
		if err != nil {
			r.err = err
			log.Error("training step failed", "iteration", it, "error", err)
			break
		}
		r.iterations.Add(1)

		pending = append(pending, e)
		if len(pending) == t.cfg.FlushEvery {
			t.history.Append(pending...)
			pending = pending[:0]
		}

		if t.cfg.LogEvery > 0 && (it+1)%t.cfg.LogEvery == 0 {
			log.Info("training progress", "iteration", it+1, "loss", e)
		}
	}
	t.history.Append(pending...)

	log.Info("training stopped", "iterations", r.Iterations(), "elapsed", time.Since(started))
}

// step trains on one sample under the write lock.
func (t *Trainer) step(idx int) (float32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.net.TrainOne(t.samples[idx])
}
