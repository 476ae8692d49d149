package trainer

import "sync"

// History is the append-only record of per-iteration training errors.
//
// The training loop is the only writer and appends in batches; readers
// get copies, so a snapshot never changes under the caller.
type History struct {
	mu     sync.RWMutex
	values []float32
}

// Append adds errs in order under a single write lock.
func (h *History) Append(errs ...float32) {
	if len(errs) == 0 {
		return
	}
	h.mu.Lock()
	h.values = append(h.values, errs...)
	h.mu.Unlock()
}

// Len returns the number of recorded iterations.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.values)
}

// Snapshot copies the whole history, waiting for an in-progress append.
func (h *History) Snapshot() []float32 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return clone(h.values)
}

// TrySnapshot is Snapshot without waiting. ok is false while the loop is
// appending.
func (h *History) TrySnapshot() (values []float32, ok bool) {
	if !h.mu.TryRLock() {
		return nil, false
	}
	defer h.mu.RUnlock()
	return clone(h.values), true
}

// Tail copies the last n entries, or all of them if fewer exist.
func (h *History) Tail(n int) []float32 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if n <= 0 {
		return []float32{}
	}
	start := max(len(h.values)-n, 0)
	return clone(h.values[start:])
}

func clone(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}
