package trainer

import "errors"

var (
	// ErrAlreadyRunning is returned by Start while a previous run has not
	// finished.
	ErrAlreadyRunning = errors.New("trainer: training already running")

	// ErrNoSamples is returned when there is nothing to train or evaluate on.
	ErrNoSamples = errors.New("trainer: no samples")

	// ErrInvalidConfig is returned for unusable Config values.
	ErrInvalidConfig = errors.New("trainer: invalid config")
)
