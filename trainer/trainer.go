// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package trainer

import (
	"github.com/born-ml/sketchnet/internal/nn"
	"github.com/born-ml/sketchnet/internal/trainer"
)

// Trainer owns a network and runs training on it.
type Trainer = trainer.Trainer

// Config controls the training loop.
type Config = trainer.Config

// Run is one background training session.
type Run = trainer.Run

// History records per-iteration training errors.
type History = trainer.History

// Prediction is a classified input.
type Prediction = trainer.Prediction

// Evaluation summarises accuracy over a labelled set.
type Evaluation = trainer.Evaluation

// IntensitySource yields network input without blocking.
type IntensitySource = trainer.IntensitySource

// Errors.
var (
	ErrAlreadyRunning = trainer.ErrAlreadyRunning
	ErrNoSamples      = trainer.ErrNoSamples
	ErrInvalidConfig  = trainer.ErrInvalidConfig
)

// DefaultConfig returns the interactive training settings.
func DefaultConfig() Config { return trainer.DefaultConfig() }

// New validates samples against net and takes ownership of net.
func New(net *nn.Net, samples []nn.Sample, cfg Config) (*Trainer, error) {
	return trainer.New(net, samples, cfg)
}
