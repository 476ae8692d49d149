// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/sketchnet/internal/nn"
)

// Net is a fully connected sigmoid network.
type Net = nn.Net

// Config describes layer sizes and learning rate.
type Config = nn.Config

// Sample is one labelled training example.
type Sample = nn.Sample

// Errors.
var (
	ErrInvalidStructure  = nn.ErrInvalidStructure
	ErrInvalidLabel      = nn.ErrInvalidLabel
	ErrDimensionMismatch = nn.ErrDimensionMismatch
)

// DefaultConfig returns the 784-100-10 digit classifier with rate 0.06.
func DefaultConfig() Config { return nn.DefaultConfig() }

// New creates a network with zero weights.
//
// Example:
//
//	net, err := nn.New(nn.Config{Structure: []int{784, 100, 10}, LearningRate: 0.06})
func New(cfg Config) (*Net, error) { return nn.New(cfg) }

// Sigmoid is the logistic function.
func Sigmoid(x float32) float32 { return nn.Sigmoid(x) }

// Normalize maps raw bytes to network inputs.
func Normalize(data []byte) []float32 { return nn.Normalize(data) }

// Target returns the one-hot training target for label.
func Target(label, size int) []float32 { return nn.Target(label, size) }

// Argmax returns the index of the largest value, or -1 when v is empty.
func Argmax(v []float32) int { return nn.Argmax(v) }
