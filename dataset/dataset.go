// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset loads labelled images as training samples.
package dataset

import (
	"io"

	"github.com/born-ml/sketchnet/internal/dataset"
	"github.com/born-ml/sketchnet/internal/nn"
)

// Set is a validated collection of equally sized images.
type Set = dataset.Set

// Classes is the number of digit classes.
const Classes = dataset.Classes

// Errors.
var (
	ErrEmpty         = dataset.ErrEmpty
	ErrCountMismatch = dataset.ErrCountMismatch
	ErrImageSize     = dataset.ErrImageSize
	ErrLabelRange    = dataset.ErrLabelRange
	ErrFormat        = dataset.ErrFormat
)

// FromImages pairs images with labels after validation.
func FromImages(images [][]byte, labels []int, classes int) ([]nn.Sample, error) {
	return dataset.FromImages(images, labels, classes)
}

// LoadIDX reads an IDX image file and label file, gzip or plain.
func LoadIDX(imagesPath, labelsPath string) (*Set, error) {
	return dataset.LoadIDX(imagesPath, labelsPath)
}

// WriteIDX writes set as uncompressed IDX image and label streams.
func WriteIDX(images, labels io.Writer, set *Set) error {
	return dataset.WriteIDX(images, labels, set)
}

// Synthetic generates a deterministic placeholder set.
func Synthetic(n, width, height int, seed uint64) []nn.Sample {
	return dataset.Synthetic(n, width, height, seed)
}
