// Package dataset turns raw labelled images into training samples.
//
// Everything entering the network passes through FromImages, so the
// trainer can rely on every sample having the same length and a label
// inside the output range.
package dataset

import (
	"fmt"

	"github.com/born-ml/sketchnet/internal/nn"
)

// Classes is the number of digit classes in IDX digit sets.
const Classes = 10

// Set is a validated collection of equally sized images.
type Set struct {
	Rows, Cols int
	Samples    []nn.Sample
}

// Len returns the number of samples.
func (s *Set) Len() int { return len(s.Samples) }

// Split returns the first n samples and the rest. n is clamped to the
// set size.
func (s *Set) Split(n int) (head, tail []nn.Sample) {
	n = min(max(n, 0), len(s.Samples))
	return s.Samples[:n], s.Samples[n:]
}

// FromImages pairs images with labels. All images must have the same
// length and every label must be in [0, classes).
func FromImages(images [][]byte, labels []int, classes int) ([]nn.Sample, error) {
	if len(images) != len(labels) {
		return nil, fmt.Errorf("%d images, %d labels: %w", len(images), len(labels), ErrCountMismatch)
	}
	if len(images) == 0 {
		return nil, ErrEmpty
	}

	size := len(images[0])
	samples := make([]nn.Sample, len(images))
	for i, img := range images {
		if len(img) != size {
			return nil, fmt.Errorf("image %d has %d values, image 0 has %d: %w", i, len(img), size, ErrImageSize)
		}
		if labels[i] < 0 || labels[i] >= classes {
			return nil, fmt.Errorf("label %d at %d, %d classes: %w", labels[i], i, classes, ErrLabelRange)
		}
		samples[i] = nn.Sample{Data: img, Label: labels[i]}
	}
	return samples, nil
}
