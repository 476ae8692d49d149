package dataset

import (
	"math/rand/v2"

	"github.com/born-ml/sketchnet/internal/nn"
)

// Synthetic generates n width×height samples for runs without dataset
// files. Sample i has label i%Classes and shows a bright horizontal band
// whose vertical position encodes the label, jittered by a row and
// speckled with faint noise. The same seed always yields the same set.
//
// This is not realistic digit data; it only exercises the pipeline.
func Synthetic(n, width, height int, seed uint64) []nn.Sample {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))

	band := max(height/4, 1)
	span := max(height-band, 0)
	margin := width / 6

	samples := make([]nn.Sample, n)
	for i := range samples {
		label := i % Classes
		data := make([]byte, width*height)

		start := label*span/(Classes-1) + rng.IntN(3) - 1
		for row := max(start, 0); row < start+band && row < height; row++ {
			for col := margin; col < width-margin; col++ {
				data[row*width+col] = byte(200 + rng.IntN(56))
			}
		}
		for j := range data {
			if data[j] == 0 && rng.IntN(20) == 0 {
				data[j] = byte(rng.IntN(40))
			}
		}

		samples[i] = nn.Sample{Data: data, Label: label}
	}
	return samples
}
