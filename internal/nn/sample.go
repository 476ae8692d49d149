package nn

// Sample is one labelled training example: raw pixel intensities (0-255)
// and the class index they depict.
//
// Samples are built once by the dataset loader and only read afterwards, so
// a single slice of them can be shared by every training iteration.
type Sample struct {
	Data  []byte
	Label int
}

// Normalize maps raw byte intensities to network inputs with
// x = b/255*0.98 + 0.01, keeping every input inside [0.01, 0.99] so
// activations stay off the flat ends of the sigmoid.
func Normalize(data []byte) []float32 {
	out := make([]float32, len(data))
	for i, b := range data {
		out[i] = float32(b)/255*0.98 + 0.01
	}
	return out
}

// Target returns the training target for label: 0.01 everywhere except
// 0.99 at index label.
func Target(label, size int) []float32 {
	out := make([]float32, size)
	for i := range out {
		out[i] = 0.01
	}
	out[label] = 0.99
	return out
}

// Argmax returns the index of the largest value, or -1 for an empty slice.
// Ties resolve to the lowest index.
func Argmax(v []float32) int {
	best := -1
	for i, x := range v {
		if best < 0 || x > v[best] {
			best = i
		}
	}
	return best
}
