package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	got, err := Dot(Slice{1, 2, 3}, Slice{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, float32(32), got)

	_, err = Dot(Slice{1, 2}, Slice{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestDotAcrossStorage(t *testing.T) {
	a, err := FromFlat([]float32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	// Row 1 is {3, 4}; column 1 is {2, 4}.
	got, err := Dot(a.RowView(1), a.ColView(1))
	require.NoError(t, err)
	assert.Equal(t, float32(22), got)
}

func TestValuesAndCollect(t *testing.T) {
	a, _ := FromFlat([]float32{1, 2, 3, 4, 5, 6}, 2, 3)

	var seen []float32
	for v := range Values(a.ColView(2)) {
		seen = append(seen, v)
	}
	assert.Equal(t, []float32{3, 6}, seen)

	// Early exit stops iteration.
	count := 0
	for range Values(Slice{1, 2, 3, 4}) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)

	src := Slice{1, 2}
	cp := Collect(src)
	cp[0] = 9
	assert.Equal(t, float32(1), src[0])
	assert.Equal(t, []float32{4, 5, 6}, Collect(a.RowView(1)))
}

func TestScaleVector(t *testing.T) {
	src := Slice{1, -2, 3}
	assert.Equal(t, Slice{2, -4, 6}, Scale(src, 2))
	assert.Equal(t, Slice{1, -2, 3}, src)
}
