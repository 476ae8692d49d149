package dataset

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/sketchnet/internal/nn"
)

func TestFromImages(t *testing.T) {
	images := [][]byte{{1, 2, 3}, {4, 5, 6}}
	samples, err := FromImages(images, []int{7, 0}, 10)
	require.NoError(t, err)
	assert.Equal(t, []nn.Sample{{Data: []byte{1, 2, 3}, Label: 7}, {Data: []byte{4, 5, 6}, Label: 0}}, samples)
}

func TestFromImagesErrors(t *testing.T) {
	_, err := FromImages([][]byte{{1}}, []int{1, 2}, 10)
	assert.ErrorIs(t, err, ErrCountMismatch)

	_, err = FromImages(nil, nil, 10)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = FromImages([][]byte{{1, 2}, {3}}, []int{0, 0}, 10)
	assert.ErrorIs(t, err, ErrImageSize)

	_, err = FromImages([][]byte{{1}}, []int{10}, 10)
	assert.ErrorIs(t, err, ErrLabelRange)

	_, err = FromImages([][]byte{{1}}, []int{-1}, 10)
	assert.ErrorIs(t, err, ErrLabelRange)
}

func testSet() *Set {
	return &Set{Rows: 2, Cols: 3, Samples: []nn.Sample{
		{Data: []byte{0, 1, 2, 3, 4, 5}, Label: 4},
		{Data: []byte{255, 254, 253, 252, 251, 250}, Label: 9},
		{Data: []byte{9, 9, 9, 9, 9, 9}, Label: 0},
	}}
}

func writeFiles(t *testing.T, set *Set, compress bool) (imagesPath, labelsPath string) {
	t.Helper()
	var images, labels bytes.Buffer
	require.NoError(t, WriteIDX(&images, &labels, set))

	dir := t.TempDir()
	imagesPath = filepath.Join(dir, "images-idx3-ubyte")
	labelsPath = filepath.Join(dir, "labels-idx1-ubyte")
	write := func(path string, data []byte) {
		if compress {
			var buf bytes.Buffer
			zw := gzip.NewWriter(&buf)
			_, err := zw.Write(data)
			require.NoError(t, err)
			require.NoError(t, zw.Close())
			data = buf.Bytes()
		}
		require.NoError(t, os.WriteFile(path, data, 0o600))
	}
	write(imagesPath, images.Bytes())
	write(labelsPath, labels.Bytes())
	return imagesPath, labelsPath
}

func TestIDXRoundTrip(t *testing.T) {
	for _, compress := range []bool{false, true} {
		imagesPath, labelsPath := writeFiles(t, testSet(), compress)

		got, err := LoadIDX(imagesPath, labelsPath)
		require.NoError(t, err, "compressed=%v", compress)
		assert.Equal(t, testSet(), got, "compressed=%v", compress)
		assert.Equal(t, 3, got.Len())
	}
}

func TestIDXHeaderLayout(t *testing.T) {
	var images, labels bytes.Buffer
	require.NoError(t, WriteIDX(&images, &labels, testSet()))

	assert.Equal(t, []byte{0, 0, 8, 3, 0, 0, 0, 3, 0, 0, 0, 2, 0, 0, 0, 3}, images.Bytes()[:16])
	assert.Equal(t, []byte{0, 0, 8, 1, 0, 0, 0, 3, 4, 9, 0}, labels.Bytes())
}

func TestLoadIDXErrors(t *testing.T) {
	imagesPath, labelsPath := writeFiles(t, testSet(), false)

	// Swapped files fail the magic check.
	_, err := LoadIDX(labelsPath, imagesPath)
	assert.ErrorIs(t, err, ErrFormat)

	_, err = LoadIDX(filepath.Join(t.TempDir(), "missing"), labelsPath)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Truncated pixel data.
	raw, err := os.ReadFile(imagesPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(imagesPath, raw[:len(raw)-2], 0o600))
	_, err = LoadIDX(imagesPath, labelsPath)
	assert.Error(t, err)
}

func writeRaw(t *testing.T, name string, words []uint32, data []byte) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, words))
	buf.Write(data)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestLoadIDXCorruptCounts(t *testing.T) {
	_, labelsPath := writeFiles(t, testSet(), false)

	// A count far beyond the data fails on the first short read.
	images := writeRaw(t, "images", []uint32{imagesMagic, 0xffffffff, 2, 3}, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	_, err := LoadIDX(images, labelsPath)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// Oversized image dimensions are rejected before allocating.
	images = writeRaw(t, "images", []uint32{imagesMagic, 1, 0xffff, 0xffff}, nil)
	_, err = LoadIDX(images, labelsPath)
	assert.ErrorIs(t, err, ErrFormat)

	imagesPath, _ := writeFiles(t, testSet(), false)
	labels := writeRaw(t, "labels", []uint32{labelsMagic, 0xffffffff}, []byte{1, 2, 3})
	_, err = LoadIDX(imagesPath, labels)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestWriteIDXValidatesFirst(t *testing.T) {
	for _, mutate := range []func(*Set){
		func(s *Set) { s.Samples[2].Data = []byte{1} },
		func(s *Set) { s.Samples[2].Label = 300 },
	} {
		set := testSet()
		mutate(set)

		var images, labels bytes.Buffer
		err := WriteIDX(&images, &labels, set)
		assert.Error(t, err)
		assert.Zero(t, images.Len())
		assert.Zero(t, labels.Len())
	}
}

func TestLoadIDXCountMismatch(t *testing.T) {
	imagesPath, _ := writeFiles(t, testSet(), false)

	short := testSet()
	short.Samples = short.Samples[:2]
	_, labelsPath := writeFiles(t, short, true)

	_, err := LoadIDX(imagesPath, labelsPath)
	assert.ErrorIs(t, err, ErrCountMismatch)
}

func TestLoadIDXLabelRange(t *testing.T) {
	set := testSet()
	set.Samples[1].Label = 12
	imagesPath, labelsPath := writeFiles(t, set, false)

	_, err := LoadIDX(imagesPath, labelsPath)
	assert.ErrorIs(t, err, ErrLabelRange)
}

func TestSplit(t *testing.T) {
	set := testSet()
	head, tail := set.Split(2)
	assert.Len(t, head, 2)
	assert.Len(t, tail, 1)

	head, tail = set.Split(10)
	assert.Len(t, head, 3)
	assert.Empty(t, tail)

	head, _ = set.Split(-1)
	assert.Empty(t, head)
}

func TestSynthetic(t *testing.T) {
	a := Synthetic(30, 28, 28, 7)
	b := Synthetic(30, 28, 28, 7)
	c := Synthetic(30, 28, 28, 8)

	require.Len(t, a, 30)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	for i, s := range a {
		assert.Len(t, s.Data, 28*28)
		assert.Equal(t, i%Classes, s.Label)
	}

	// The band for label 0 is near the top and for label 9 near the bottom.
	rowInk := func(s nn.Sample, row int) int {
		sum := 0
		for col := 0; col < 28; col++ {
			sum += int(s.Data[row*28+col])
		}
		return sum
	}
	assert.Greater(t, rowInk(a[0], 2), rowInk(a[0], 25))
	assert.Greater(t, rowInk(a[9], 25), rowInk(a[9], 2))

	_, err := FromImages([][]byte{a[0].Data, a[1].Data}, []int{a[0].Label, a[1].Label}, Classes)
	assert.NoError(t, err)
}
