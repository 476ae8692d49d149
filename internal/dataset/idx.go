package dataset

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	imagesMagic = 0x00000803 // unsigned bytes, 3 dimensions
	labelsMagic = 0x00000801 // unsigned bytes, 1 dimension

	// maxImageSize bounds rows*cols read from a header.
	maxImageSize = 1 << 20

	// preallocate caps the capacity reserved from a header count; longer
	// sets grow as their data actually arrives.
	preallocate = 1 << 16
)

// LoadIDX reads an IDX image file and its label file. Either file may be
// gzip-compressed; compression is detected from the content.
func LoadIDX(imagesPath, labelsPath string) (*Set, error) {
	var (
		images     [][]byte
		rows, cols int
		raw        []byte
	)
	err := withReader(imagesPath, func(r io.Reader) (err error) {
		images, rows, cols, err = readIDXImages(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load images: %w", err)
	}
	err = withReader(labelsPath, func(r io.Reader) (err error) {
		raw, err = readIDXLabels(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}

	labels := make([]int, len(raw))
	for i, b := range raw {
		labels[i] = int(b)
	}

	samples, err := FromImages(images, labels, Classes)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", imagesPath, err)
	}
	return &Set{Rows: rows, Cols: cols, Samples: samples}, nil
}

func withReader(path string, fn func(io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	r, err := decompress(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := fn(r); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// decompress peeks at the gzip magic and unwraps the stream if present.
func decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(head) == 2 && head[0] == 0x1f && head[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr, nil
	}
	return br, nil
}

// readIDXImages reads an image tensor.
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes
//	number of cols: 4 bytes
//	pixel data: unsigned bytes (0-255)
func readIDXImages(r io.Reader) ([][]byte, int, int, error) {
	if err := readMagic(r, imagesMagic); err != nil {
		return nil, 0, 0, err
	}
	var header struct {
		Count, Rows, Cols uint32
	}
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, 0, 0, fmt.Errorf("read header: %w", err)
	}

	size := uint64(header.Rows) * uint64(header.Cols)
	if size > maxImageSize {
		return nil, 0, 0, fmt.Errorf("%dx%d images exceed %d values: %w", header.Rows, header.Cols, maxImageSize, ErrFormat)
	}

	images := make([][]byte, 0, min(int(header.Count), preallocate))
	for i := 0; i < int(header.Count); i++ {
		img := make([]byte, size)
		if _, err := io.ReadFull(r, img); err != nil {
			return nil, 0, 0, fmt.Errorf("read image %d: %w", i, err)
		}
		images = append(images, img)
	}
	return images, int(header.Rows), int(header.Cols), nil
}

// readIDXLabels reads a label vector.
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes
func readIDXLabels(r io.Reader) ([]byte, error) {
	if err := readMagic(r, labelsMagic); err != nil {
		return nil, err
	}
	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	labels, err := io.ReadAll(io.LimitReader(r, int64(count)))
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	if len(labels) != int(count) {
		return nil, fmt.Errorf("read labels: %d of %d: %w", len(labels), count, io.ErrUnexpectedEOF)
	}
	return labels, nil
}

func readMagic(r io.Reader, want uint32) error {
	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return fmt.Errorf("read magic: %w", err)
	}
	if magic != want {
		return fmt.Errorf("magic %d, want %d: %w", magic, want, ErrFormat)
	}
	return nil
}

// WriteIDX writes images and labels in IDX format. It is the inverse of
// LoadIDX for uncompressed files and is used to export canvas drawings.
// Every sample is checked before anything is written.
func WriteIDX(images, labels io.Writer, set *Set) error {
	raw := make([]byte, 0, len(set.Samples))
	for i, s := range set.Samples {
		if len(s.Data) != set.Rows*set.Cols {
			return fmt.Errorf("sample %d has %d values, want %d: %w", i, len(s.Data), set.Rows*set.Cols, ErrImageSize)
		}
		if s.Label < 0 || s.Label > 255 {
			return fmt.Errorf("label %d at %d: %w", s.Label, i, ErrLabelRange)
		}
		raw = append(raw, byte(s.Label))
	}

	header := []uint32{imagesMagic, uint32(len(set.Samples)), uint32(set.Rows), uint32(set.Cols)}
	if err := binary.Write(images, binary.BigEndian, header); err != nil {
		return fmt.Errorf("write image header: %w", err)
	}
	for i, s := range set.Samples {
		if _, err := images.Write(s.Data); err != nil {
			return fmt.Errorf("write image %d: %w", i, err)
		}
	}

	if err := binary.Write(labels, binary.BigEndian, []uint32{labelsMagic, uint32(len(raw))}); err != nil {
		return fmt.Errorf("write label header: %w", err)
	}
	if _, err := labels.Write(raw); err != nil {
		return fmt.Errorf("write labels: %w", err)
	}
	return nil
}
