// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float32 matrix engine used by the
// network.
//
// # Basic Usage
//
//	a, _ := matrix.FromFlat([]float32{1, 2, 3, 4}, 2, 2)
//	b := matrix.NewIdentity(2)
//	c, err := a.Mul(b)
//	if err != nil {
//	    return err
//	}
//	y, _ := c.MulVec(matrix.Slice{1, 1})
//
// Matrices are row-major and exclusively owned. Rows and columns can be
// read without copying through RowView and ColView; both satisfy Vector,
// as does Slice.
//
// Shape errors are returned as ErrDimensionMismatch and index errors as
// ErrOutOfRange; match them with errors.Is.
package matrix
