// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a sigmoid multilayer perceptron trained by online
// stochastic gradient descent.
//
// # Basic Usage
//
//	net, err := nn.New(nn.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	net.PopulateRandomWeights(rand.NewPCG(1, 2))
//
//	for _, s := range samples {
//	    loss, err := net.TrainOne(s)
//	    ...
//	}
//
//	out, err := net.Predict(matrix.Slice(nn.Normalize(pixels)))
//	digit := nn.Argmax(out)
//
// Inputs are raw 0-255 intensities mapped into [0.01, 0.99] by Normalize;
// targets are 0.99 for the labelled class and 0.01 elsewhere.
//
// A Net is not safe for concurrent use. Use package trainer to train in
// the background while predicting.
package nn
