// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package trainer trains a network in the background while serving
// non-blocking predictions.
//
// # Basic Usage
//
//	t, err := trainer.New(net, samples, trainer.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	run, err := t.Start(ctx)
//	if err != nil {
//	    return err
//	}
//	defer run.Cancel()
//
//	// Each frame:
//	if p, ok, err := t.TryClassify(sharedCanvas); ok && err == nil {
//	    show(p.Class, p.Outputs)
//	}
//
// Per-iteration errors are collected in History, appended in batches of
// Config.FlushEvery.
package trainer
