// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public host tensor types the batching layer
// builds on.
//
// # Overview
//
// A Tensor is a handle over an Impl. The dense implementation, RawTensor,
// answers every shape, stride and storage query. Other implementations (such
// as batched tensors) advertise themselves through dispatch keys and may
// refuse layout queries by returning an error.
//
// # Basic Usage
//
//	x, err := tensor.Empty(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	if err != nil {
//	    return err
//	}
//	n, _ := x.Size(-1) // 3
//
// # Dimension indices
//
// Every dimension argument accepts negative indices counting from the end.
// WrapDim performs the normalisation and reports ErrDimOutOfRange otherwise.
package tensor
